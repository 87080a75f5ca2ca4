// Package ui provides the system tray interface for WARP Taskbar.
// This file contains icon generation utilities for the system tray.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/SurajRaika/warp-taskbar/common"
	"github.com/SurajRaika/warp-taskbar/theme"
	"github.com/SurajRaika/warp-taskbar/warp"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size          int
	FillColor     color.RGBA
	BorderColor   color.RGBA
	AccentColor   color.RGBA
	SymbolColor   color.RGBA
	ShowCheckmark bool
}

// ActiveDarkIconConfig returns the config for the connected-state icon
// used on light desktops: a dark shield that stands out on light panels.
func ActiveDarkIconConfig() IconConfig {
	return IconConfig{
		Size:          common.TrayIconSize,
		FillColor:     color.RGBA{40, 44, 52, 255},    // Dark slate
		BorderColor:   color.RGBA{24, 26, 31, 255},    // Near black
		AccentColor:   color.RGBA{243, 128, 32, 255},  // WARP orange
		SymbolColor:   color.RGBA{255, 255, 255, 255}, // White
		ShowCheckmark: true,
	}
}

// ActiveLightIconConfig returns the config for the connected-state icon
// used on dark desktops: a light shield that stands out on dark panels.
func ActiveLightIconConfig() IconConfig {
	return IconConfig{
		Size:          common.TrayIconSize,
		FillColor:     color.RGBA{245, 245, 245, 255}, // Near white
		BorderColor:   color.RGBA{224, 224, 224, 255}, // Light gray
		AccentColor:   color.RGBA{243, 128, 32, 255},  // WARP orange
		SymbolColor:   color.RGBA{40, 44, 52, 255},    // Dark slate
		ShowCheckmark: true,
	}
}

// InactiveIconConfig returns the config for the disconnected-state icon.
// It is gray on every desktop so the state reads at a glance.
func InactiveIconConfig() IconConfig {
	return IconConfig{
		Size:          common.TrayIconSize,
		FillColor:     color.RGBA{117, 117, 117, 255}, // Dark gray
		BorderColor:   color.RGBA{158, 158, 158, 255}, // Gray
		AccentColor:   color.RGBA{189, 189, 189, 255}, // Light gray
		SymbolColor:   color.RGBA{255, 255, 255, 255}, // White
		ShowCheckmark: false,
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawShield(img)

	if g.config.ShowCheckmark {
		g.drawCheckmark(img)
	} else {
		g.drawLock(img)
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// drawShield draws the shield shape on the image.
func (g *IconGenerator) drawShield(img *image.RGBA) {
	size := g.config.Size
	centerX := float64(size) / 2
	topY := 1.0
	bottomY := float64(size) - 2
	shieldWidth := float64(size) - 4

	isInShield := func(x, y float64) bool {
		relY := (y - topY) / (bottomY - topY)
		if relY < 0 || relY > 1 {
			return false
		}

		var halfWidth float64
		if relY < 0.5 {
			halfWidth = shieldWidth/2 - relY*0.5
		} else {
			progress := (relY - 0.5) * 2
			halfWidth = (shieldWidth/2 - 0.25) * (1 - progress*progress)
		}

		return x >= centerX-halfWidth && x <= centerX+halfWidth
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5

			if isInShield(fx, fy) {
				isBorder := !isInShield(fx-1, fy) || !isInShield(fx+1, fy) ||
					!isInShield(fx, fy-1) || !isInShield(fx, fy+1)

				if isBorder {
					img.Set(x, y, g.config.BorderColor)
				} else {
					relY := float64(y) / float64(size)
					if relY < 0.3 {
						img.Set(x, y, g.config.AccentColor)
					} else {
						img.Set(x, y, g.config.FillColor)
					}
				}
			}
		}
	}
}

// drawCheckmark draws a checkmark symbol on the image.
func (g *IconGenerator) drawCheckmark(img *image.RGBA) {
	points := []struct{ x, y int }{
		{6, 11}, {7, 11}, {7, 12}, {8, 12}, {8, 13}, {9, 13},
		{9, 12}, {10, 12}, {10, 11}, {11, 11}, {11, 10}, {12, 10},
		{12, 9}, {13, 9}, {13, 8}, {14, 8},
	}
	for _, p := range points {
		if p.x >= 0 && p.x < g.config.Size && p.y >= 0 && p.y < g.config.Size {
			img.Set(p.x, p.y, g.config.SymbolColor)
		}
	}
}

// drawLock draws a lock symbol on the image.
func (g *IconGenerator) drawLock(img *image.RGBA) {
	c := g.config.SymbolColor

	// Lock body
	for y := 10; y <= 15; y++ {
		for x := 8; x <= 14; x++ {
			if y == 10 || y == 15 || x == 8 || x == 14 {
				img.Set(x, y, c)
			}
		}
	}

	// Lock shackle
	for y := 6; y <= 10; y++ {
		if y <= 8 {
			img.Set(9, y, c)
			img.Set(13, y, c)
		}
		if y == 6 {
			for x := 9; x <= 13; x++ {
				img.Set(x, y, c)
			}
		}
	}
}

// Pre-generated icons. Built once at startup, read-only afterwards.
var (
	iconActiveDark  = NewIconGenerator(ActiveDarkIconConfig()).Generate()
	iconActiveLight = NewIconGenerator(ActiveLightIconConfig()).Generate()
	iconInactive    = NewIconGenerator(InactiveIconConfig()).Generate()
)

// ChooseIcon picks the tray icon for a connection state and desktop
// appearance. Disconnected is always the gray icon; connected uses the
// variant that contrasts with the desktop: a light shield on dark
// desktops, a dark shield on light ones.
func ChooseIcon(state warp.ConnectionState, appearance theme.Appearance) []byte {
	if state != warp.StateConnected {
		return iconInactive
	}
	if appearance == theme.AppearanceDark {
		return iconActiveLight
	}
	return iconActiveDark
}
