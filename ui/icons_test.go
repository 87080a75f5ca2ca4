package ui

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/SurajRaika/warp-taskbar/common"
	"github.com/SurajRaika/warp-taskbar/theme"
	"github.com/SurajRaika/warp-taskbar/warp"
)

func TestGeneratedIcons_ValidPNG(t *testing.T) {
	icons := map[string][]byte{
		"active dark":  iconActiveDark,
		"active light": iconActiveLight,
		"inactive":     iconInactive,
	}

	for name, data := range icons {
		t.Run(name, func(t *testing.T) {
			if len(data) == 0 {
				t.Fatal("icon is empty")
			}

			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("icon is not valid PNG: %v", err)
			}

			bounds := img.Bounds()
			if bounds.Dx() != common.TrayIconSize || bounds.Dy() != common.TrayIconSize {
				t.Errorf("icon size = %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), common.TrayIconSize, common.TrayIconSize)
			}
		})
	}
}

func TestGeneratedIcons_Distinct(t *testing.T) {
	if bytes.Equal(iconActiveDark, iconActiveLight) {
		t.Error("active dark and active light icons are identical")
	}
	if bytes.Equal(iconActiveDark, iconInactive) {
		t.Error("active dark and inactive icons are identical")
	}
	if bytes.Equal(iconActiveLight, iconInactive) {
		t.Error("active light and inactive icons are identical")
	}
}

func TestChooseIcon(t *testing.T) {
	tests := []struct {
		name       string
		state      warp.ConnectionState
		appearance theme.Appearance
		want       []byte
	}{
		{"disconnected on light desktop", warp.StateDisconnected, theme.AppearanceLight, iconInactive},
		{"disconnected on dark desktop", warp.StateDisconnected, theme.AppearanceDark, iconInactive},
		{"unknown state is inactive", warp.StateUnknown, theme.AppearanceDark, iconInactive},
		{"connected on light desktop", warp.StateConnected, theme.AppearanceLight, iconActiveDark},
		{"connected on dark desktop", warp.StateConnected, theme.AppearanceDark, iconActiveLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseIcon(tt.state, tt.appearance)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ChooseIcon(%v, %v) returned the wrong icon", tt.state, tt.appearance)
			}
		})
	}
}
