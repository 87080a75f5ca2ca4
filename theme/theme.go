// Package theme infers the desktop light/dark appearance preference.
//
// Detection is a set of substring heuristics against desktop-environment
// settings queries and the KDE configuration file. The classifiers are pure
// functions over captured text; the probe list owns the side effects
// (spawning gsettings/xfconf-query, reading kdeglobals) so the matching
// logic stays unit-testable.
package theme

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Appearance is the inferred desktop appearance preference.
type Appearance int

const (
	// AppearanceLight is the default when no source reports dark mode.
	AppearanceLight Appearance = iota
	// AppearanceDark is reported when at least one source matches a
	// dark-mode marker.
	AppearanceDark
)

// String returns a human-readable representation of the appearance.
func (a Appearance) String() string {
	if a == AppearanceDark {
		return "dark"
	}
	return "light"
}

// Pure classifiers. Each takes captured text from one source and reports
// whether it matches that source's dark-mode markers. The marker strings
// are deliberately literal; they mirror what the desktop tools emit and
// must not be generalized.

// DarkColorScheme matches GNOME color-scheme output such as
// "'prefer-dark'".
func DarkColorScheme(output string) bool {
	return strings.Contains(output, "dark")
}

// DarkThemeName matches GTK/XFCE theme names such as "'Adwaita-dark'" or
// "'Arc-Dark'".
func DarkThemeName(output string) bool {
	return strings.Contains(output, "dark") || strings.Contains(output, "Dark")
}

// DarkElementary matches the elementary prefer-dark-style boolean output.
func DarkElementary(output string) bool {
	return strings.Contains(output, "true")
}

// DarkKDEGlobals matches the KDE kdeglobals configuration content.
// KDE has multiple ways to declare a dark theme: the Breeze Dark scheme
// name, or the view background color of the dark palette.
func DarkKDEGlobals(content string) bool {
	if strings.Contains(content, "[Colors:View]") && strings.Contains(content, "BackgroundNormal=") {
		if strings.Contains(content, "BackgroundNormal=35,38,41") {
			return true
		}
	}
	return strings.Contains(content, "ColorScheme=BreezeDark") ||
		strings.Contains(content, "name=Breeze Dark")
}

// Probe is one appearance source: a reader that captures text and a pure
// classifier that inspects it.
type Probe struct {
	// Name identifies the source for logging.
	Name string
	// Read captures the source's text. ok is false when the source is
	// unavailable (command missing, file absent).
	Read func() (text string, ok bool)
	// Dark classifies the captured text.
	Dark func(text string) bool
}

// Classify runs the probes in order and returns dark as soon as one
// source matches. Absence of all sources yields light.
func Classify(probes []Probe) Appearance {
	for _, p := range probes {
		text, ok := p.Read()
		if !ok {
			continue
		}
		if p.Dark(text) {
			return AppearanceDark
		}
	}
	return AppearanceLight
}

// Detect probes the desktop environment for a dark-mode preference.
func Detect() Appearance {
	return Classify(DefaultProbes())
}

// DefaultProbes returns the documented source list, checked in order:
// GNOME, KDE, XFCE, Cinnamon, MATE, elementary, then a generic GTK theme
// fallback.
func DefaultProbes() []Probe {
	return []Probe{
		{
			Name: "gnome-color-scheme",
			Read: commandReader("gsettings", "get", "org.gnome.desktop.interface", "color-scheme"),
			Dark: DarkColorScheme,
		},
		{
			Name: "kde-globals",
			Read: kdeGlobalsReader,
			Dark: DarkKDEGlobals,
		},
		{
			Name: "xfce-theme",
			Read: commandReader("xfconf-query", "-c", "xsettings", "-p", "/Net/ThemeName"),
			Dark: DarkThemeName,
		},
		{
			Name: "cinnamon-gtk-theme",
			Read: commandReader("gsettings", "get", "org.cinnamon.desktop.interface", "gtk-theme"),
			Dark: DarkThemeName,
		},
		{
			Name: "mate-gtk-theme",
			Read: commandReader("gsettings", "get", "org.mate.interface", "gtk-theme"),
			Dark: DarkThemeName,
		},
		{
			Name: "elementary-prefer-dark",
			Read: commandReader("gsettings", "get", "io.elementary.terminal.settings", "prefer-dark-style"),
			Dark: DarkElementary,
		},
		{
			Name: "gnome-gtk-theme",
			Read: commandReader("gsettings", "get", "org.gnome.desktop.interface", "gtk-theme"),
			Dark: DarkThemeName,
		},
	}
}

// commandReader builds a Read func that captures a settings command's stdout.
func commandReader(name string, args ...string) func() (string, bool) {
	return func() (string, bool) {
		out, err := exec.Command(name, args...).Output()
		if err != nil {
			return "", false
		}
		return string(out), true
	}
}

// kdeGlobalsReader captures the KDE configuration file under the user's
// home directory.
func kdeGlobalsReader() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	content, err := os.ReadFile(filepath.Join(home, ".config", "kdeglobals"))
	if err != nil {
		return "", false
	}
	return string(content), true
}
