package theme

import "testing"

func TestAppearance_String(t *testing.T) {
	tests := []struct {
		appearance Appearance
		expected   string
	}{
		{AppearanceLight, "light"},
		{AppearanceDark, "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.appearance.String(); got != tt.expected {
				t.Errorf("Appearance.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDarkColorScheme(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{"prefer dark", "'prefer-dark'\n", true},
		{"default", "'default'\n", false},
		{"prefer light", "'prefer-light'\n", false},
		{"empty", "", false},
		{"uppercase not matched", "'prefer-Dark'\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DarkColorScheme(tt.output); got != tt.want {
				t.Errorf("DarkColorScheme(%q) = %v, want %v", tt.output, got, tt.want)
			}
		})
	}
}

func TestDarkThemeName(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{"lowercase dark", "'adwaita-dark'\n", true},
		{"capitalized Dark", "'Arc-Dark'\n", true},
		{"light theme", "'Adwaita'\n", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DarkThemeName(tt.output); got != tt.want {
				t.Errorf("DarkThemeName(%q) = %v, want %v", tt.output, got, tt.want)
			}
		})
	}
}

func TestDarkElementary(t *testing.T) {
	if !DarkElementary("true\n") {
		t.Error("DarkElementary should match 'true'")
	}
	if DarkElementary("false\n") {
		t.Error("DarkElementary should not match 'false'")
	}
}

func TestDarkKDEGlobals(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "breeze dark scheme",
			content: "[General]\nColorScheme=BreezeDark\n",
			want:    true,
		},
		{
			name:    "breeze dark display name",
			content: "[General]\nname=Breeze Dark\n",
			want:    true,
		},
		{
			name:    "dark view background",
			content: "[Colors:View]\nBackgroundNormal=35,38,41\n",
			want:    true,
		},
		{
			name:    "light view background",
			content: "[Colors:View]\nBackgroundNormal=255,255,255\n",
			want:    false,
		},
		{
			name:    "background color without section",
			content: "BackgroundNormal=35,38,41\n",
			want:    false,
		},
		{
			name:    "light scheme",
			content: "[General]\nColorScheme=Breeze\n",
			want:    false,
		},
		{
			name:    "empty file",
			content: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DarkKDEGlobals(tt.content); got != tt.want {
				t.Errorf("DarkKDEGlobals(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	available := func(text string) func() (string, bool) {
		return func() (string, bool) { return text, true }
	}
	missing := func() (string, bool) { return "", false }

	tests := []struct {
		name   string
		probes []Probe
		want   Appearance
	}{
		{
			name:   "no sources defaults to light",
			probes: nil,
			want:   AppearanceLight,
		},
		{
			name: "all sources unavailable defaults to light",
			probes: []Probe{
				{Name: "a", Read: missing, Dark: DarkColorScheme},
				{Name: "b", Read: missing, Dark: DarkThemeName},
			},
			want: AppearanceLight,
		},
		{
			name: "single dark source wins",
			probes: []Probe{
				{Name: "a", Read: available("'Adwaita'"), Dark: DarkThemeName},
				{Name: "b", Read: available("'prefer-dark'"), Dark: DarkColorScheme},
			},
			want: AppearanceDark,
		},
		{
			name: "all light sources",
			probes: []Probe{
				{Name: "a", Read: available("'default'"), Dark: DarkColorScheme},
				{Name: "b", Read: available("'Adwaita'"), Dark: DarkThemeName},
			},
			want: AppearanceLight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.probes); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultProbes_CoversDocumentedSources(t *testing.T) {
	probes := DefaultProbes()

	if len(probes) != 7 {
		t.Fatalf("DefaultProbes() returned %d probes, want 7", len(probes))
	}

	wantOrder := []string{
		"gnome-color-scheme",
		"kde-globals",
		"xfce-theme",
		"cinnamon-gtk-theme",
		"mate-gtk-theme",
		"elementary-prefer-dark",
		"gnome-gtk-theme",
	}
	for i, name := range wantOrder {
		if probes[i].Name != name {
			t.Errorf("probe %d = %q, want %q", i, probes[i].Name, name)
		}
		if probes[i].Read == nil || probes[i].Dark == nil {
			t.Errorf("probe %q missing reader or classifier", name)
		}
	}
}
