package style

import (
	"testing"
)

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"dark", "dark", "dark"},
		{"light", "light", "light"},
		{"retro", "retro", "retro"},
		{"pink", "pink", "pink"},
		{"case insensitive", "Light", "light"},
		{"unknown falls back to dark", "solarized", "dark"},
		{"empty falls back to dark", "", "dark"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ThemeByName(tc.input)
			if got.Name != tc.expected {
				t.Errorf("ThemeByName(%q).Name = %q, want %q", tc.input, got.Name, tc.expected)
			}
		})
	}
}

func TestIsValidThemeName(t *testing.T) {
	for _, name := range ThemeNames() {
		if !IsValidThemeName(name) {
			t.Errorf("IsValidThemeName(%q) = false, want true", name)
		}
	}
	if IsValidThemeName("solarized") {
		t.Error("IsValidThemeName(\"solarized\") = true, want false")
	}
}

func TestApplyThemeByName(t *testing.T) {
	defer ApplyTheme(ThemeDark)

	ApplyThemeByName("light")
	if Background != ThemeLight.Background {
		t.Errorf("Background = %v, want %v", Background, ThemeLight.Background)
	}
	if Text != ThemeLight.Text {
		t.Errorf("Text = %v, want %v", Text, ThemeLight.Text)
	}
	if CurrentThemeName != "light" {
		t.Errorf("CurrentThemeName = %q, want %q", CurrentThemeName, "light")
	}

	ApplyThemeByName("no-such-theme")
	if CurrentThemeName != "dark" {
		t.Errorf("unknown theme applied %q, want fallback %q", CurrentThemeName, "dark")
	}
	if Background != ThemeDark.Background {
		t.Errorf("Background = %v, want %v", Background, ThemeDark.Background)
	}
}

func TestThemeNamesNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range ThemeNames() {
		if seen[name] {
			t.Errorf("duplicate theme name %q", name)
		}
		seen[name] = true
	}
}

func TestThemeColorsNonZeroAlpha(t *testing.T) {
	for _, theme := range AvailableThemes {
		colors := map[string]uint8{
			"Background":    theme.Background.A,
			"Surface":       theme.Surface.A,
			"Primary":       theme.Primary.A,
			"Text":          theme.Text.A,
			"TextSecondary": theme.TextSecondary.A,
			"Accent":        theme.Accent.A,
			"Border":        theme.Border.A,
			"Danger":        theme.Danger.A,
		}
		for field, alpha := range colors {
			if alpha == 0 {
				t.Errorf("theme %q: %s has zero alpha", theme.Name, field)
			}
		}
	}
}
