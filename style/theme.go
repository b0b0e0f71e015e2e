package style

import (
	"image/color"
	"strings"
)

// Theme colors (package-level variables updated by ApplyTheme)
var (
	Background    = color.NRGBA{0x10, 0x14, 0x1c, 0xff} // near-black blue
	Surface       = color.NRGBA{0x1c, 0x22, 0x2e, 0xff} // panel background
	Primary       = color.NRGBA{0x2e, 0x5c, 0x9e, 0xff} // selection bar
	Text          = color.NRGBA{0xe8, 0xea, 0xf0, 0xff}
	TextSecondary = color.NRGBA{0x8a, 0x92, 0xa4, 0xff}
	Accent        = color.NRGBA{0xff, 0xd7, 0x00, 0xff} // gold for favorites
	Border        = color.NRGBA{0x32, 0x3c, 0x50, 0xff}
	Danger        = color.NRGBA{0xd0, 0x45, 0x45, 0xff} // destructive choices, failures
	DimOverlay    = color.NRGBA{0x00, 0x00, 0x00, 0xff} // screen-dimming base (alpha applied per use)
)

// Theme holds all color values for a UI theme
type Theme struct {
	Name          string
	Background    color.NRGBA
	Surface       color.NRGBA
	Primary       color.NRGBA
	Text          color.NRGBA
	TextSecondary color.NRGBA
	Accent        color.NRGBA
	Border        color.NRGBA
	Danger        color.NRGBA
	DimOverlay    color.NRGBA
}

// Predefined themes. Names match the values stored under the "theme" setting.
var (
	ThemeDark = Theme{
		Name:          "dark",
		Background:    color.NRGBA{0x10, 0x14, 0x1c, 0xff},
		Surface:       color.NRGBA{0x1c, 0x22, 0x2e, 0xff},
		Primary:       color.NRGBA{0x2e, 0x5c, 0x9e, 0xff},
		Text:          color.NRGBA{0xe8, 0xea, 0xf0, 0xff},
		TextSecondary: color.NRGBA{0x8a, 0x92, 0xa4, 0xff},
		Accent:        color.NRGBA{0xff, 0xd7, 0x00, 0xff},
		Border:        color.NRGBA{0x32, 0x3c, 0x50, 0xff},
		Danger:        color.NRGBA{0xd0, 0x45, 0x45, 0xff},
		DimOverlay:    color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}

	ThemeLight = Theme{
		Name:          "light",
		Background:    color.NRGBA{0xf2, 0xf3, 0xf5, 0xff},
		Surface:       color.NRGBA{0xe2, 0xe5, 0xea, 0xff},
		Primary:       color.NRGBA{0x3a, 0x6e, 0xb5, 0xff},
		Text:          color.NRGBA{0x1a, 0x1c, 0x22, 0xff},
		TextSecondary: color.NRGBA{0x5a, 0x60, 0x6e, 0xff},
		Accent:        color.NRGBA{0xc8, 0x96, 0x00, 0xff},
		Border:        color.NRGBA{0xc0, 0xc5, 0xd0, 0xff},
		Danger:        color.NRGBA{0xb8, 0x2e, 0x2e, 0xff},
		DimOverlay:    color.NRGBA{0xff, 0xff, 0xff, 0xff},
	}

	ThemeRetro = Theme{
		Name:          "retro",
		Background:    color.NRGBA{0x07, 0x20, 0x07, 0xff}, // very dark green
		Surface:       color.NRGBA{0x0f, 0x38, 0x0f, 0xff},
		Primary:       color.NRGBA{0x30, 0x62, 0x30, 0xff},
		Text:          color.NRGBA{0x9b, 0xbc, 0x0f, 0xff}, // bright yellow-green
		TextSecondary: color.NRGBA{0x5a, 0x7a, 0x0f, 0xff},
		Accent:        color.NRGBA{0xc0, 0xe0, 0x30, 0xff},
		Border:        color.NRGBA{0x20, 0x50, 0x20, 0xff},
		Danger:        color.NRGBA{0xc0, 0x60, 0x20, 0xff},
		DimOverlay:    color.NRGBA{0x07, 0x20, 0x07, 0xff},
	}

	ThemePink = Theme{
		Name:          "pink",
		Background:    color.NRGBA{0x2d, 0x0a, 0x22, 0xff},
		Surface:       color.NRGBA{0x44, 0x15, 0x35, 0xff},
		Primary:       color.NRGBA{0xd9, 0x26, 0x82, 0xff},
		Text:          color.NRGBA{0xff, 0xf0, 0xf8, 0xff},
		TextSecondary: color.NRGBA{0xd9, 0x8a, 0xb8, 0xff},
		Accent:        color.NRGBA{0xff, 0x44, 0xff, 0xff},
		Border:        color.NRGBA{0x77, 0x26, 0x5c, 0xff},
		Danger:        color.NRGBA{0xff, 0x55, 0x55, 0xff},
		DimOverlay:    color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}

	// AvailableThemes lists all themes in Settings cycle order.
	AvailableThemes = []Theme{ThemeDark, ThemeLight, ThemeRetro, ThemePink}

	// CurrentThemeName tracks the active theme name
	CurrentThemeName = "dark"
)

// ThemeNames returns the list of valid theme name strings.
func ThemeNames() []string {
	names := make([]string, len(AvailableThemes))
	for i, t := range AvailableThemes {
		names[i] = t.Name
	}
	return names
}

// ThemeByName returns the theme matching name (case-insensitive),
// or ThemeDark if not found.
func ThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return ThemeDark
}

// IsValidThemeName returns true if the name matches a known theme.
func IsValidThemeName(name string) bool {
	for _, t := range AvailableThemes {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

// ApplyTheme updates package-level color variables from a theme
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Surface = theme.Surface
	Primary = theme.Primary
	Text = theme.Text
	TextSecondary = theme.TextSecondary
	Accent = theme.Accent
	Border = theme.Border
	Danger = theme.Danger
	DimOverlay = theme.DimOverlay
	CurrentThemeName = theme.Name
}

// ApplyThemeByName applies the theme stored under the "theme" setting,
// falling back to dark for unknown values.
func ApplyThemeByName(name string) {
	ApplyTheme(ThemeByName(name))
}
