package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/twinpal/internal/render"
)

// Theme defines the terminal colors and the matching image palette.
type Theme struct {
	Name   string
	Rug    lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Image  render.Palette
}

var (
	ThemeMono = Theme{
		Name:   "mono",
		Rug:    lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#00ccff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Image:  render.DefaultPalette,
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Rug:    lipgloss.Color("#00ff00"), // Green phosphor
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Image:  render.Palette{Foreground: render.RGB{R: 0x00, G: 0xff, B: 0x00}, Background: render.RGB{R: 0x00, G: 0x11, B: 0x00}},
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Rug:    lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Image:  render.Palette{Foreground: render.RGB{R: 0x00, G: 0xa8, B: 0xcc}, Background: render.RGB{R: 0x00, G: 0x1a, B: 0x33}},
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Rug:    lipgloss.Color("#ff6b6b"), // Coral
		Accent: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Image:  render.Palette{Foreground: render.RGB{R: 0xff, G: 0x6b, B: 0x6b}, Background: render.RGB{R: 0x2d, G: 0x1b, B: 0x2e}},
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Rug:    lipgloss.Color("#ff00ff"), // Magenta
		Accent: lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Image:  render.Palette{Foreground: render.RGB{R: 0xff, G: 0x00, B: 0xff}, Background: render.RGB{R: 0x0a, G: 0x0a, B: 0x0a}},
	}

	// All available themes
	Themes = []Theme{
		ThemeMono,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
		ThemeCyberpunk,
	}
)

// GetTheme returns a theme by name, falling back to mono.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeMono
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
