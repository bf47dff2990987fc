package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the train. Empty colours leave the terminal's own.
type Theme struct {
	Name      string
	Body      lipgloss.Color
	Smoke     lipgloss.Color
	SmokeFade lipgloss.Color
}

// Available themes
var (
	ThemeDefault = Theme{Name: "default"}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Body:      lipgloss.Color("#ff00ff"), // Magenta
		Smoke:     lipgloss.Color("#00ffff"), // Cyan
		SmokeFade: lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Body:      lipgloss.Color("#00ff00"), // Green phosphor
		Smoke:     lipgloss.Color("#88ff88"),
		SmokeFade: lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Body:      lipgloss.Color("#ffffff"),
		Smoke:     lipgloss.Color("#cccccc"),
		SmokeFade: lipgloss.Color("#444444"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Body:      lipgloss.Color("#0077be"), // Ocean blue
		Smoke:     lipgloss.Color("#e0f0ff"),
		SmokeFade: lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Body:      lipgloss.Color("#ff6b6b"), // Coral
		Smoke:     lipgloss.Color("#feca57"),
		SmokeFade: lipgloss.Color("#8b6b8c"),
	}

	// All available themes
	Themes = []Theme{
		ThemeDefault,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeDefault, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Plain reports whether the theme leaves all colours to the terminal.
func (t Theme) Plain() bool {
	return t.Body == "" && t.Smoke == ""
}
