package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the palette for tables, badges and charts.
type Theme struct {
	Name      string
	Title     lipgloss.Color
	Border    lipgloss.Color
	Muted     lipgloss.Color
	Excellent lipgloss.Color
	Neutral   lipgloss.Color
	Hot       lipgloss.Color
}

var (
	ThemeFrost = Theme{
		Name:      "frost",
		Title:     lipgloss.Color("#00ffff"),
		Border:    lipgloss.Color("#444466"),
		Muted:     lipgloss.Color("#666688"),
		Excellent: lipgloss.Color("#00ff88"),
		Neutral:   lipgloss.Color("#ffcc00"),
		Hot:       lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Title:     lipgloss.Color("#ff6b6b"),
		Border:    lipgloss.Color("#8b6b8c"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Excellent: lipgloss.Color("#5fd068"),
		Neutral:   lipgloss.Color("#ffc048"),
		Hot:       lipgloss.Color("#ff4757"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Title:     lipgloss.Color("#ffffff"),
		Border:    lipgloss.Color("#888888"),
		Muted:     lipgloss.Color("#888888"),
		Excellent: lipgloss.Color("#ffffff"),
		Neutral:   lipgloss.Color("#cccccc"),
		Hot:       lipgloss.Color("#aaaaaa"),
	}

	Themes = []Theme{ThemeFrost, ThemeSunset, ThemeMono}
)

// GetTheme returns a theme by name, falling back to frost.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeFrost
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
