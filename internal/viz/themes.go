package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for frames and the player.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Highlight lipgloss.Color
	Bar       lipgloss.Color
	Done      lipgloss.Color
	Muted     lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#00ffff"),
		Highlight: lipgloss.Color("#ff00ff"),
		Bar:       lipgloss.Color("#8888aa"),
		Done:      lipgloss.Color("#00ff88"),
		Muted:     lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Highlight: lipgloss.Color("#ffff00"),
		Bar:       lipgloss.Color("#00aa00"),
		Done:      lipgloss.Color("#88ff88"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Highlight: lipgloss.Color("#0088ff"),
		Bar:       lipgloss.Color("#cccccc"),
		Done:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#feca57"),
		Highlight: lipgloss.Color("#ff6b6b"),
		Bar:       lipgloss.Color("#8b6b8c"),
		Done:      lipgloss.Color("#5fd068"),
		Muted:     lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
