package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/trace"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Bar       lipgloss.Color
	Comparing lipgloss.Color
	Swapping  lipgloss.Color
	Pivot     lipgloss.Color
	Sorted    lipgloss.Color
	Found     lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:      "default",
		Primary:   lipgloss.Color("86"),
		Secondary: lipgloss.Color("252"),
		Accent:    lipgloss.Color("205"),
		Text:      lipgloss.Color("255"),
		Muted:     lipgloss.Color("242"),
		Bar:       lipgloss.Color("39"),
		Comparing: lipgloss.Color("220"),
		Swapping:  lipgloss.Color("196"),
		Pivot:     lipgloss.Color("135"),
		Sorted:    lipgloss.Color("82"),
		Found:     lipgloss.Color("46"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Bar:       lipgloss.Color("#00ffff"),
		Comparing: lipgloss.Color("#ffff00"),
		Swapping:  lipgloss.Color("#ff0055"),
		Pivot:     lipgloss.Color("#ff00ff"),
		Sorted:    lipgloss.Color("#00ff00"),
		Found:     lipgloss.Color("#88ff88"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Bar:       lipgloss.Color("#009900"),
		Comparing: lipgloss.Color("#ffff00"),
		Swapping:  lipgloss.Color("#ff0000"),
		Pivot:     lipgloss.Color("#88ff88"),
		Sorted:    lipgloss.Color("#00ff00"),
		Found:     lipgloss.Color("#ffffff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Bar:       lipgloss.Color("#00a8cc"),
		Comparing: lipgloss.Color("#ffd700"),
		Swapping:  lipgloss.Color("#ff4444"),
		Pivot:     lipgloss.Color("#cc88ff"),
		Sorted:    lipgloss.Color("#00ff88"),
		Found:     lipgloss.Color("#ffffff"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Bar:       lipgloss.Color("#feca57"),
		Comparing: lipgloss.Color("#ff9ff3"),
		Swapping:  lipgloss.Color("#ff4757"),
		Pivot:     lipgloss.Color("#ffc048"),
		Sorted:    lipgloss.Color("#5fd068"),
		Found:     lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to ThemeDefault.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// FlagColor picks the color of an element. When flags combine, the most
// specific one wins: found, swapping, comparing, pivot, then sorted.
func (t Theme) FlagColor(f trace.Flag) lipgloss.Color {
	switch {
	case f.Has(trace.Found):
		return t.Found
	case f.Has(trace.Swapping):
		return t.Swapping
	case f.Has(trace.Comparing):
		return t.Comparing
	case f.Has(trace.Pivot):
		return t.Pivot
	case f.Has(trace.Sorted):
		return t.Sorted
	default:
		return t.Bar
	}
}
