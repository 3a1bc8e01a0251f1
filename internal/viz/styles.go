package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles derived from one theme.
type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	done    lipgloss.Style
	panel   lipgloss.Style
	graph   lipgloss.Style
	help    lipgloss.Style
	prompt  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(13),
		value:   lipgloss.NewStyle().Foreground(t.Secondary),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		accent:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		running: lipgloss.NewStyle().Foreground(t.Sorted).Bold(true),
		paused:  lipgloss.NewStyle().Foreground(t.Comparing).Bold(true),
		done:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		graph:  lipgloss.NewStyle().Foreground(t.Primary),
		help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		prompt: lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// ProgressBar renders percent of width as a filled line.
func ProgressBar(percent float64, width int, filled, empty lipgloss.Style) string {
	n := int(percent * float64(width))
	if n > width {
		n = width
	}
	if n < 0 {
		n = 0
	}
	return filled.Render(strings.Repeat("━", n)) + empty.Render(strings.Repeat("─", width-n))
}

// Legend renders one colored swatch per highlight kind.
func Legend(t Theme) string {
	items := []struct {
		name  string
		color lipgloss.Color
	}{
		{"comparing", t.Comparing},
		{"swapping", t.Swapping},
		{"pivot", t.Pivot},
		{"sorted", t.Sorted},
		{"found", t.Found},
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = lipgloss.NewStyle().Foreground(it.color).Render("■") + " " + it.name
	}
	return strings.Join(parts, "  ")
}

func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return style.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
