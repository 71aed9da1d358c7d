package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1f3a5f"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle  = lipgloss.NewStyle().Bold(true)
	rowStyle     = lipgloss.NewStyle()
	pendingStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	doneStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	modalStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1f3a5f")).
			Padding(0, 1)
)

// flashStyles maps a highlight class to its transient style.
var flashStyles = map[string]lipgloss.Style{
	"flash-green":  lipgloss.NewStyle().Background(lipgloss.Color("#c8e6c9")).Foreground(lipgloss.Color("#1b5e20")),
	"flash-red":    lipgloss.NewStyle().Background(lipgloss.Color("#ffcdd2")).Foreground(lipgloss.Color("#b71c1c")),
	"flash-yellow": lipgloss.NewStyle().Background(lipgloss.Color("#fff9c4")).Foreground(lipgloss.Color("#f57f17")),
	"flash-gray":   lipgloss.NewStyle().Background(lipgloss.Color("#e0e0e0")).Foreground(lipgloss.Color("#424242")),
}

func flash(class string, fallback lipgloss.Style) lipgloss.Style {
	if s, ok := flashStyles[class]; ok {
		return s
	}
	return fallback
}
