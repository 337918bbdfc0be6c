package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/treasure-hunter/internal/engine"
)

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAFD7"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// styleFor maps an engine rendering hint to a terminal style.
func styleFor(s engine.Style) lipgloss.Style {
	switch s {
	case engine.StyleInfo:
		return infoStyle
	case engine.StyleSuccess:
		return successStyle
	case engine.StyleDanger:
		return dangerStyle
	case engine.StyleTitle:
		return titleStyle
	default:
		return gameStyle
	}
}
