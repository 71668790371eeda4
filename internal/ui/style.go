package ui

import "github.com/charmbracelet/lipgloss"

// Completion glyphs shown in task lines. They are content rather than
// styling and survive output redirection.
const (
	GlyphDone    = "✓"
	GlyphPending = "✗"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	BannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Checkbox returns the completion marker for a task line.
func Checkbox(completed bool) string {
	if completed {
		return "[" + doneStyle.Render(GlyphDone) + "]"
	}
	return "[" + pendingStyle.Render(GlyphPending) + "]"
}
