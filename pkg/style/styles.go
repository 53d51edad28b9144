package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the styles of a printer. They are bound to the printer's
// renderer so the color profile follows its writer, not stdout.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	DryRun  lipgloss.Style
	Prompt  lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles builds the styles for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Success: r.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		DryRun: r.NewStyle().
			Foreground(WarningColor),
		Prompt: r.NewStyle().
			Foreground(InfoColor),
		Muted: r.NewStyle().
			Foreground(MutedColor),
		Path: r.NewStyle().
			Foreground(PathColor).
			Italic(true),
		Bold: r.NewStyle().
			Bold(true),
	}
}
