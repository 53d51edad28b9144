package style

import (
	"github.com/pterm/pterm"
)

// Table renders rows under a header row as an aligned table. Without color
// the output holds no escape sequences.
func Table(header []string, rows [][]string, color bool) (string, error) {
	if !color && !pterm.RawOutput {
		pterm.DisableStyling()
		defer pterm.EnableStyling()
	}

	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	return pterm.DefaultTable.
		WithHasHeader().
		WithSeparator("  ").
		WithData(data).
		Srender()
}

// Heading renders a section title the way help output does
func Heading(text string, color bool) string {
	if !color {
		return text
	}
	return pterm.Bold.Sprint(text)
}
