package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status line prefixes
const (
	SuccessPrefix = "success:"
	ErrorPrefix   = "error:"
	DryRunPrefix  = "[dry-run]"
)

// Printer writes the console status lines of a run. Only the prefixes carry
// color; the text after them is written as is.
type Printer struct {
	out    io.Writer
	styles Styles
}

// NewPrinter creates a printer on out. Colors follow the terminal behind out
// unless color is false, in which case everything is plain text.
func NewPrinter(out io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{out: out, styles: NewStyles(r)}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Styles returns the styles bound to the printer's writer
func (p *Printer) Styles() Styles {
	return p.styles
}

// Success prints "success: <text>"
func (p *Printer) Success(format string, args ...interface{}) {
	p.line(p.styles.Success.Render(SuccessPrefix), format, args...)
}

// Error prints "error: <text>"
func (p *Printer) Error(format string, args ...interface{}) {
	p.line(p.styles.Error.Render(ErrorPrefix), format, args...)
}

// DryRun prints "[dry-run]<text>"; the text supplies its own spacing
func (p *Printer) DryRun(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, "%s%s\n", p.styles.DryRun.Render(DryRunPrefix), fmt.Sprintf(format, args...))
}

// Println prints a plain line
func (p *Printer) Println(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Prompt renders a question in the prompt style without printing it
func (p *Printer) Prompt(question string) string {
	return p.styles.Prompt.Render(question)
}

func (p *Printer) line(prefix, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
