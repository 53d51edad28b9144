// Package text provides human-readable output
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/sweep/pkg/style"
)

// Renderable is a result that knows how to present itself as text
type Renderable interface {
	RenderText(color bool) (string, error)
}

// Renderer writes results as text, styled when color is set
type Renderer struct {
	output  io.Writer
	color   bool
	printer *style.Printer
}

// New creates a new text renderer
func New(output io.Writer, color bool) *Renderer {
	return &Renderer{
		output:  output,
		color:   color,
		printer: style.NewPrinter(output, color),
	}
}

// RenderResult writes a Renderable's text, or the value's default format
func (r *Renderer) RenderResult(result interface{}) error {
	if renderable, ok := result.(Renderable); ok {
		out, err := renderable.RenderText(r.color)
		if err != nil {
			return err
		}
		_, err = io.WriteString(r.output, out)
		return err
	}
	_, err := fmt.Fprintln(r.output, result)
	return err
}

// RenderError prints "error: <message>"
func (r *Renderer) RenderError(err error) error {
	r.printer.Error("%s", err.Error())
	return nil
}

// RenderMessage prints msg on its own line
func (r *Renderer) RenderMessage(msg string) error {
	r.printer.Println("%s", msg)
	return nil
}
