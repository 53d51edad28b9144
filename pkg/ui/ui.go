// Package ui renders command results in the format the user picked: styled
// or plain text for people, JSON or YAML for scripts.
package ui

import (
	"io"

	"github.com/arthur-debert/sweep/pkg/ui/json"
	"github.com/arthur-debert/sweep/pkg/ui/text"
	"github.com/arthur-debert/sweep/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format writing to output. color only
// affects the text format.
func NewRenderer(format Format, output io.Writer, color bool) Renderer {
	switch format {
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return text.New(output, color)
	}
}
