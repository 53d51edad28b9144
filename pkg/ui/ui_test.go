package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func (r report) RenderText(bool) (string, error) {
	return r.Name + ": " + strings.Repeat("*", r.Count) + "\n", nil
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want ui.Format
	}{
		{"", ui.FormatText},
		{"TEXT", ui.FormatText},
		{"json", ui.FormatJSON},
		{"yml", ui.FormatYAML},
		{"yaml", ui.FormatYAML},
	}
	for _, tt := range tests {
		got, err := ui.ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ui.ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "yaml", ui.FormatYAML.String())
}

func TestNewRenderer(t *testing.T) {
	result := report{Name: "rules", Count: 3}

	tests := []struct {
		format ui.Format
		want   string
	}{
		{ui.FormatText, "rules: ***\n"},
		{ui.FormatJSON, "{\n  \"name\": \"rules\",\n  \"count\": 3\n}\n"},
		{ui.FormatYAML, "name: rules\ncount: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			r := ui.NewRenderer(tt.format, &buf, false)
			require.NoError(t, r.RenderResult(result))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "no .sweep file in .")

	var text, js, yml bytes.Buffer
	require.NoError(t, ui.NewRenderer(ui.FormatText, &text, false).RenderError(err))
	require.NoError(t, ui.NewRenderer(ui.FormatJSON, &js, false).RenderError(err))
	require.NoError(t, ui.NewRenderer(ui.FormatYAML, &yml, false).RenderError(err))

	assert.Equal(t, "error: [NOT_FOUND] no .sweep file in .\n", text.String())
	assert.Contains(t, js.String(), `"code": "NOT_FOUND"`)
	assert.Contains(t, yml.String(), "code: NOT_FOUND")
}
