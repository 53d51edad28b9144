package check

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/sweep/pkg/filesystem"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/rules"
	"github.com/arthur-debert/sweep/pkg/style"
	"github.com/arthur-debert/sweep/pkg/types"
)

// Options defines the options for the CheckFiles command.
type Options struct {
	Files []string
	FS    types.FS
}

// Rule is the report of one rule
type Rule struct {
	Line    int    `json:"line" yaml:"line"`
	Text    string `json:"text" yaml:"text"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Action  string `json:"action,omitempty" yaml:"action,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Target  string `json:"target,omitempty" yaml:"target,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`

	summary string
}

// File is the report of one rule file
type File struct {
	Name    string `json:"file" yaml:"file"`
	Rules   []Rule `json:"rules" yaml:"rules"`
	Invalid int    `json:"invalid" yaml:"invalid"`
}

// Result lists every checked file
type Result struct {
	Files []File `json:"files" yaml:"files"`
}

// Invalid counts the rejected rules across all files
func (r *Result) Invalid() int {
	n := 0
	for _, f := range r.Files {
		n += f.Invalid
	}
	return n
}

// CheckFiles parses each file and reports every rule it holds. Nothing is
// matched or executed.
func CheckFiles(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.check")
	log.Debug().Str("command", "CheckFiles").Strs("files", opts.Files).Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &Result{Files: make([]File, 0, len(opts.Files))}
	for _, name := range opts.Files {
		config, err := rules.LoadConfiguration(fs, name)
		if err != nil {
			return nil, err
		}

		file := File{Name: config.Filename, Rules: make([]Rule, 0, len(config.Rules))}
		for _, r := range config.Rules {
			report := Rule{Line: r.LineNumber, Text: r.Raw, Valid: r.Valid, Error: r.Error}
			if r.Valid {
				report.Action = r.Verb.Action()
				report.Pattern = r.Pattern()
				report.Target = r.Target()
				report.summary = fmt.Sprintf("%s `%s` %s `%s`",
					r.Verb.Action(), r.Pattern(), r.Verb.Preposition(), r.Target())
			} else {
				file.Invalid++
			}
			file.Rules = append(file.Rules, report)
		}
		result.Files = append(result.Files, file)
	}

	log.Info().Str("command", "CheckFiles").Int("invalid", result.Invalid()).Msg("Command finished")
	return result, nil
}

// RenderText lays each file out as a table of its rules
func (r *Result) RenderText(color bool) (string, error) {
	var b strings.Builder
	for i, f := range r.Files {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style.Heading(f.Name, color) + "\n")

		if len(f.Rules) == 0 {
			b.WriteString("  no rules\n")
			continue
		}

		rows := make([][]string, 0, len(f.Rules))
		for _, rule := range f.Rules {
			status := "ok"
			detail := rule.summary
			if !rule.Valid {
				status = "invalid"
				detail = rule.Error
			}
			rows = append(rows, []string{strconv.Itoa(rule.Line), status, rule.Text, detail})
		}

		table, err := style.Table([]string{"LINE", "STATUS", "RULE", "DETAIL"}, rows, color)
		if err != nil {
			return "", err
		}
		b.WriteString(table)
	}

	fmt.Fprintf(&b, "\n%d invalid rule(s)\n", r.Invalid())
	return b.String(), nil
}
