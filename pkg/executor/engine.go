package executor

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sweep/pkg/filesystem"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/matchers"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/rules"
	"github.com/arthur-debert/sweep/pkg/style"
	"github.com/arthur-debert/sweep/pkg/types"
	"github.com/arthur-debert/sweep/pkg/ui/confirmations"
	"github.com/rs/zerolog"
)

// Options contains configuration for the engine
type Options struct {
	// Filesystem operations interface for testing
	FS types.FS

	// Paths is the separator convention of rule targets and listings;
	// the host convention when unset
	Paths paths.Style

	// Printer receives the console status lines; stdout when unset
	Printer *style.Printer

	// Confirmer answers interactive questions; the console when unset
	Confirmer confirmations.Confirmer

	// Logger receives the engine's diagnostics; the "executor" component
	// logger when nil
	Logger *zerolog.Logger
}

// Engine applies rules to the files of a directory
type Engine struct {
	fs        types.FS
	paths     paths.Style
	printer   *style.Printer
	confirmer confirmations.Confirmer
	scanner   *matchers.Scanner
	logger    zerolog.Logger
}

// New creates a new engine instance
func New(opts Options) *Engine {
	var logger zerolog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	} else {
		logger = logging.GetLogger("executor")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	pathStyle := opts.Paths
	if pathStyle.Name() == "" {
		pathStyle = paths.Native()
	}

	printer := opts.Printer
	if printer == nil {
		printer = style.NewPrinter(os.Stdout, true)
	}

	return &Engine{
		fs:        fs,
		paths:     pathStyle,
		printer:   printer,
		confirmer: opts.Confirmer,
		scanner:   matchers.NewScanner(fs, pathStyle),
		logger:    logger,
	}
}

// Execute applies rule to the files directly inside dir under mode
func (e *Engine) Execute(rule rules.Rule, dir string, mode types.RunMode) (Result, error) {
	result := Result{Rule: rule}

	e.logger.Debug().
		Int("line", rule.LineNumber).
		Str("rule", rule.Raw).
		Str("mode", mode.String()).
		Str("dir", dir).
		Msg("Executing rule")

	if !rule.Valid {
		e.printer.Error("rule line %d is invalid. %s", rule.LineNumber, rule.Error)
		result.Outcome = OutcomeInvalid
		return result, nil
	}

	if mode.DryRun && !mode.Interactive {
		e.announce(rule)
		result.Outcome = OutcomeAnnounced
		return result, nil
	}

	files, err := e.scanner.FilesConcerned(rule, dir)
	if err != nil {
		return result, err
	}
	result.Matched = files

	for _, file := range files {
		if mode.Interactive {
			accepted, err := e.confirm(rule, file)
			if err != nil {
				return result, err
			}
			if !accepted {
				result.Declined = append(result.Declined, file)
				continue
			}
			if mode.DryRun {
				e.announce(rule)
				result.Applied = append(result.Applied, file)
				if !mode.AllMatches {
					break
				}
				continue
			}
		}

		if failure := e.apply(rule, dir, file); failure != nil {
			// The interactive exchange already showed the file; the failure
			// goes to the log and the result only
			if mode.Interactive {
				e.logger.Warn().
					Int("line", rule.LineNumber).
					Str("file", file).
					Str("code", string(failure.Code)).
					Msg(failure.Reason)
			} else {
				e.printer.Error("rule line %d failed on %s: %s [%s]",
					rule.LineNumber, file, failure.Reason, failure.Code)
			}
			result.Failures = append(result.Failures, *failure)
		} else {
			result.Applied = append(result.Applied, file)
		}

		if !mode.AllMatches {
			break
		}
	}

	result.Outcome = e.conclude(rule, mode, result)
	return result, nil
}

// conclude settles the outcome and prints the closing line of a rule
func (e *Engine) conclude(rule rules.Rule, mode types.RunMode, result Result) Outcome {
	switch {
	case len(result.Failures) > 0:
		return OutcomeFailed
	case len(result.Applied) > 0 && mode.DryRun:
		return OutcomeAnnounced
	case len(result.Applied) > 0:
		e.printer.Success("rule line %d - %s", rule.LineNumber, rule.Raw)
		return OutcomeSucceeded
	case len(result.Matched) == 0:
		if !mode.Interactive {
			e.printer.Error("rule line %d matched no file.", rule.LineNumber)
		}
		return OutcomeNoMatch
	}
	return OutcomeDeclined
}

func (e *Engine) confirm(rule rules.Rule, file string) (bool, error) {
	if e.confirmer == nil {
		e.confirmer = confirmations.NewStdConfirmer()
	}
	question := fmt.Sprintf("Are you sure you want to %s %s %s %s? (y or n)",
		rule.Verb.Action(), file, rule.Verb.Preposition().Keyword(), rule.Target())
	return e.confirmer.Confirm(e.printer.Prompt(question))
}

// announce describes the rule's action without performing it
func (e *Engine) announce(rule rules.Rule) {
	switch rule.Verb {
	case rules.VerbMove:
		e.printer.DryRun("[line %d] move all files following the pattern `%s` to `%s`",
			rule.LineNumber, rule.Pattern(), rule.Target())
	case rules.VerbPrefix:
		e.printer.DryRun("[line %d] add prefix `%s` to all files following the pattern `%s`",
			rule.LineNumber, rule.Target(), rule.Pattern())
	case rules.VerbSuffix:
		e.printer.DryRun("[line %d] add suffix `%s` to all files following the pattern `%s`",
			rule.LineNumber, rule.Target(), rule.Pattern())
	}
}
