package matchers

import (
	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/rules"
	"github.com/arthur-debert/sweep/pkg/types"
	"github.com/rs/zerolog"
)

// Scanner lists a target directory and selects the entries a rule concerns
type Scanner struct {
	fs     types.FS
	style  paths.Style
	logger zerolog.Logger
}

// NewScanner creates a scanner reading through fs and splitting names with style
func NewScanner(fs types.FS, style paths.Style) *Scanner {
	return &Scanner{
		fs:     fs,
		style:  style,
		logger: logging.GetLogger("matchers.scanner"),
	}
}

// FilesConcerned returns the names (final path segments, not full paths) of
// the files directly inside dir matching the rule pattern, in listing order.
// The scan is flat and directories never match.
func (s *Scanner) FilesConcerned(rule rules.Rule, dir string) ([]string, error) {
	pattern, err := Compile(rule.Pattern())
	if err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "cannot list %s", dir).
			WithDetail("dir", dir)
	}

	var names []string
	for _, entry := range entries {
		name := s.style.Base(entry.Name())
		if entry.IsDir() {
			s.logger.Trace().Str("dir", name).Msg("Skipping directory")
			continue
		}
		if pattern.Match(name) {
			names = append(names, name)
		}
	}

	s.logger.Debug().
		Int("line", rule.LineNumber).
		Str("pattern", pattern.String()).
		Str("dir", dir).
		Int("entries", len(entries)).
		Int("matches", len(names)).
		Msg("Scanned directory")

	return names, nil
}
