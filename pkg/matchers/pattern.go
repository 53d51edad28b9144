// Package matchers selects the files a rule applies to.
//
// A rule pattern is a filename with "*" wildcards. Each wildcard stands for
// any run of word characters, whitespace, commas, hyphens and square
// brackets; everything else matches literally, and the pattern must cover
// the whole name. Word characters and whitespace are Unicode aware, so
// "café" or "曲" are covered like "cafe". Dots are literal and not covered by a wildcard, so
// "*.mp3" matches "song.mp3" but neither "song.wav" nor "my.song.mp3".
package matchers

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/sweep/pkg/errors"
)

// Wildcard is the only special character in a rule pattern
const Wildcard = "*"

// wildcardClass is what a single wildcard expands to. RE2's \w and \s are
// ASCII only, so letters, marks, decimal digits, connector punctuation and
// separators are spelled out as Unicode classes.
const wildcardClass = `[\p{L}\p{M}\p{Nd}\p{Pc}\p{Z}\s,\-\[\]]*`

// Pattern is a compiled rule pattern
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// Expression translates a wildcard pattern into an anchored regular expression
func Expression(pattern string) string {
	parts := strings.Split(pattern, Wildcard)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return "^" + strings.Join(parts, wildcardClass) + "$"
}

// Compile builds a Pattern from a wildcard pattern
func Compile(pattern string) (*Pattern, error) {
	if pattern == "" {
		return nil, errors.New(errors.ErrInvalidInput, "empty pattern")
	}

	re, err := regexp.Compile(Expression(pattern))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot compile pattern %q", pattern)
	}

	return &Pattern{source: pattern, re: re}, nil
}

// Match reports whether name matches the whole pattern
func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

// String returns the source pattern
func (p *Pattern) String() string {
	return p.source
}
