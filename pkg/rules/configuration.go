package rules

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/types"
)

// DefaultExtension marks rule files found by discovery
const DefaultExtension = ".sweep"

// Configuration is the ordered list of rules read from one file
type Configuration struct {
	Filename string
	Rules    []Rule
}

// ParseConfiguration parses content line by line, dropping skipped lines.
// Rules keep their source line numbers, gaps included.
func ParseConfiguration(filename, content string) *Configuration {
	lines := strings.Split(content, "\n")
	config := &Configuration{Filename: filename}

	for i, line := range lines {
		rule := Parse(line, i)
		if rule.Skipped() {
			continue
		}
		config.Rules = append(config.Rules, rule)
	}

	return config
}

// LoadConfiguration reads and parses a rule file
func LoadConfiguration(fsys types.FS, path string) (*Configuration, error) {
	logger := logging.GetLogger("rules.config")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read rule file %s", path).
			WithDetail("path", path)
	}

	config := ParseConfiguration(path, string(data))
	logger.Debug().
		Str("file", path).
		Int("rules", len(config.Rules)).
		Int("invalid", len(config.Invalid())).
		Msg("Loaded configuration")

	return config, nil
}

// DiscoverConfiguration returns the first file in dir whose name ends in ext
func DiscoverConfiguration(fsys types.FS, dir, ext string) (string, error) {
	if ext == "" {
		ext = DefaultExtension
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDirRead, "cannot list %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ext) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", errors.Newf(errors.ErrNotFound, "no %s file in %s", ext, dir).
		WithDetail("dir", dir)
}

// Rule returns the rule at index i
func (c *Configuration) Rule(i int) (Rule, bool) {
	if i < 0 || i >= len(c.Rules) {
		return Rule{}, false
	}
	return c.Rules[i], true
}

// Invalid returns the rejected rules in file order
func (c *Configuration) Invalid() []Rule {
	var invalid []Rule
	for _, r := range c.Rules {
		if !r.Valid {
			invalid = append(invalid, r)
		}
	}
	return invalid
}
