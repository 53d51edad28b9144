package config

import (
	"strings"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/types"
)

// Config is the complete set of sweep settings
type Config struct {
	Run    Run    `koanf:"run" toml:"run" json:"run"`
	Rules  Rules  `koanf:"rules" toml:"rules" json:"rules"`
	Paths  Paths  `koanf:"paths" toml:"paths" json:"paths"`
	Output Output `koanf:"output" toml:"output" json:"output"`
}

// Run holds the default run mode
type Run struct {
	DryRun      bool `koanf:"dry_run" toml:"dry_run" json:"dryRun"`
	Interactive bool `koanf:"interactive" toml:"interactive" json:"interactive"`
	AllMatches  bool `koanf:"all_matches" toml:"all_matches" json:"allMatches"`
}

// Rules holds rule file settings
type Rules struct {
	Extension string `koanf:"extension" toml:"extension" json:"extension"`
}

// Paths holds the separator convention of rule targets
type Paths struct {
	Style string `koanf:"style" toml:"style" json:"style"`
}

// Output holds console output settings
type Output struct {
	Color bool `koanf:"color" toml:"color" json:"color"`
}

// Mode returns the run mode the settings select
func (c *Config) Mode() types.RunMode {
	return types.RunMode{
		DryRun:      c.Run.DryRun,
		Interactive: c.Run.Interactive,
		AllMatches:  c.Run.AllMatches,
	}
}

// PathStyle resolves the configured separator convention
func (c *Config) PathStyle() (paths.Style, error) {
	return paths.ParseStyle(c.Paths.Style)
}

// Validate checks the settings that have a closed set of values
func (c *Config) Validate() error {
	if _, err := c.PathStyle(); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid paths.style")
	}
	if c.Rules.Extension == "" {
		return errors.New(errors.ErrConfigParse, "rules.extension cannot be empty")
	}
	return nil
}

// normalize fixes up values users commonly write loosely
func (c *Config) normalize() {
	c.Paths.Style = strings.ToLower(strings.TrimSpace(c.Paths.Style))
	ext := strings.TrimSpace(c.Rules.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Rules.Extension = ext
}
