package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sweep/pkg/errors"
)

const (
	// EnvConfigDir overrides the XDG config directory for sweep
	EnvConfigDir = "SWEEP_CONFIG_DIR"

	// AppDirName is the directory name for sweep-specific files
	AppDirName = "sweep"

	// SettingsFile is the name of the user settings file
	SettingsFile = "config.toml"
)

// Style is a path separator convention
type Style struct {
	name      string
	separator byte
	splitOn   string
}

var (
	// POSIX uses "/" only
	POSIX = Style{name: "posix", separator: '/', splitOn: "/"}

	// Windows joins with "\" and accepts both separators when splitting
	Windows = Style{name: "windows", separator: '\\', splitOn: `\/`}
)

// Native returns the style of the host operating system
func Native() Style {
	if filepath.Separator == '\\' {
		return Windows
	}
	return POSIX
}

// ParseStyle resolves a style by name; "" and "native" select the host style
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return Native(), nil
	case "posix":
		return POSIX, nil
	case "windows":
		return Windows, nil
	}
	return Style{}, errors.Newf(errors.ErrInvalidInput, "unknown path style %q", name).
		WithDetail("valid", []string{"native", "posix", "windows"})
}

// Name returns the style name
func (s Style) Name() string {
	return s.name
}

// Separator returns the separator used when joining
func (s Style) Separator() string {
	return string(s.separator)
}

// IsSeparator reports whether c separates segments in this style
func (s Style) IsSeparator(c byte) bool {
	return strings.IndexByte(s.splitOn, c) >= 0
}

// Base returns the final segment of p. Trailing separators are ignored.
func (s Style) Base(p string) string {
	p = strings.TrimRight(p, s.splitOn)
	if i := strings.LastIndexAny(p, s.splitOn); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Join appends name to dir, inserting a separator unless one is already
// present at the boundary.
func (s Style) Join(dir, name string) string {
	switch {
	case dir == "":
		return name
	case name == "":
		return dir
	case s.IsSeparator(dir[len(dir)-1]) || s.IsSeparator(name[0]):
		return dir + name
	}
	return dir + string(s.separator) + name
}

// SettingsPath returns the path of the user settings file
func SettingsPath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, SettingsFile)
	}
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppDirName, SettingsFile)
}
