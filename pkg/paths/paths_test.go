package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input string
		want  paths.Style
	}{
		{"", paths.Native()},
		{"native", paths.Native()},
		{"posix", paths.POSIX},
		{"Windows", paths.Windows},
		{" windows ", paths.Windows},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := paths.ParseStyle(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := paths.ParseStyle("amiga")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestStyle_Base(t *testing.T) {
	tests := []struct {
		name  string
		style paths.Style
		input string
		want  string
	}{
		{"posix_plain", paths.POSIX, "song.mp3", "song.mp3"},
		{"posix_nested", paths.POSIX, "/music/rock/song.mp3", "song.mp3"},
		{"posix_keeps_backslash", paths.POSIX, `C:\music\song.mp3`, `C:\music\song.mp3`},
		{"posix_trailing", paths.POSIX, "/music/", "music"},
		{"windows_backslash", paths.Windows, `C:\Users\Username\Music\song.mp3`, "song.mp3"},
		{"windows_mixed", paths.Windows, `C:\Users/Username\song.mp3`, "song.mp3"},
		{"windows_forward", paths.Windows, "a/b/c.txt", "c.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.Base(tt.input))
		})
	}
}

func TestStyle_Join(t *testing.T) {
	tests := []struct {
		name  string
		style paths.Style
		dir   string
		file  string
		want  string
	}{
		{"posix", paths.POSIX, "backup", "a.txt", "backup/a.txt"},
		{"posix_trailing_separator", paths.POSIX, "backup/", "a.txt", "backup/a.txt"},
		{"posix_leading_separator", paths.POSIX, "backup", "/a.txt", "backup/a.txt"},
		{"windows", paths.Windows, `C:\Users\Username\Music`, "file.mp3", `C:\Users\Username\Music\file.mp3`},
		{"windows_trailing", paths.Windows, `C:\Music\`, "file.mp3", `C:\Music\file.mp3`},
		{"windows_forward_trailing", paths.Windows, "D:/Music/", "file.mp3", "D:/Music/file.mp3"},
		{"empty_dir", paths.POSIX, "", "a.txt", "a.txt"},
		{"empty_name", paths.POSIX, "dir", "", "dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.Join(tt.dir, tt.file))
		})
	}
}

func TestStyle_Accessors(t *testing.T) {
	assert.Equal(t, "posix", paths.POSIX.Name())
	assert.Equal(t, "/", paths.POSIX.Separator())
	assert.Equal(t, `\`, paths.Windows.Separator())
	assert.True(t, paths.Windows.IsSeparator('/'))
	assert.False(t, paths.POSIX.IsSeparator('\\'))
}

func TestSettingsPath(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, dir)
		assert.Equal(t, filepath.Join(dir, "config.toml"), paths.SettingsPath())
	})

	t.Run("xdg", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(paths.EnvConfigDir, "")
		t.Setenv("XDG_CONFIG_HOME", home)
		assert.Equal(t, filepath.Join(home, "sweep", "config.toml"), paths.SettingsPath())
	})
}
