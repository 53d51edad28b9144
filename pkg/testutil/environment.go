package testutil

import (
	"path"
	"sort"
	"testing"

	"github.com/arthur-debert/sweep/pkg/types"
	"github.com/stretchr/testify/require"
)

// TestEnvironment is an in-memory filesystem with a target directory
type TestEnvironment struct {
	t   *testing.T
	FS  types.FS
	Dir string
}

// NewTestEnvironment creates an environment whose target directory is /work
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	env := &TestEnvironment{t: t, FS: NewTestFS(), Dir: "/work"}
	require.NoError(t, env.FS.MkdirAll(env.Dir, 0755))
	return env
}

// Path returns the absolute path of name inside the target directory
func (e *TestEnvironment) Path(name string) string {
	return path.Join(e.Dir, name)
}

// WriteFiles creates files, absolute or relative to the target directory
func (e *TestEnvironment) WriteFiles(files map[string]string) {
	e.t.Helper()
	for name, content := range files {
		full := name
		if !path.IsAbs(full) {
			full = e.Path(name)
		}
		require.NoError(e.t, e.FS.MkdirAll(path.Dir(full), 0755))
		require.NoError(e.t, e.FS.WriteFile(full, []byte(content), 0644))
	}
}

// MkdirAll creates a directory, absolute or relative to the target directory
func (e *TestEnvironment) MkdirAll(dir string) string {
	e.t.Helper()
	if !path.IsAbs(dir) {
		dir = e.Path(dir)
	}
	require.NoError(e.t, e.FS.MkdirAll(dir, 0755))
	return dir
}

// ListFiles returns the sorted names of the regular files in dir
func (e *TestEnvironment) ListFiles(dir string) []string {
	e.t.Helper()
	entries, err := e.FS.ReadDir(dir)
	require.NoError(e.t, err)

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the content of a file, failing the test if it is missing
func (e *TestEnvironment) ReadFile(p string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(p)
	require.NoError(e.t, err)
	return string(data)
}

// Exists reports whether p exists
func (e *TestEnvironment) Exists(p string) bool {
	_, err := e.FS.Stat(p)
	return err == nil
}
