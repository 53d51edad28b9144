package testutil_test

import (
	"testing"

	"github.com/arthur-debert/sweep/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTestEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFiles(map[string]string{
		"b.txt":       "b",
		"a.txt":       "a",
		"sub/c.txt":   "c",
		"sub/d/e.txt": "e",
		"/etc/r.sweep": "mv a to b",
	})

	assert.Equal(t, []string{"a.txt", "b.txt"}, env.ListFiles(env.Dir))
	assert.Equal(t, "c", env.ReadFile(env.Path("sub/c.txt")))
	assert.True(t, env.Exists("/work/sub/d/e.txt"))
	assert.False(t, env.Exists("/work/nope"))
	assert.Equal(t, "mv a to b", env.ReadFile("/etc/r.sweep"))

	backup := env.MkdirAll("backup")
	assert.Equal(t, "/work/backup", backup)
	assert.Empty(t, env.ListFiles(backup))
}

func TestNewAnsweringConfirmer(t *testing.T) {
	c := testutil.NewAnsweringConfirmer(true, false)

	first, err := c.Confirm("one?")
	assert.NoError(t, err)
	assert.True(t, first)

	second, err := c.Confirm("two?")
	assert.NoError(t, err)
	assert.False(t, second)

	c.AssertNumberOfCalls(t, "Confirm", 2)
}
