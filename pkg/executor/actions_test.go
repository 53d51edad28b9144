package executor_test

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/executor"
	"github.com/arthur-debert/sweep/pkg/filesystem"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/rules"
	"github.com/arthur-debert/sweep/pkg/style"
	"github.com/arthur-debert/sweep/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_ReadOnlyFilesystem(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/work/a.txt", []byte("a"), 0644))

	out := &bytes.Buffer{}
	engine := executor.New(executor.Options{
		FS:      filesystem.NewAferoFS(afero.NewReadOnlyFs(base)),
		Paths:   paths.POSIX,
		Printer: style.NewPrinter(out, false),
	})

	result, err := engine.Execute(rules.Parse("pre a.txt with x_", 0), "/work", types.RunMode{})

	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, errors.ErrPermission, result.Failures[0].Code)
	assert.Equal(t, "error: rule line 1 failed on a.txt: cannot rename to /work/x_a.txt [PERMISSION]\n", out.String())
}

// undeletableFS refuses every Remove
type undeletableFS struct {
	types.FS
}

func (undeletableFS) Remove(string) error {
	return &fs.PathError{Op: "remove", Path: "/work/a.txt", Err: fs.ErrPermission}
}

func TestExecute_MoveKeepsBothCopiesWhenDeleteFails(t *testing.T) {
	base := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, base.MkdirAll("/backup", 0755))
	require.NoError(t, base.WriteFile("/work/a.txt", []byte("a"), 0644))

	out := &bytes.Buffer{}
	engine := executor.New(executor.Options{
		FS:      undeletableFS{base},
		Paths:   paths.POSIX,
		Printer: style.NewPrinter(out, false),
	})

	result, err := engine.Execute(rules.Parse("mv a.txt to /backup", 0), "/work", types.RunMode{})

	require.NoError(t, err)
	assert.Equal(t, executor.OutcomeFailed, result.Outcome)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, errors.ErrPermission, result.Failures[0].Code)
	assert.True(t, errors.IsErrorCode(result.Failures[0].Err, errors.ErrFileDelete))
	assert.Equal(t,
		"error: rule line 1 failed on a.txt: copied to /backup/a.txt but cannot delete the original [PERMISSION]\n",
		out.String())

	original, err := base.ReadFile("/work/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", string(original))
	copied, err := base.ReadFile("/backup/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", string(copied))
}

func TestExecute_WindowsTargets(t *testing.T) {
	out := &bytes.Buffer{}
	engine := executor.New(executor.Options{
		FS:      filesystem.NewAferoFS(afero.NewMemMapFs()),
		Paths:   paths.Windows,
		Printer: style.NewPrinter(out, false),
	})

	rule := rules.Parse(`mv *.mp3 to C:\Users\Username\Music`, 0)
	require.True(t, rule.Valid)

	_, err := engine.Execute(rule, `C:\in`, types.RunMode{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "[dry-run][line 1] move all files following the pattern `*.mp3` to `C:\\Users\\Username\\Music`\n", out.String())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "succeeded", executor.OutcomeSucceeded.String())
	assert.Equal(t, "no-match", executor.OutcomeNoMatch.String())
	assert.Equal(t, "unknown", executor.Outcome(42).String())
}
