package executor_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/executor"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/rules"
	"github.com/arthur-debert/sweep/pkg/style"
	"github.com/arthur-debert/sweep/pkg/testutil"
	"github.com/arthur-debert/sweep/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureGlobalLog points the global logger at a buffer for one test
func captureGlobalLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous, level := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	})
	return buf
}

func TestNew_DefaultLoggerWritesToGlobalLogger(t *testing.T) {
	logs := captureGlobalLog(t)
	env := testutil.NewTestEnvironment(t)
	env.WriteFiles(map[string]string{"a.txt": "a"})

	engine := executor.New(executor.Options{
		FS:      env.FS,
		Paths:   paths.POSIX,
		Printer: style.NewPrinter(&bytes.Buffer{}, false),
	})
	_, err := engine.Execute(rules.Parse("pre a.txt with x_", 0), env.Dir, types.RunMode{})
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, `"component":"executor"`)
	assert.Contains(t, out, `"message":"Executing rule"`)
	assert.Contains(t, out, `"message":"Applied rule"`)
}

func TestNew_CustomLogger(t *testing.T) {
	captureGlobalLog(t)
	env := testutil.NewTestEnvironment(t)
	env.WriteFiles(map[string]string{"a.txt": "a"})

	custom := &bytes.Buffer{}
	logger := zerolog.New(custom)
	engine := executor.New(executor.Options{
		FS:      env.FS,
		Paths:   paths.POSIX,
		Printer: style.NewPrinter(&bytes.Buffer{}, false),
		Logger:  &logger,
	})
	_, err := engine.Execute(rules.Parse("pre a.txt with x_", 0), env.Dir, types.RunMode{})
	require.NoError(t, err)

	assert.Contains(t, custom.String(), `"message":"Applied rule"`)
}

func TestExecute_InteractiveFailureIsLoggedNotPrinted(t *testing.T) {
	logs := captureGlobalLog(t)
	confirmer := testutil.NewAnsweringConfirmer(true)
	f := newFixture(t, map[string]string{"a.txt": "a", "x_a.txt": "x"}, confirmer)

	result, err := f.engine.Execute(rules.Parse("pre a.txt with x_", 0), f.env.Dir, interactive)

	require.NoError(t, err)
	confirmer.AssertExpectations(t)
	assert.Equal(t, executor.OutcomeFailed, result.Outcome)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, errors.ErrAlreadyExists, result.Failures[0].Code)
	assert.Empty(t, f.out.String())

	out := logs.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"code":"ALREADY_EXISTS"`)
	assert.Contains(t, out, `"message":"cannot rename to /work/x_a.txt"`)
}
