// Test Type: Business Logic Integration
// Description: Tests for loading rule files and applying them in order

package run_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/sweep/pkg/commands/run"
	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/executor"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/style"
	"github.com/arthur-debert/sweep/pkg/testutil"
	"github.com/arthur-debert/sweep/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(env *testutil.TestEnvironment, out *bytes.Buffer) run.Options {
	return run.Options{
		Dir:       env.Dir,
		SearchDir: "/rules",
		FS:        env.FS,
		Paths:     paths.POSIX,
		Printer:   style.NewPrinter(out, false),
	}
}

func TestRunRules_DiscoversAndRunsInOrder(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFiles(map[string]string{
		"song.mp3": "",
		"/rules/organize.sweep": strings.Join([]string{
			"// rename then move",
			"pre *.mp3 with new_",
			"",
			"mv new_*.mp3 to /music   // renamed files only",
			"cp x to y",
		}, "\n"),
	})
	env.MkdirAll("/music")
	out := &bytes.Buffer{}

	result, err := run.RunRules(options(env, out))

	require.NoError(t, err)
	require.Len(t, result.Configurations, 1)
	assert.Equal(t, "/rules/organize.sweep", result.Configurations[0].Filename)

	outcomes := []executor.Outcome{}
	for _, r := range result.Configurations[0].Results {
		outcomes = append(outcomes, r.Outcome)
	}
	assert.Equal(t, []executor.Outcome{
		executor.OutcomeSucceeded,
		executor.OutcomeSucceeded,
		executor.OutcomeInvalid,
	}, outcomes)
	assert.Equal(t, 1, result.Failed())

	assert.Equal(t, strings.Join([]string{
		"success: rule line 2 - pre *.mp3 with new_",
		"success: rule line 4 - mv new_*.mp3 to /music",
		"error: rule line 5 is invalid. Invalid first keyword.",
		"",
	}, "\n"), out.String())
	assert.Empty(t, env.ListFiles(env.Dir))
	assert.Equal(t, []string{"new_song.mp3"}, env.ListFiles("/music"))
}

func TestRunRules_ExplicitFilesInOrder(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFiles(map[string]string{
		"a.txt":         "",
		"/cfg/one.conf": "suf *.txt with _1",
		"/cfg/two.conf": "suf *.txt with _2",
	})
	out := &bytes.Buffer{}
	opts := options(env, out)
	opts.Files = []string{"/cfg/two.conf", "/cfg/one.conf"}

	result, err := run.RunRules(opts)

	require.NoError(t, err)
	assert.Len(t, result.Configurations, 2)
	assert.Equal(t, []string{"a_2_1.txt"}, env.ListFiles(env.Dir))
}

func TestRunRules_DryRunLeavesDirectoryAlone(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFiles(map[string]string{
		"a.txt":           "",
		"/rules/x.sweep":  "mv *.txt to backup\npre *.txt with old_",
		"/rules/y.sweep~": "ignored",
	})
	out := &bytes.Buffer{}
	opts := options(env, out)
	opts.Mode = types.RunMode{DryRun: true}

	result, err := run.RunRules(opts)

	require.NoError(t, err)
	assert.Equal(t, types.RunMode{DryRun: true}, result.Mode)
	assert.Equal(t, 0, result.Failed())
	assert.Equal(t, 2, strings.Count(out.String(), "[dry-run]"))
	assert.Equal(t, []string{"a.txt"}, env.ListFiles(env.Dir))
}

func TestRunRules_Errors(t *testing.T) {
	t.Run("no_rule_file", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		env.MkdirAll("/rules")

		_, err := run.RunRules(options(env, &bytes.Buffer{}))

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("missing_file_touches_nothing", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		env.WriteFiles(map[string]string{"a.txt": "", "/cfg/ok.sweep": "pre *.txt with x_"})
		out := &bytes.Buffer{}
		opts := options(env, out)
		opts.Files = []string{"/cfg/ok.sweep", "/cfg/missing.sweep"}

		_, err := run.RunRules(opts)

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.Empty(t, out.String())
		assert.Equal(t, []string{"a.txt"}, env.ListFiles(env.Dir))
	})

	t.Run("unreadable_target_stops_run", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		env.WriteFiles(map[string]string{"/rules/x.sweep": "mv *.txt to /b\nmv *.md to /b"})
		opts := options(env, &bytes.Buffer{})
		opts.Dir = "/absent"

		result, err := run.RunRules(opts)

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirRead))
		require.Len(t, result.Configurations, 1)
		assert.Len(t, result.Configurations[0].Results, 1)
	})
}
