package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/sweep/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helpFS() fstest.MapFS {
	return fstest.MapFS{
		"rules.md":           {Data: []byte("# Rules\n\nmv, pre and suf")},
		"option-dry-run.txt": {Data: []byte("Describe instead of acting")},
		"notes/patterns.txt": {Data: []byte("* matches word characters")},
		"ignore.json":        {Data: []byte("{}")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	t.Run("default_extensions", func(t *testing.T) {
		tm := topics.New(helpFS(), topics.Options{})
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"option-dry-run", "patterns", "rules"}, tm.ListTopics())

		topic, ok := tm.GetTopic("rules")
		require.True(t, ok)
		assert.Equal(t, "rules.md", topic.Path)
		assert.Equal(t, "# Rules\n\nmv, pre and suf", topic.Content)

		_, ok = tm.GetTopic("ignore")
		assert.False(t, ok)
	})

	t.Run("custom_extensions", func(t *testing.T) {
		tm := topics.New(helpFS(), topics.Options{Extensions: []string{".json"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"ignore"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := topics.New(helpFS(), topics.Options{})
	require.NoError(t, tm.Scan())

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-dry-run", topic.Name)
	}
}

func TestTopicManager_WriteIndex(t *testing.T) {
	tm := topics.New(helpFS(), topics.Options{})
	require.NoError(t, tm.Scan())

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "sweep")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  patterns\n  rules\n")
	assert.Contains(t, out, "Option topics:\n  --dry-run\n")
	assert.Contains(t, out, "Use 'sweep help <topic>'")

	var empty bytes.Buffer
	topics.New(fstest.MapFS{}, topics.Options{}).WriteIndex(&empty, "sweep")
	assert.Equal(t, "No help topics available.\n", empty.String())
}

func TestInitialize(t *testing.T) {
	root := &cobra.Command{Use: "sweep", Short: "root command"}
	root.AddCommand(&cobra.Command{Use: "run", Short: "apply rules", Run: func(*cobra.Command, []string) {}})

	_, err := topics.Initialize(root, helpFS(), topics.Options{})
	require.NoError(t, err)

	execute := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	assert.Equal(t, "Describe instead of acting", execute("help", "--dry-run"))
	assert.Contains(t, execute("help", "topics"), "General topics:")
	assert.True(t, strings.Contains(execute("help", "run"), "apply rules"))
}

func TestGlamourRenderer(t *testing.T) {
	r := topics.NewPlainMarkdownRenderer()

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Title\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
	assert.NotContains(t, out, "\x1b[")
}
