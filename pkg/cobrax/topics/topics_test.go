package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"conversions.md":    {Data: []byte("# Conversions\n\nSixteen of them.")},
		"menu.txt":          {Data: []byte("MENU HELP")},
		"advanced/clamp.md": {Data: []byte("Clamping details")},
		"notes.json":        {Data: []byte("{}")},
		"validation.txxt":   {Data: []byte("Validation rules")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.Load())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"conversions", true, "# Conversions\n\nSixteen of them."},
			{"menu", true, "MENU HELP"},
			{"clamp", true, "Clamping details"},
			{"notes", false, ""},
			{"validation", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"validation"}, tm.ListTopics())
	})

	t.Run("empty file system", func(t *testing.T) {
		tm := New(fstest.MapFS{}, Options{})
		require.NoError(t, tm.Load())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicStripsDashes(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Load())

	topic, exists := tm.GetTopic("--menu")
	require.True(t, exists)
	assert.Equal(t, "menu", topic.Name)
}

func TestTopicManager_ListTopicsSorted(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Load())

	assert.Equal(t, []string{"clamp", "conversions", "menu"}, tm.ListTopics())
}

type upperRenderer struct{ formats []string }

func (r *upperRenderer) Render(content, format string) string {
	r.formats = append(r.formats, format)
	return "RENDERED:" + content
}

func TestTopicManager_RenderUsesExtension(t *testing.T) {
	r := &upperRenderer{}
	tm := New(testFS(), Options{Renderer: r})
	require.NoError(t, tm.Load())

	topic, _ := tm.GetTopic("conversions")
	assert.Equal(t, "RENDERED:# Conversions\n\nSixteen of them.", tm.Render(topic))
	assert.Equal(t, []string{".md"}, r.formats)
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: StyleNoTTY, Width: 60}

	out := r.Render("# Conversions\n\nSixteen of them.", ".md")
	assert.Contains(t, out, "Conversions")
	assert.Contains(t, out, "Sixteen of them.")

	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "testapp", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "convert",
		Short: "Convert a value",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	_, err := Initialize(root, testFS(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestIntegration_HelpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"topic", []string{"help", "menu"}, []string{"MENU HELP"}},
		{"topic list", []string{"help", "topics"}, []string{"Available help topics:", "  conversions", "testapp help <topic>"}},
		{"command", []string{"help", "convert"}, []string{"Convert a value"}},
		{"root", []string{"help"}, []string{"Test application"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, buf := newTestRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
