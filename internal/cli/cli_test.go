package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand()

	for _, path := range [][]string{{"serve"}, {"migrate"}, {"email", "preview"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestEmailPreview(t *testing.T) {
	root := NewRootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"email", "preview", "simple"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Hello John")
}

func TestEmailPreviewUnknownTemplate(t *testing.T) {
	root := NewRootCommand()

	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"email", "preview", "missing"})

	err := root.Execute()
	assert.ErrorContains(t, err, "available: simple")
}
