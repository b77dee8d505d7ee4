package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("same\ncontent\n"), 0o644))

	text, err := Diff(path, []byte("same\ncontent\n"))
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestDiffChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o644))

	text, err := Diff(path, []byte("line one\nline three\n"))
	require.NoError(t, err)

	assert.Contains(t, text, "-line two")
	assert.Contains(t, text, "+line three")
	assert.Contains(t, text, path+" (current)")
	assert.Contains(t, text, path+" (incoming)")
}

func TestDiffMissingCurrentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.json")

	text, err := Diff(path, []byte("fresh\n"))
	require.NoError(t, err)
	assert.Contains(t, text, "+fresh")
}
