package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tint/pkg/core"
)

func TestClipboardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "clipboard.json")
	cf := NewClipboardFile(path)

	_, ok, err := cf.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cf.Save(core.RGB(1, 2, 3)))
	require.NoError(t, cf.Save(core.RGB(4, 5, 6)))

	// A fresh handle, as a second CLI invocation would have.
	c, ok, err := NewClipboardFile(path).Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, core.RGB(4, 5, 6), c)
}

func TestClipboardFile_CorruptedIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipboard.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, ok, err := NewClipboardFile(path).Load()
	require.NoError(t, err)
	assert.False(t, ok)
}
