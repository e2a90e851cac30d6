package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem(t *testing.T) {
	fsys := NewFileSystem()
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := fsys.Stat(dir)
	require.Error(t, err)
	assert.True(t, fsys.IsNotExist(err))

	require.NoError(t, fsys.MkdirAll(dir, os.FileMode(0o755)))

	info, err := fsys.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.False(t, fsys.IsNotExist(nil))
}
