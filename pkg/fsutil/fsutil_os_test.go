//go:build linux || darwin || freebsd

package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_OS(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	t.Run("existing directory", func(t *testing.T) {
		got, err := EnsureDir(ctx, root)
		require.NoError(t, err)
		assert.True(t, got.IsDir())
		assert.Equal(t, filepath.Clean(root), got.Path)
	})

	t.Run("missing tree is created", func(t *testing.T) {
		target := filepath.Join(root, "a", "b", "c")

		got, err := EnsureDir(ctx, target+"/./")
		require.NoError(t, err)
		assert.True(t, got.IsDir())
		assert.Equal(t, target, got.Path)

		info, err := os.Stat(filepath.Join(root, "a"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("regular file", func(t *testing.T) {
		file := filepath.Join(root, "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		got, err := EnsureDir(ctx, file)
		require.ErrorIs(t, err, syscall.ENOTDIR)
		assert.Equal(t, "ENOTDIR", ErrnoCode(err))
		assert.Nil(t, got)
	})

	t.Run("parent is a regular file", func(t *testing.T) {
		file := filepath.Join(root, "parent-file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		_, err := EnsureDir(ctx, filepath.Join(file, "child"))
		require.Error(t, err)
		assert.Equal(t, "ENOTDIR", ErrnoCode(err))
	})
}

func TestGetFsStats_OS(t *testing.T) {
	got, err := GetFsStats(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.NotZero(t, got.BlockSize)
	assert.Equal(t, got.BlockSize*got.BlocksAvailable/(1024*1024), got.AvailableMB)

	_, err = GetFsStats(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, syscall.ENOENT)
	assert.Equal(t, "ENOENT", ErrnoCode(err))
}

func TestEnsureAndStat_OS(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	t.Run("fresh path", func(t *testing.T) {
		target := filepath.Join(root, "fresh", "dir")

		got, err := EnsureAndStat(ctx, target)
		require.NoError(t, err)
		assert.True(t, got.IsDir())
		require.NotNil(t, got.Statvfs)
		assert.Equal(t, got.Statvfs.BlockSize*got.Statvfs.BlocksAvailable/(1024*1024), got.Statvfs.AvailableMB)

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("regular file", func(t *testing.T) {
		file := filepath.Join(root, "file")
		require.NoError(t, os.WriteFile(file, nil, 0o600))

		got, err := EnsureAndStat(ctx, file)
		require.ErrorIs(t, err, syscall.ENOTDIR)
		assert.Nil(t, got)
	})
}
