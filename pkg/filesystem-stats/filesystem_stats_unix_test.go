//go:build linux || darwin || freebsd

package filesystemstats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestUnixFilesystemStatter_Statfs(t *testing.T) {
	tests := []struct {
		name       string
		statfsFunc func(string, *unix.Statfs_t) error
		want       *VolumeStats
		wantErr    error
	}{
		{
			name: "Success",
			statfsFunc: func(path string, stat *unix.Statfs_t) error {
				stat.Blocks = 1000
				stat.Bfree = 200
				stat.Bavail = 150
				stat.Files = 500
				stat.Ffree = 100
				stat.Bsize = 4096
				return nil
			},
			want: &VolumeStats{
				BlockSize:       4096,
				Blocks:          1000,
				BlocksFree:      200,
				BlocksAvailable: 150,
				Files:           500,
				FilesFree:       100,
			},
		},
		{
			name: "Path does not exist",
			statfsFunc: func(path string, stat *unix.Statfs_t) error {
				return unix.ENOENT
			},
			wantErr: unix.ENOENT,
		},
		{
			name: "Filesystem not mounted",
			statfsFunc: func(path string, stat *unix.Statfs_t) error {
				return unix.EIO
			},
			wantErr: unix.EIO,
		},
	}

	orig := unixStatfs
	t.Cleanup(func() { unixStatfs = orig })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unixStatfs = tt.statfsFunc

			got, err := NewFilesystemStatter().Statfs("/valid/path")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnixFilesystemStatter_StatfsTempDir(t *testing.T) {
	got, err := NewFilesystemStatter().Statfs(t.TempDir())
	require.NoError(t, err)
	assert.NotZero(t, got.BlockSize)
	assert.NotZero(t, got.Blocks)
	assert.LessOrEqual(t, got.BlocksAvailable, got.Blocks)
	assert.Zero(t, got.AvailableMB)
}
