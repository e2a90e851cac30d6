package fsutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	filesystemstats "github.com/linode/linode-fsutil/pkg/filesystem-stats"
)

func TestDirStat_Marshal(t *testing.T) {
	d := &DirStat{
		FileInfo: dirInfo,
		Path:     "/mnt/data",
		Statvfs:  &filesystemstats.VolumeStats{BlockSize: 4096, BlocksAvailable: 256, AvailableMB: 1},
	}

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "/mnt/data", got["path"])
	assert.Equal(t, true, got["isDirectory"])
	assert.Equal(t, "drwxr-xr-x", got["mode"])
	require.Contains(t, got, "statvfs")
	assert.InDelta(t, 1, got["statvfs"].(map[string]any)["availableMB"], 0)

	y, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(y), "isDirectory: true")
	assert.Contains(t, string(y), "availableMB: 1")
}

func TestDirStat_MarshalWithoutStatvfs(t *testing.T) {
	b, err := json.Marshal(&DirStat{FileInfo: dirInfo, Path: "/mnt/data"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "statvfs")
}
