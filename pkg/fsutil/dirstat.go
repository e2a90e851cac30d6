package fsutil

import (
	"encoding/json"
	"io/fs"
	"time"

	filesystemstats "github.com/linode/linode-fsutil/pkg/filesystem-stats"
)

// DirStat is the stat of a directory returned by EnsureDir and
// EnsureAndStat.
type DirStat struct {
	fs.FileInfo

	// Path is the cleaned path that was stat'ed.
	Path string

	// Statvfs is set by EnsureAndStat only.
	Statvfs *filesystemstats.VolumeStats
}

type dirStatView struct {
	Path        string                       `json:"path" yaml:"path"`
	Name        string                       `json:"name" yaml:"name"`
	Size        int64                        `json:"size" yaml:"size"`
	Mode        string                       `json:"mode" yaml:"mode"`
	ModTime     time.Time                    `json:"modTime" yaml:"modTime"`
	IsDirectory bool                         `json:"isDirectory" yaml:"isDirectory"`
	Statvfs     *filesystemstats.VolumeStats `json:"statvfs,omitempty" yaml:"statvfs,omitempty"`
}

func (d *DirStat) view() dirStatView {
	return dirStatView{
		Path:        d.Path,
		Name:        d.Name(),
		Size:        d.Size(),
		Mode:        d.Mode().String(),
		ModTime:     d.ModTime(),
		IsDirectory: d.IsDir(),
		Statvfs:     d.Statvfs,
	}
}

func (d *DirStat) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.view())
}

func (d *DirStat) MarshalYAML() (any, error) {
	return d.view(), nil
}
