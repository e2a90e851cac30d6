//go:build !(linux || darwin || freebsd)

package filesystemstats

import "errors"

// UnixFilesystemStatter is unavailable on this platform; Statfs always fails.
type UnixFilesystemStatter struct{}

func (u *UnixFilesystemStatter) Statfs(path string) (*VolumeStats, error) {
	return nil, errors.ErrUnsupported
}
