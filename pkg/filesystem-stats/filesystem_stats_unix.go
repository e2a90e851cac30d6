//go:build linux || darwin || freebsd

package filesystemstats

import "golang.org/x/sys/unix"

// unixStatfs is used to mock the unix.Statfs function.
var unixStatfs = unix.Statfs

// UnixFilesystemStatter implements FilesystemStatter using the real unix.Statfs system call.
type UnixFilesystemStatter struct{}

// Statfs calls the unix.Statfs system call.
// See http://man7.org/linux/man-pages/man2/statfs.2.html for details.
func (u *UnixFilesystemStatter) Statfs(path string) (*VolumeStats, error) {
	var statfs unix.Statfs_t
	if err := unixStatfs(path, &statfs); err != nil {
		return nil, err
	}

	return &VolumeStats{
		BlockSize:       uint64(statfs.Bsize),  //nolint:unconvert // field width differs per platform
		Blocks:          uint64(statfs.Blocks), //nolint:unconvert // field width differs per platform
		BlocksFree:      uint64(statfs.Bfree),  //nolint:unconvert // field width differs per platform
		BlocksAvailable: uint64(statfs.Bavail), //nolint:unconvert,gosec // signed on freebsd, never negative for mounted filesystems
		Files:           uint64(statfs.Files),  //nolint:unconvert // field width differs per platform
		FilesFree:       uint64(statfs.Ffree),  //nolint:unconvert,gosec // signed on freebsd
	}, nil
}
