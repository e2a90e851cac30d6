package filesystemstats

import (
	"math"
	"math/bits"
)

// bytesPerMB is the divisor used to derive AvailableMB.
const bytesPerMB = 1024 * 1024

//go:generate mockgen -source=filesystem_stats.go -destination=../../mocks/mock_filesystem_stats.go -package=mocks

// FilesystemStatter provides an interface for getting filesystem statistics.
// This interface allows for easier mocking in tests.
type FilesystemStatter interface {
	// Statfs returns statistics for the filesystem containing path.
	// AvailableMB is left unset; see [AvailableMB].
	Statfs(path string) (*VolumeStats, error)
}

// VolumeStats holds the volume-level statistics reported by statfs(2).
// Field names in the encoded forms follow the statvfs naming.
type VolumeStats struct {
	BlockSize       uint64 `json:"bsize" yaml:"bsize"`
	Blocks          uint64 `json:"blocks" yaml:"blocks"`
	BlocksFree      uint64 `json:"bfree" yaml:"bfree"`
	BlocksAvailable uint64 `json:"bavail" yaml:"bavail"`
	Files           uint64 `json:"files" yaml:"files"`
	FilesFree       uint64 `json:"ffree" yaml:"ffree"`

	// AvailableMB is the space available to unprivileged users, in whole
	// megabytes (MiB).
	AvailableMB uint64 `json:"availableMB" yaml:"availableMB"`
}

// AvailableMB returns floor(blockSize * blocksAvailable / 1048576).
// The product is computed in 128 bits; a quotient that does not fit in a
// uint64 saturates to math.MaxUint64.
func AvailableMB(blockSize, blocksAvailable uint64) uint64 {
	hi, lo := bits.Mul64(blockSize, blocksAvailable)
	if hi >= bytesPerMB {
		return math.MaxUint64
	}
	quo, _ := bits.Div64(hi, lo, bytesPerMB)
	return quo
}

// NewFilesystemStatter creates a new FilesystemStatter backed by the statfs
// system call.
func NewFilesystemStatter() FilesystemStatter {
	return &UnixFilesystemStatter{}
}
