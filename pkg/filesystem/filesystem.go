package filesystem

import (
	"io/fs"
	"os"
)

//go:generate mockgen -source=filesystem.go -destination=../../mocks/mock_filesystem.go -package=mocks

// FileSystem defines the file system operations needed to provision
// directories. It exists so callers can substitute a mock in tests.
type FileSystem interface {
	IsNotExist(err error) bool
	MkdirAll(path string, perm os.FileMode) error
	Stat(name string) (fs.FileInfo, error)
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

func NewFileSystem() FileSystem {
	return OSFileSystem{}
}

func (OSFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
