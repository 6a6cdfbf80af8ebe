package discover

import (
	"io/fs"
	"os"
	"path/filepath"
)

// System abstracts filesystem reads to enable dependency injection in discovery logic.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir reads the named directory and returns all directory entries.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// WalkDir walks the file tree rooted at root, calling fn for each file or directory.
func (RealSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
