package batch

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/birchgrove/tfbump/internal/fsutil"
)

// System abstracts file access to enable dependency injection in batch logic.
// It is a superset of the per-package interfaces of the phases it drives, so
// one value serves discovery, rewriting, backups and removal alike.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]os.DirEntry, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory and returns its entries sorted by name.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Remove removes the named file or empty directory.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// WalkDir walks the file tree rooted at root.
func (RealSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
