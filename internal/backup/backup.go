// Package backup creates sibling backup copies of files before destructive
// edits, so a terraform run gone wrong is recoverable with a rename.
package backup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/birchgrove/tfbump/internal/messages"
)

const (
	// ConfigSuffix is appended to a configuration file name to form its backup name.
	ConfigSuffix = ".backup"
	// lockSuffix replaces the final extension of a lock file name.
	lockSuffix = ".hcl.backup"
)

// ConfigPath returns the backup location for a Terraform configuration file.
func ConfigPath(path string) string {
	return path + ConfigSuffix
}

// LockPath returns the backup location for a dependency lock file.
func LockPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + lockSuffix
}

// Config copies the configuration file at path to its backup location,
// preserving the file mode. It returns the backup path.
func Config(sys System, path string) (string, error) {
	return copyTo(sys, path, ConfigPath(path))
}

// Lock copies the lock file at path to its backup location, preserving the
// file mode. It returns the backup path.
func Lock(sys System, path string) (string, error) {
	return copyTo(sys, path, LockPath(path))
}

func copyTo(sys System, path string, backupPath string) (string, error) {
	info, err := sys.Stat(path)
	if err != nil {
		return "", fmt.Errorf(messages.BackupStatFailedFmt, path, err)
	}
	data, err := sys.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf(messages.BackupReadFailedFmt, path, err)
	}
	if err := sys.WriteFileAtomic(backupPath, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf(messages.BackupWriteFailedFmt, backupPath, err)
	}
	return backupPath, nil
}
