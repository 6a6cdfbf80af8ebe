// Package discover locates Terraform configuration files, dependency lock
// files, and provider cache directories under a target tree.
//
// All discovery respects the cache exclusion rule: paths containing a
// .terraform segment never count as configuration or lock results, because
// Terraform mirrors module sources (including their .tf files) into its
// cache directory.
package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/birchgrove/tfbump/internal/messages"
)

const (
	// CacheDirName is the directory Terraform uses for provider and module caches.
	CacheDirName = ".terraform"
	// LockFileName is the dependency lock file maintained by terraform providers lock.
	LockFileName = ".terraform.lock.hcl"

	configSuffix = ".tf"
)

// IsExcluded reports whether path contains a .terraform path segment.
func IsExcluded(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == CacheDirName {
			return true
		}
	}
	return false
}

// TerraformFiles returns the .tf files under root. Recursive mode walks the
// whole tree; otherwise only direct children of root are considered. Results
// are in traversal order. Unreadable subtrees are skipped, not fatal.
func TerraformFiles(sys System, root string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := sys.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf(messages.DiscoverReadDirFmt, root, err)
		}
		var files []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), configSuffix) {
				continue
			}
			path := filepath.Join(root, entry.Name())
			if IsExcluded(path) {
				continue
			}
			files = append(files, path)
		}
		return files, nil
	}

	var files []string
	err := sys.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if entry.Name() == CacheDirName {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), configSuffix) && !IsExcluded(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.DiscoverWalkFailedFmt, root, err)
	}
	return files, nil
}

// LockFiles returns the .terraform.lock.hcl files under root. Recursive mode
// walks the whole tree. Non-recursive mode checks exactly one level below
// root; root itself is never checked. The asymmetry with TerraformFiles
// matches how lock files sit next to module directories rather than inside
// the target root.
func LockFiles(sys System, root string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := sys.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf(messages.DiscoverReadDirFmt, root, err)
		}
		var locks []string
		for _, entry := range entries {
			if !entry.IsDir() || entry.Name() == CacheDirName {
				continue
			}
			candidate := filepath.Join(root, entry.Name(), LockFileName)
			if IsExcluded(candidate) {
				continue
			}
			info, err := sys.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}
			locks = append(locks, candidate)
		}
		return locks, nil
	}

	var locks []string
	err := sys.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if entry.Name() == CacheDirName {
				return fs.SkipDir
			}
			return nil
		}
		if entry.Name() == LockFileName && !IsExcluded(path) {
			locks = append(locks, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.DiscoverWalkFailedFmt, root, err)
	}
	return locks, nil
}

// ModuleDirs returns the unique parent directories of the .tf files under
// root, in first-seen traversal order.
func ModuleDirs(sys System, root string, recursive bool) ([]string, error) {
	files, err := TerraformFiles(sys, root, recursive)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(files))
	var dirs []string
	for _, file := range files {
		dir := filepath.Dir(file)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// CacheDirs returns the .terraform directories under root. Recursive mode
// reports every directory named .terraform at any depth. Non-recursive mode
// reports root itself when it is a cache directory, plus immediate child
// cache directories.
func CacheDirs(sys System, root string, recursive bool) ([]string, error) {
	if !recursive {
		var dirs []string
		if filepath.Base(root) == CacheDirName {
			if info, err := sys.Stat(root); err == nil && info.IsDir() {
				dirs = append(dirs, root)
			}
		}
		entries, err := sys.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf(messages.DiscoverReadDirFmt, root, err)
		}
		for _, entry := range entries {
			if entry.IsDir() && entry.Name() == CacheDirName {
				dirs = append(dirs, filepath.Join(root, entry.Name()))
			}
		}
		return dirs, nil
	}

	var dirs []string
	err := sys.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() && entry.Name() == CacheDirName {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.DiscoverWalkFailedFmt, root, err)
	}
	return dirs, nil
}

// HasLockFile reports whether dir contains a dependency lock file.
func HasLockFile(sys System, dir string) bool {
	info, err := sys.Stat(filepath.Join(dir, LockFileName))
	return err == nil && !info.IsDir()
}
