// Package rewrite updates version constraints inside Terraform configuration
// files. Files are held in memory; the bytes last seen on disk are retained so
// modification state is always derived from content, never from flags kept in
// sync by hand.
package rewrite

import (
	"fmt"
	"os"
	"regexp"

	"github.com/birchgrove/tfbump/internal/messages"
)

// coreVersionPattern matches the quoted value of a required_version attribute.
var coreVersionPattern = regexp.MustCompile(`\b(required_version\s*=\s*)"([^"]+)"`)

// File is one Terraform configuration file held in memory.
type File struct {
	Path string
	// BackupPath is set once a pre-write backup has been taken for this file.
	BackupPath string

	content  string
	original string
	perm     os.FileMode
}

// Load reads the configuration file at path, capturing its mode so a later
// Save preserves it.
func Load(sys System, path string) (*File, error) {
	info, err := sys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf(messages.RewriteReadFailedFmt, path, err)
	}
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.RewriteReadFailedFmt, path, err)
	}
	content := string(data)
	return &File{
		Path:     path,
		content:  content,
		original: content,
		perm:     info.Mode().Perm(),
	}, nil
}

// Content returns the current in-memory content.
func (f *File) Content() string {
	return f.content
}

// Original returns the content as last read from or written to disk.
func (f *File) Original() string {
	return f.original
}

// Modified reports whether the in-memory content differs from disk.
func (f *File) Modified() bool {
	return f.content != f.original
}

// UpdateTerraformVersion replaces the value of the first required_version
// attribute with constraint. It reports whether the content changed.
func (f *File) UpdateTerraformVersion(constraint string) bool {
	loc := coreVersionPattern.FindStringSubmatchIndex(f.content)
	if loc == nil {
		return false
	}
	return f.splice(loc[4], loc[5], constraint)
}

// UpdateProviderVersion replaces the version value inside the first
// required_providers entry for name. The entry must be a flat object of the
// form `name = { ... version = "..." ... }`; an entry with nested braces
// before its version attribute is left untouched. It reports whether the
// content changed.
func (f *File) UpdateProviderVersion(name, constraint string) bool {
	pattern := regexp.MustCompile(
		`\b(` + regexp.QuoteMeta(name) + `\s*=\s*\{[^{}]*?version\s*=\s*)"([^"]+)"`,
	)
	loc := pattern.FindStringSubmatchIndex(f.content)
	if loc == nil {
		return false
	}
	return f.splice(loc[4], loc[5], constraint)
}

// splice overwrites content[start:end) with constraint, reporting whether the
// bytes actually changed.
func (f *File) splice(start, end int, constraint string) bool {
	if f.content[start:end] == constraint {
		return false
	}
	f.content = f.content[:start] + constraint + f.content[end:]
	return true
}

// Save writes the current content back to disk when modified, preserving the
// file mode captured at load. A successful save leaves the file unmodified.
func (f *File) Save(sys System) error {
	if !f.Modified() {
		return nil
	}
	if err := sys.WriteFileAtomic(f.Path, []byte(f.content), f.perm); err != nil {
		return fmt.Errorf(messages.RewriteWriteFailedFmt, f.Path, err)
	}
	f.original = f.content
	return nil
}
