package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCacheDirAt creates a .terraform directory holding a single provider
// payload of sizeBytes, returning the cache directory path.
func writeCacheDirAt(t *testing.T, root string, sizeBytes int) string {
	t.Helper()
	cacheDir := filepath.Join(root, ".terraform", "providers")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := bytes.Repeat([]byte("x"), sizeBytes)
	if err := os.WriteFile(filepath.Join(cacheDir, "provider.bin"), payload, 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	return filepath.Join(root, ".terraform")
}

func TestRemoveCacheDirsWithYes(t *testing.T) {
	dir := t.TempDir()
	cacheDir := writeCacheDirAt(t, dir, 512*1024)

	out, err := runCommand(t, "remove-cache-dirs", "--path", dir, "--yes")
	if err != nil {
		t.Fatalf("remove-cache-dirs: %v", err)
	}

	requireContains(t, out, "Removing .terraform directories under "+dir)
	requireContains(t, out, "Found 1 .terraform directories")
	requireContains(t, out, "Removed: "+cacheDir+" (0.50 MB)")
	requireContains(t, out, "Removed 1 directories, freed 0.50 MB")

	if _, err := os.Stat(cacheDir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cache directory still present: %v", err)
	}
}

func TestRemoveCacheDirsDryRun(t *testing.T) {
	stubTerminal(t, false)

	dir := t.TempDir()
	cacheDir := writeCacheDirAt(t, dir, 256*1024)

	out, err := runCommand(t, "remove-cache-dirs", "--path", dir, "--dry-run")
	if err != nil {
		t.Fatalf("remove-cache-dirs --dry-run: %v", err)
	}

	requireContains(t, out, "Would remove: "+cacheDir+" (0.25 MB)")
	if strings.Contains(out, "freed") {
		t.Fatalf("dry run printed a removal summary: %q", out)
	}
	if _, err := os.Stat(cacheDir); err != nil {
		t.Fatalf("dry run removed the cache directory: %v", err)
	}
}

func TestRemoveCacheDirsDeclinedPrompt(t *testing.T) {
	stubTerminal(t, true)

	dir := t.TempDir()
	cacheDir := writeCacheDirAt(t, dir, 1024)

	out, err := runCommandInput(t, "n\n", "remove-cache-dirs", "--path", dir)
	requireContains(t, out, "Remove 1 .terraform directories? [y/N]: ")
	requireContains(t, out, "Aborted.")

	var silent *SilentExitError
	if !errors.As(err, &silent) || silent.Code != 1 {
		t.Fatalf("expected silent exit with code 1, got %v", err)
	}
	if _, err := os.Stat(cacheDir); err != nil {
		t.Fatalf("declined prompt removed the cache directory: %v", err)
	}
}

func TestRemoveCacheDirsNone(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "remove-cache-dirs", "--path", dir)
	if err != nil {
		t.Fatalf("remove-cache-dirs: %v", err)
	}
	requireContains(t, out, "No .terraform directories found in "+dir)
}

func TestRemoveCacheDirsRecursive(t *testing.T) {
	dir := t.TempDir()
	topCache := writeCacheDirAt(t, dir, 1024)

	nested := filepath.Join(dir, "modules", "vpc")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nestedCache := writeCacheDirAt(t, nested, 1024)

	out, err := runCommand(t, "remove-cache-dirs", "--path", dir, "--recursive", "--yes")
	if err != nil {
		t.Fatalf("remove-cache-dirs --recursive: %v", err)
	}
	requireContains(t, out, "Found 2 .terraform directories")
	requireContains(t, out, "Removed 2 directories")

	for _, path := range []string{topCache, nestedCache} {
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("cache directory %s still present: %v", path, err)
		}
	}
}
