package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLockFileAt(t *testing.T, root string, module string) string {
	t.Helper()
	dir := filepath.Join(root, module)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return writeFileAt(t, dir, ".terraform.lock.hcl", "# generated by terraform\n")
}

func TestRemoveLockFilesWithYes(t *testing.T) {
	dir := t.TempDir()
	path := writeLockFileAt(t, dir, "app")

	out, err := runCommand(t, "remove-lock-files", "--path", dir, "--yes")
	if err != nil {
		t.Fatalf("remove-lock-files: %v", err)
	}

	requireContains(t, out, "Removing lock files under "+dir)
	requireContains(t, out, "Found 1 lock files")
	requireContains(t, out, "Removed: "+path)
	requireContains(t, out, "Removed 1 lock files")

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("lock file still present: %v", err)
	}
}

func TestRemoveLockFilesDryRun(t *testing.T) {
	stubTerminal(t, false)

	dir := t.TempDir()
	path := writeLockFileAt(t, dir, "app")

	out, err := runCommand(t, "remove-lock-files", "--path", dir, "--dry-run")
	if err != nil {
		t.Fatalf("remove-lock-files --dry-run: %v", err)
	}

	requireContains(t, out, "Would remove: "+path)
	if strings.Contains(out, "Removed 1 lock files") {
		t.Fatalf("dry run printed a removal summary: %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("dry run removed the lock file: %v", err)
	}
}

func TestRemoveLockFilesBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeLockFileAt(t, dir, "app")

	out, err := runCommand(t, "remove-lock-files", "--path", dir, "--yes", "--backup")
	if err != nil {
		t.Fatalf("remove-lock-files --backup: %v", err)
	}

	backupPath := strings.TrimSuffix(path, ".hcl") + ".hcl.backup"
	requireContains(t, out, "Backup created: "+backupPath)

	content, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(content) != "# generated by terraform\n" {
		t.Fatalf("backup does not hold original content: %q", content)
	}
}

func TestRemoveLockFilesDeclinedPrompt(t *testing.T) {
	stubTerminal(t, true)

	dir := t.TempDir()
	path := writeLockFileAt(t, dir, "app")

	out, err := runCommandInput(t, "n\n", "remove-lock-files", "--path", dir)
	requireContains(t, out, "Remove 1 lock files? [y/N]: ")
	requireContains(t, out, "Aborted.")

	var silent *SilentExitError
	if !errors.As(err, &silent) || silent.Code != 1 {
		t.Fatalf("expected silent exit with code 1, got %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("declined prompt removed the lock file: %v", err)
	}
}

func TestRemoveLockFilesAcceptedPrompt(t *testing.T) {
	stubTerminal(t, true)

	dir := t.TempDir()
	path := writeLockFileAt(t, dir, "app")

	out, err := runCommandInput(t, "y\n", "remove-lock-files", "--path", dir)
	if err != nil {
		t.Fatalf("remove-lock-files: %v", err)
	}
	requireContains(t, out, "Removed: "+path)
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("lock file still present: %v", err)
	}
}

func TestRemoveLockFilesRequiresTerminalWithoutYes(t *testing.T) {
	stubTerminal(t, false)

	dir := t.TempDir()
	path := writeLockFileAt(t, dir, "app")

	_, err := runCommand(t, "remove-lock-files", "--path", dir)
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected terminal guidance error, got %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("failed confirmation removed the lock file: %v", err)
	}
}

func TestRemoveLockFilesNone(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "remove-lock-files", "--path", dir)
	if err != nil {
		t.Fatalf("remove-lock-files: %v", err)
	}
	requireContains(t, out, "No lock files found in "+dir)
}

func TestRemoveLockFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	topPath := writeLockFileAt(t, dir, "app")
	nestedPath := writeLockFileAt(t, dir, filepath.Join("app", "modules", "vpc"))

	out, err := runCommand(t, "remove-lock-files", "--path", dir, "--recursive", "--yes")
	if err != nil {
		t.Fatalf("remove-lock-files --recursive: %v", err)
	}
	requireContains(t, out, "Found 2 lock files")
	requireContains(t, out, "Removed 2 lock files")

	for _, path := range []string{topPath, nestedPath} {
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("lock file %s still present: %v", path, err)
		}
	}
}
