// Package testutil provides helpers shared by tests across packages.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteScriptStub writes an executable shell stub with the provided body.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteScriptStub(t *testing.T, dir string, name string, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body + "\n")
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStub writes an executable shell stub that exits successfully.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteScriptStub(t, dir, name, fmt.Sprintf("exit %d", exitCode))
}

// WriteStubWithOutput writes an executable shell stub that prints output and exits with the provided code.
func WriteStubWithOutput(t *testing.T, dir string, name string, output string, exitCode int) {
	t.Helper()
	WriteScriptStub(t, dir, name, fmt.Sprintf("echo \"%s\"\nexit %d", output, exitCode))
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	WriteScriptStub(t, dir, name, fmt.Sprintf(
		"for arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1",
		expectedArg,
	))
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
