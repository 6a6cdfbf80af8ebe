package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
)

func stubCanRunForm(t *testing.T, ok bool) {
	t.Helper()
	prev := canRunForm
	canRunForm = func() bool { return ok }
	t.Cleanup(func() { canRunForm = prev })
}

// stubInitForm replaces the interactive form run, leaving the seeded values
// untouched and returning err.
func stubInitForm(t *testing.T, err error) {
	t.Helper()
	prev := runInitForm
	runInitForm = func(form *huh.Form) error { return err }
	t.Cleanup(func() { runInitForm = prev })
}

func TestInitNoInputWritesDefaults(t *testing.T) {
	disableUpdateChecks(t)

	dir := t.TempDir()
	out, err := runCommand(t, "init", "--path", dir, "--no-input")
	if err != nil {
		t.Fatalf("init --no-input: %v", err)
	}

	configPath := filepath.Join(dir, ".tfbump.toml")
	requireContains(t, out, "Wrote "+configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	requireContains(t, string(content), `terraform = ">= 1.7.0"`)
	requireContains(t, string(content), `aws = ">= 5.70.0"`)
	requireContains(t, string(content), `platforms = ["darwin_amd64", "darwin_arm64", "linux_amd64", "windows_amd64"]`)
}

func TestInitRefusesExistingConfig(t *testing.T) {
	disableUpdateChecks(t)

	dir := t.TempDir()
	writeFileAt(t, dir, ".tfbump.toml", "[versions]\nterraform = \">= 1.9.0\"\n")

	_, err := runCommand(t, "init", "--path", dir, "--no-input")
	if err == nil || !strings.Contains(err.Error(), "already exists; re-run with --force") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
}

func TestInitForceOverwritesWithDefaults(t *testing.T) {
	disableUpdateChecks(t)

	dir := t.TempDir()
	writeFileAt(t, dir, ".tfbump.toml", "this is not toml")

	out, err := runCommand(t, "init", "--path", dir, "--no-input", "--force")
	if err != nil {
		t.Fatalf("init --force --no-input: %v", err)
	}
	requireContains(t, out, "Wrote ")

	content, err := os.ReadFile(filepath.Join(dir, ".tfbump.toml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	requireContains(t, string(content), `terraform = ">= 1.7.0"`)
}

func TestInitInteractiveRequiresTerminal(t *testing.T) {
	disableUpdateChecks(t)
	stubCanRunForm(t, false)

	dir := t.TempDir()
	_, err := runCommand(t, "init", "--path", dir)
	if err == nil || !strings.Contains(err.Error(), "--no-input") {
		t.Fatalf("expected terminal guidance error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".tfbump.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("config written without a terminal: %v", err)
	}
}

func TestInitInteractiveSeedsFromExistingConfig(t *testing.T) {
	disableUpdateChecks(t)
	stubCanRunForm(t, true)
	stubInitForm(t, nil)

	dir := t.TempDir()
	existing := `[versions]
terraform = ">= 1.9.0"

[versions.providers]
google = ">= 5.0.0"
`
	writeFileAt(t, dir, ".tfbump.toml", existing)

	out, err := runCommand(t, "init", "--path", dir, "--force")
	if err != nil {
		t.Fatalf("init --force: %v", err)
	}
	requireContains(t, out, "Wrote ")

	content, err := os.ReadFile(filepath.Join(dir, ".tfbump.toml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	requireContains(t, string(content), `terraform = ">= 1.9.0"`)
	requireContains(t, string(content), `google = ">= 5.0.0"`)
}

func TestInitInteractiveWritesDefaultsWhenNoConfig(t *testing.T) {
	disableUpdateChecks(t)
	stubCanRunForm(t, true)
	stubInitForm(t, nil)

	dir := t.TempDir()
	out, err := runCommand(t, "init", "--path", dir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	requireContains(t, out, "Wrote ")

	content, err := os.ReadFile(filepath.Join(dir, ".tfbump.toml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	requireContains(t, string(content), `terraform = ">= 1.7.0"`)
}

func TestInitUserAborted(t *testing.T) {
	disableUpdateChecks(t)
	stubCanRunForm(t, true)
	stubInitForm(t, huh.ErrUserAborted)

	dir := t.TempDir()
	out, err := runCommand(t, "init", "--path", dir)
	if err != nil {
		t.Fatalf("aborted init should not error: %v", err)
	}
	requireContains(t, out, "Init cancelled; no config written.")

	if _, err := os.Stat(filepath.Join(dir, ".tfbump.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("aborted init wrote a config: %v", err)
	}
}

func TestValidateConstraint(t *testing.T) {
	if err := validateConstraint(">= 1.7.0"); err != nil {
		t.Fatalf("valid constraint rejected: %v", err)
	}
	if err := validateConstraint(" ~> 5.0 "); err != nil {
		t.Fatalf("padded constraint rejected: %v", err)
	}
	if err := validateConstraint("banana"); err == nil || !strings.Contains(err.Error(), "valid version constraint") {
		t.Fatalf("expected constraint guidance, got %v", err)
	}
}

func TestValidatePlatforms(t *testing.T) {
	if err := validatePlatforms([]string{"linux_amd64"}); err != nil {
		t.Fatalf("valid selection rejected: %v", err)
	}
	if err := validatePlatforms(nil); err == nil || !strings.Contains(err.Error(), "at least one platform") {
		t.Fatalf("expected selection guidance, got %v", err)
	}
}

func TestInitPlatformOptions(t *testing.T) {
	options := initPlatformOptions([]string{"linux_amd64", "freebsd_amd64"})
	values := make([]string, len(options))
	for i, option := range options {
		values[i] = option.Value
	}

	want := []string{"darwin_amd64", "darwin_arm64", "linux_amd64", "windows_amd64", "freebsd_amd64"}
	if len(values) != len(want) {
		t.Fatalf("options = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("options = %v, want %v", values, want)
		}
	}
}
