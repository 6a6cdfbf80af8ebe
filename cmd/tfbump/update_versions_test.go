package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUpdateVersionsRewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFileAt(t, dir, "main.tf", sampleTerraformConfig)

	out, err := runCommand(t, "update-versions", "--path", dir)
	if err != nil {
		t.Fatalf("update-versions: %v", err)
	}

	requireContains(t, out, "Updating version constraints under "+dir)
	requireContains(t, out, "Found 1 Terraform files")
	requireContains(t, out, "Updated "+path)
	requireContains(t, out, "terraform to >= 1.7.0")
	requireContains(t, out, "provider aws to >= 5.70.0")
	requireContains(t, out, "Modified 1 of 1 files")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rewritten file: %v", err)
	}
	if !strings.Contains(string(content), `">= 1.7.0"`) || !strings.Contains(string(content), `">= 5.70.0"`) {
		t.Fatalf("constraints not rewritten:\n%s", content)
	}
	if strings.Contains(string(content), `">= 1.5.0"`) {
		t.Fatalf("old constraint still present:\n%s", content)
	}
}

func TestUpdateVersionsDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeFileAt(t, dir, "main.tf", sampleTerraformConfig)

	out, err := runCommand(t, "update-versions", "--path", dir, "--dry-run")
	if err != nil {
		t.Fatalf("update-versions --dry-run: %v", err)
	}

	requireContains(t, out, "Dry run - no files will be modified")
	requireContains(t, out, "Would update "+path)
	requireContains(t, out, `-  required_version = ">= 1.5.0"`)
	requireContains(t, out, `+  required_version = ">= 1.7.0"`)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(content) != sampleTerraformConfig {
		t.Fatalf("dry run modified the file:\n%s", content)
	}
}

func TestUpdateVersionsProviderFlagOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFileAt(t, dir, "main.tf", sampleTerraformConfig)

	out, err := runCommand(t, "update-versions", "--path", dir, "--provider", "aws=>= 6.0.0")
	if err != nil {
		t.Fatalf("update-versions: %v", err)
	}
	requireContains(t, out, "provider aws to >= 6.0.0")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(content), `">= 6.0.0"`) {
		t.Fatalf("provider constraint not rewritten:\n%s", content)
	}
}

func TestUpdateVersionsInvalidProviderFlag(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "update-versions", "--path", dir, "--provider", "aws")
	if err == nil || !strings.Contains(err.Error(), "expected name=constraint") {
		t.Fatalf("expected provider flag error, got %v", err)
	}
}

func TestUpdateVersionsBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeFileAt(t, dir, "main.tf", sampleTerraformConfig)

	out, err := runCommand(t, "update-versions", "--path", dir, "--backup")
	if err != nil {
		t.Fatalf("update-versions --backup: %v", err)
	}

	backupPath := path + ".backup"
	requireContains(t, out, "Backup created: "+backupPath)

	original, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(original) != sampleTerraformConfig {
		t.Fatalf("backup does not hold original content:\n%s", original)
	}
}

func TestUpdateVersionsValidate(t *testing.T) {
	stubTerraformOnPath(t, "exit 0")

	dir := t.TempDir()
	path := writeFileAt(t, dir, "main.tf", sampleTerraformConfig)

	out, err := runCommand(t, "update-versions", "--path", dir, "--validate")
	if err != nil {
		t.Fatalf("update-versions --validate: %v", err)
	}
	requireContains(t, out, "Format check passed for "+path)
}

func TestUpdateVersionsValidateReportsFmtFailure(t *testing.T) {
	stubTerraformOnPath(t, "echo main.tf\nexit 3")

	dir := t.TempDir()
	path := writeFileAt(t, dir, "main.tf", sampleTerraformConfig)

	out, err := runCommand(t, "update-versions", "--path", dir, "--validate")
	if err != nil {
		t.Fatalf("update-versions --validate: %v", err)
	}
	requireContains(t, out, "Format check failed for "+path)
	requireContains(t, out, "Modified 1 of 1 files")
}

func TestUpdateVersionsNoFiles(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "update-versions", "--path", dir)
	if err != nil {
		t.Fatalf("update-versions: %v", err)
	}
	requireContains(t, out, "No Terraform files found in "+dir)
	if strings.Contains(out, "subdirectories") {
		t.Fatalf("non-recursive notice mentions subdirectories: %q", out)
	}
}

func TestUpdateVersionsNoFilesRecursive(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "update-versions", "--path", dir, "--recursive")
	if err != nil {
		t.Fatalf("update-versions --recursive: %v", err)
	}
	requireContains(t, out, "No Terraform files found in "+dir+" and its subdirectories")
}

func TestUpdateVersionsRecursiveWalksTree(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "modules", "vpc")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFileAt(t, dir, "main.tf", sampleTerraformConfig)
	nestedPath := writeFileAt(t, nested, "main.tf", sampleTerraformConfig)

	// A cached module copy must never be rewritten.
	cacheDir := filepath.Join(dir, ".terraform", "modules", "vpc")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cachedPath := writeFileAt(t, cacheDir, "main.tf", sampleTerraformConfig)

	out, err := runCommand(t, "update-versions", "--path", dir, "--recursive")
	if err != nil {
		t.Fatalf("update-versions --recursive: %v", err)
	}
	requireContains(t, out, "Found 2 Terraform files")
	requireContains(t, out, "Updated "+nestedPath)
	requireContains(t, out, "Modified 2 of 2 files")

	cached, err := os.ReadFile(cachedPath)
	if err != nil {
		t.Fatalf("read cached file: %v", err)
	}
	if string(cached) != sampleTerraformConfig {
		t.Fatalf("cache directory copy was rewritten:\n%s", cached)
	}
}

func TestUpdateVersionsReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, ".tfbump.toml", "[versions]\nterraform = \">= 1.9.0\"\n")
	path := writeFileAt(t, dir, "main.tf", sampleTerraformConfig)

	out, err := runCommand(t, "update-versions", "--path", dir)
	if err != nil {
		t.Fatalf("update-versions: %v", err)
	}
	requireContains(t, out, "terraform to >= 1.9.0")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(content), `">= 1.9.0"`) {
		t.Fatalf("config constraint not applied:\n%s", content)
	}
}

func TestUpdateVersionsRejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, ".tfbump.toml", "versions = not toml")
	writeFileAt(t, dir, "main.tf", sampleTerraformConfig)

	_, err := runCommand(t, "update-versions", "--path", dir)
	if err == nil || !strings.Contains(err.Error(), ".tfbump.toml") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestUpdateVersionsUnchangedFileStaysSilent(t *testing.T) {
	dir := t.TempDir()
	current := strings.ReplaceAll(sampleTerraformConfig, ">= 1.5.0", ">= 1.7.0")
	current = strings.ReplaceAll(current, ">= 5.0.0", ">= 5.70.0")
	path := writeFileAt(t, dir, "main.tf", current)

	out, err := runCommand(t, "update-versions", "--path", dir)
	if err != nil {
		t.Fatalf("update-versions: %v", err)
	}
	if strings.Contains(out, "Updated "+path) {
		t.Fatalf("unchanged file reported as updated: %q", out)
	}
	requireContains(t, out, "Modified 0 of 1 files")
}
