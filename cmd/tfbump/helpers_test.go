package main

// NOTE: Tests in this package mutate package-level globals (isTerminal,
// checkForUpdate, executeFunc, canRunForm, runInitForm) and the environment.
// Do not use t.Parallel(). Each test must restore globals via t.Cleanup().

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/birchgrove/tfbump/internal/terraform"
	"github.com/birchgrove/tfbump/internal/testutil"
	"github.com/birchgrove/tfbump/internal/update"
)

const sampleTerraformConfig = `terraform {
  required_version = ">= 1.5.0"

  required_providers {
    aws = {
      source  = "hashicorp/aws"
      version = ">= 5.0.0"
    }
  }
}
`

// runCommand executes the root command with args against fresh buffers.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCommandInput(t, "", args...)
}

// runCommandInput executes the root command with stdin content for prompts.
func runCommandInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// stubTerminal forces the interactive check to report a fixed value.
func stubTerminal(t *testing.T, interactive bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return interactive }
	t.Cleanup(func() { isTerminal = orig })
}

// stubTerraformOnPath prepends a directory holding a terraform stub with the
// provided body to PATH.
func stubTerraformOnPath(t *testing.T, body string) {
	t.Helper()
	binDir := t.TempDir()
	testutil.WriteScriptStub(t, binDir, terraform.BinaryName, body)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// disableUpdateChecks keeps tests off the network.
func disableUpdateChecks(t *testing.T) {
	t.Helper()
	t.Setenv(update.EnvNoNetwork, "1")
}

func writeFileAt(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func requireContains(t *testing.T, haystack string, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
