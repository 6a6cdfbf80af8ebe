// Package terraform drives the terraform binary found on PATH. Command
// results are (ok, combined output) pairs rather than errors: a non-zero exit
// is an expected outcome callers branch on, not a failure of this program.
package terraform

import (
	"os/exec"
	"strings"
)

// BinaryName is the executable this package drives.
const BinaryName = "terraform"

// DefaultPlatforms are the provider platforms locked when none are configured.
var DefaultPlatforms = []string{"darwin_amd64", "darwin_arm64", "linux_amd64", "windows_amd64"}

// Runner executes terraform commands inside module directories.
type Runner interface {
	// Run executes terraform with args in dir. It reports whether the command
	// exited zero, along with its combined stdout and stderr.
	Run(dir string, args ...string) (ok bool, output string)
	// LookPath locates the terraform binary on PATH.
	LookPath() (string, error)
}

// ExecRunner implements Runner with real subprocesses.
type ExecRunner struct{}

// Run executes terraform with args in dir.
func (ExecRunner) Run(dir string, args ...string) (bool, string) {
	cmd := exec.Command(BinaryName, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	output := strings.TrimRight(string(out), "\n")
	if err != nil {
		if output == "" {
			output = err.Error()
		}
		return false, output
	}
	return true, output
}

// LookPath locates the terraform binary on PATH.
func (ExecRunner) LookPath() (string, error) {
	return exec.LookPath(BinaryName)
}

// ProvidersLockArgs builds the argument list for a `terraform providers lock`
// run covering the given platforms. Each platform is passed as a separate
// "-platform" flag and value pair, in order.
func ProvidersLockArgs(platforms []string) []string {
	args := []string{"providers", "lock"}
	for _, platform := range platforms {
		args = append(args, "-platform", platform)
	}
	return args
}

// InitArgs builds the argument list for a backend-less `terraform init`.
func InitArgs() []string {
	return []string{"init", "-backend=false"}
}

// FmtCheckArgs builds the argument list for `terraform fmt -check` on a
// single file name. The command is expected to run in the file's directory.
func FmtCheckArgs(name string) []string {
	return []string{"fmt", "-check", name}
}

// ParsePlatforms splits a comma-separated platform list, trimming whitespace
// and dropping empty entries. Order and duplicates are preserved.
func ParsePlatforms(csv string) []string {
	parts := strings.Split(csv, ",")
	platforms := make([]string, 0, len(parts))
	for _, part := range parts {
		platform := strings.TrimSpace(part)
		if platform == "" {
			continue
		}
		platforms = append(platforms, platform)
	}
	return platforms
}
