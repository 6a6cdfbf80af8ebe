// Package locks regenerates and inspects Terraform dependency lock files.
// Regeneration follows a fixed recovery ladder: try `providers lock`, fall
// back to one backend-less init, then try `providers lock` once more.
package locks

import (
	"path/filepath"
	"strings"

	"github.com/birchgrove/tfbump/internal/discover"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terraform"
)

// Status classifies the outcome of one directory's regeneration.
type Status int

const (
	// StatusSucceeded means a lock file was written.
	StatusSucceeded Status = iota
	// StatusSkipped means a lock file already existed and force was off.
	StatusSkipped
	// StatusFailed means no lock file could be produced.
	StatusFailed
)

// Step records one terraform invocation made while regenerating a directory.
type Step struct {
	Command string
	Ok      bool
	Output  string
}

// Outcome reports one directory's regeneration result. It is produced once
// and never mutated afterward.
type Outcome struct {
	Dir    string
	Status Status
	// AfterInit is set on success that needed the init fallback.
	AfterInit bool
	// Reason summarizes the failure. Failures of the init fallback itself
	// carry a prefix naming the initialization.
	Reason string
	// Steps records each command run, in order, with its combined output.
	Steps []Step
}

// Regenerator drives terraform to rebuild dependency lock files.
type Regenerator struct {
	Runner    terraform.Runner
	System    System
	Platforms []string
	// Force regenerates even when a lock file already exists.
	Force bool

	// OnCommand, when set, is invoked with the argv just before each
	// terraform run.
	OnCommand func(args []string)
	// OnInitRetry, when set, is invoked after a failed first attempt, just
	// before the init fallback starts.
	OnInitRetry func()
}

// Regenerate rebuilds the lock file for dir.
func (r Regenerator) Regenerate(dir string) Outcome {
	outcome := Outcome{Dir: dir}
	if !r.Force && r.hasLockFile(dir) {
		outcome.Status = StatusSkipped
		return outcome
	}

	lockArgs := terraform.ProvidersLockArgs(r.Platforms)
	if ok, _ := r.run(&outcome, dir, lockArgs); ok {
		outcome.Status = StatusSucceeded
		return outcome
	}

	if r.OnInitRetry != nil {
		r.OnInitRetry()
	}
	if ok, output := r.run(&outcome, dir, terraform.InitArgs()); !ok {
		outcome.Status = StatusFailed
		outcome.Reason = messages.RegenInitFailedPrefix + output
		return outcome
	}

	if ok, output := r.run(&outcome, dir, lockArgs); !ok {
		outcome.Status = StatusFailed
		outcome.Reason = output
		return outcome
	}
	outcome.Status = StatusSucceeded
	outcome.AfterInit = true
	return outcome
}

func (r Regenerator) run(outcome *Outcome, dir string, args []string) (bool, string) {
	if r.OnCommand != nil {
		r.OnCommand(args)
	}
	ok, output := r.Runner.Run(dir, args...)
	outcome.Steps = append(outcome.Steps, Step{
		Command: terraform.BinaryName + " " + strings.Join(args, " "),
		Ok:      ok,
		Output:  output,
	})
	return ok, output
}

func (r Regenerator) hasLockFile(dir string) bool {
	info, err := r.System.Stat(filepath.Join(dir, discover.LockFileName))
	return err == nil && !info.IsDir()
}
