package batch

import (
	"github.com/birchgrove/tfbump/internal/discover"
	"github.com/birchgrove/tfbump/internal/locks"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terraform"
)

// Request describes one full maintenance pass.
type Request struct {
	Root      string
	Recursive bool

	Update UpdateRequest
	// CleanCache removes .terraform cache directories between updating and
	// lock removal.
	CleanCache bool
	Platforms  []string
	// ForceRegen regenerates lock files even where one still exists.
	ForceRegen bool
}

// Hooks receive run-all progress for rendering. Nil funcs are skipped.
type Hooks struct {
	Phase          func(number int, name string)
	FileDone       func(FileOutcome)
	CacheDone      func(RemovalOutcome)
	LockDone       func(RemovalOutcome)
	RegenStart     func(dir string)
	RegenCommand   func(args []string)
	RegenInitRetry func()
	RegenDone      func(locks.Outcome)
}

// Result carries every phase's outcomes from one run.
type Result struct {
	Files  []FileOutcome
	Caches []RemovalOutcome
	Locks  []RemovalOutcome
	Regens []locks.Outcome
}

// RunAll executes the maintenance phases in order: update constraints,
// optionally remove cache directories, remove lock files, then regenerate
// them. Discovery failures abort the run; per-target failures never do.
func RunAll(sys System, runner terraform.Runner, req Request, hooks Hooks) (Result, error) {
	var result Result
	step := 0
	banner := func(name string) {
		step++
		if hooks.Phase != nil {
			hooks.Phase(step, name)
		}
	}

	files, err := discover.TerraformFiles(sys, req.Root, req.Recursive)
	if err != nil {
		return result, err
	}
	banner(messages.RunAllStepUpdate)
	result.Files = UpdateFiles(sys, runner, req.Update, files, hooks.FileDone)

	if req.CleanCache {
		caches, err := discover.CacheDirs(sys, req.Root, req.Recursive)
		if err != nil {
			return result, err
		}
		banner(messages.RunAllStepCache)
		result.Caches = RemoveCacheDirs(sys, caches, false, hooks.CacheDone)
	}

	lockFiles, err := discover.LockFiles(sys, req.Root, req.Recursive)
	if err != nil {
		return result, err
	}
	banner(messages.RunAllStepLocks)
	result.Locks = RemoveLockFiles(sys, lockFiles, req.Update.Backup, false, hooks.LockDone)

	dirs, err := discover.ModuleDirs(sys, req.Root, req.Recursive)
	if err != nil {
		return result, err
	}
	banner(messages.RunAllStepRegen)
	regenerator := locks.Regenerator{
		Runner:      runner,
		System:      sys,
		Platforms:   req.Platforms,
		Force:       req.ForceRegen,
		OnCommand:   hooks.RegenCommand,
		OnInitRetry: hooks.RegenInitRetry,
	}
	result.Regens = RegenerateLocks(regenerator, dirs, hooks.RegenStart, hooks.RegenDone)
	return result, nil
}
