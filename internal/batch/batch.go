// Package batch runs the maintenance phases shared by the individual
// subcommands and the run-all pipeline. A phase attempts every target it was
// given; per-target failures are recorded on the outcome and never stop the
// pass.
package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/birchgrove/tfbump/internal/backup"
	"github.com/birchgrove/tfbump/internal/locks"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/rewrite"
	"github.com/birchgrove/tfbump/internal/terraform"
)

// Provider pairs a provider name with its target version constraint.
type Provider struct {
	Name       string
	Constraint string
}

// UpdateRequest describes one version-update pass over configuration files.
type UpdateRequest struct {
	// TerraformConstraint replaces required_version values when non-empty.
	TerraformConstraint string
	// Providers are applied in order.
	Providers []Provider
	// Backup writes a sibling copy before each modified file is saved.
	Backup bool
	// DryRun previews changes without writing.
	DryRun bool
	// Validate runs a fmt check on each file written.
	Validate bool
}

// FileOutcome reports one configuration file's update result.
type FileOutcome struct {
	Path string
	// Updated describes each applied change, in application order.
	Updated []string
	// BackupPath is set when a backup copy was written.
	BackupPath string
	// File holds the in-memory state, kept for diff previews.
	File *rewrite.File
	// FmtFailed is set when the post-save fmt check reported problems.
	FmtFailed bool
	FmtOutput string
	Err       error
}

// UpdateFiles applies the requested constraint updates to each file in paths.
// runner is only consulted when req.Validate is set. done, when non-nil, is
// invoked after each file.
func UpdateFiles(sys System, runner terraform.Runner, req UpdateRequest, paths []string, done func(FileOutcome)) []FileOutcome {
	outcomes := make([]FileOutcome, 0, len(paths))
	for _, path := range paths {
		outcome := updateFile(sys, runner, req, path)
		if done != nil {
			done(outcome)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func updateFile(sys System, runner terraform.Runner, req UpdateRequest, path string) FileOutcome {
	outcome := FileOutcome{Path: path}
	file, err := rewrite.Load(sys, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.File = file

	if req.TerraformConstraint != "" && file.UpdateTerraformVersion(req.TerraformConstraint) {
		outcome.Updated = append(outcome.Updated, fmt.Sprintf(messages.UpdateChangeTerraformFmt, req.TerraformConstraint))
	}
	for _, provider := range req.Providers {
		if file.UpdateProviderVersion(provider.Name, provider.Constraint) {
			outcome.Updated = append(outcome.Updated, fmt.Sprintf(messages.UpdateChangeProviderFmt, provider.Name, provider.Constraint))
		}
	}
	if !file.Modified() || req.DryRun {
		return outcome
	}

	if req.Backup {
		backupPath, err := backup.Config(sys, path)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.BackupPath = backupPath
		file.BackupPath = backupPath
	}
	if err := file.Save(sys); err != nil {
		outcome.Err = err
		return outcome
	}
	if req.Validate {
		if ok, output := runner.Run(filepath.Dir(path), terraform.FmtCheckArgs(filepath.Base(path))...); !ok {
			outcome.FmtFailed = true
			outcome.FmtOutput = output
		}
	}
	return outcome
}

// RemovalOutcome reports one path's removal result.
type RemovalOutcome struct {
	Path string
	// SizeBytes is the size measured before removal. Only cache directory
	// removals measure.
	SizeBytes int64
	// BackupPath is set when a pre-removal backup copy was written.
	BackupPath string
	Err        error
}

// RemoveLockFiles deletes each lock file in paths, optionally writing a
// sibling backup first. DryRun reports targets without touching them. done,
// when non-nil, is invoked after each path.
func RemoveLockFiles(sys System, paths []string, withBackup bool, dryRun bool, done func(RemovalOutcome)) []RemovalOutcome {
	outcomes := make([]RemovalOutcome, 0, len(paths))
	for _, path := range paths {
		outcome := RemovalOutcome{Path: path}
		if !dryRun {
			outcome = removeLockFile(sys, path, withBackup)
		}
		if done != nil {
			done(outcome)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func removeLockFile(sys System, path string, withBackup bool) RemovalOutcome {
	outcome := RemovalOutcome{Path: path}
	if withBackup {
		backupPath, err := backup.Lock(sys, path)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.BackupPath = backupPath
	}
	if err := sys.Remove(path); err != nil {
		outcome.Err = fmt.Errorf(messages.BatchRemoveFailedFmt, path, err)
	}
	return outcome
}

// RemoveCacheDirs measures then deletes each directory in paths. DryRun
// reports targets and sizes without removing anything. done, when non-nil,
// is invoked after each path.
func RemoveCacheDirs(sys System, paths []string, dryRun bool, done func(RemovalOutcome)) []RemovalOutcome {
	outcomes := make([]RemovalOutcome, 0, len(paths))
	for _, path := range paths {
		outcome := RemovalOutcome{Path: path}
		outcome.SizeBytes = DirSize(sys, path)
		if !dryRun {
			if err := sys.RemoveAll(path); err != nil {
				outcome.Err = fmt.Errorf(messages.BatchRemoveFailedFmt, path, err)
			}
		}
		if done != nil {
			done(outcome)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// DirSize totals the size of every regular file under root. Entries that
// cannot be read are skipped, and a vanished root counts as empty; nested
// cache directories may already have gone with their parent.
func DirSize(sys System, root string) int64 {
	var total int64
	_ = sys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}

// Megabytes converts a byte count for display.
func Megabytes(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}

// RegenerateLocks regenerates the lock file of each module directory in
// dirs. start and done, when non-nil, are invoked around each directory.
func RegenerateLocks(regenerator locks.Regenerator, dirs []string, start func(dir string), done func(locks.Outcome)) []locks.Outcome {
	outcomes := make([]locks.Outcome, 0, len(dirs))
	for _, dir := range dirs {
		if start != nil {
			start(dir)
		}
		outcome := regenerator.Regenerate(dir)
		if done != nil {
			done(outcome)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// MaxFailureDetails caps how many failure reasons a summary lists in full.
const MaxFailureDetails = 5

// Failure names one failed target and the first line of its reason.
type Failure struct {
	Target string
	Reason string
}

// Summary aggregates one phase's outcomes.
type Summary struct {
	Total     int
	Succeeded int
	Skipped   int
	Failed    int
	// TotalBytes sums measured sizes. Only cache directory phases measure.
	TotalBytes int64
	Failures   []Failure
}

// DetailedFailures returns at most MaxFailureDetails failures plus the count
// of those elided.
func (s Summary) DetailedFailures() ([]Failure, int) {
	if len(s.Failures) <= MaxFailureDetails {
		return s.Failures, 0
	}
	return s.Failures[:MaxFailureDetails], len(s.Failures) - MaxFailureDetails
}

// SummarizeFiles aggregates update outcomes. Succeeded counts files whose
// content changed without error.
func SummarizeFiles(outcomes []FileOutcome) Summary {
	summary := Summary{Total: len(outcomes)}
	for _, outcome := range outcomes {
		switch {
		case outcome.Err != nil:
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Target: outcome.Path, Reason: firstLine(outcome.Err.Error())})
		case len(outcome.Updated) > 0:
			summary.Succeeded++
		default:
			summary.Skipped++
		}
	}
	return summary
}

// SummarizeRemovals aggregates removal outcomes.
func SummarizeRemovals(outcomes []RemovalOutcome) Summary {
	summary := Summary{Total: len(outcomes)}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Target: outcome.Path, Reason: firstLine(outcome.Err.Error())})
			continue
		}
		summary.Succeeded++
		summary.TotalBytes += outcome.SizeBytes
	}
	return summary
}

// SummarizeLocks aggregates regeneration outcomes.
func SummarizeLocks(outcomes []locks.Outcome) Summary {
	summary := Summary{Total: len(outcomes)}
	for _, outcome := range outcomes {
		switch outcome.Status {
		case locks.StatusSucceeded:
			summary.Succeeded++
		case locks.StatusSkipped:
			summary.Skipped++
		case locks.StatusFailed:
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Target: outcome.Dir, Reason: firstLine(outcome.Reason)})
		}
	}
	return summary
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
