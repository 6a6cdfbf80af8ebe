package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/birchgrove/tfbump/internal/batch"
	"github.com/birchgrove/tfbump/internal/config"
	"github.com/birchgrove/tfbump/internal/locks"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/rewrite"
	"github.com/birchgrove/tfbump/internal/terraform"
)

func newRunAllCmd(opts *rootOptions) *cobra.Command {
	var tfVersion string
	var providerFlags []string
	var withBackup bool
	var platformsFlag string
	var forceRegen bool
	var cleanCache bool
	var verbose bool
	var yes bool

	cmd := &cobra.Command{
		Use:   messages.RunAllUse,
		Short: messages.RunAllShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.target()
			if err != nil {
				return err
			}
			cfg, _, err := config.Load(root)
			if err != nil {
				return err
			}
			updateReq, err := buildUpdateRequest(cfg, tfVersion, providerFlags, withBackup, false, false)
			if err != nil {
				return err
			}
			platforms, err := resolvePlatforms(platformsFlag, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printRunAllPlan(out, cleanCache)
			ok, err := confirm(cmd, yes, fmt.Sprintf(messages.ConfirmRunAllFmt, root))
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(out, messages.Aborted)
				return &SilentExitError{Code: 1}
			}

			req := batch.Request{
				Root:       root,
				Recursive:  opts.recursive,
				Update:     updateReq,
				CleanCache: cleanCache,
				Platforms:  platforms,
				ForceRegen: forceRegen,
			}
			renderer := &runAllRenderer{out: out, verbose: verbose, update: updateReq}
			if _, err := batch.RunAll(batch.RealSystem{}, terraform.ExecRunner{}, req, renderer.hooks()); err != nil {
				return err
			}
			renderer.flush()
			_, _ = fmt.Fprintf(out, "\n%s\n", color.GreenString(messages.RunAllDone))
			return nil
		},
	}

	cmd.Flags().StringVar(&tfVersion, "tf-version", "", messages.UpdateFlagTfVersion)
	cmd.Flags().StringArrayVar(&providerFlags, "provider", nil, messages.UpdateFlagProvider)
	cmd.Flags().BoolVar(&withBackup, "backup", false, messages.UpdateFlagBackup)
	cmd.Flags().StringVar(&platformsFlag, "platforms", "", messages.RegenerateFlagPlatforms)
	cmd.Flags().BoolVar(&forceRegen, "force-regen", false, messages.RunAllFlagForceRegen)
	cmd.Flags().BoolVar(&cleanCache, "clean-cache-dirs", false, messages.RunAllFlagCleanCache)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, messages.FlagVerbose)
	cmd.Flags().BoolVar(&yes, "yes", false, messages.FlagYes)

	return cmd
}

func printRunAllPlan(out io.Writer, cleanCache bool) {
	steps := []string{messages.RunAllStepUpdate}
	if cleanCache {
		steps = append(steps, messages.RunAllStepCache)
	}
	steps = append(steps, messages.RunAllStepLocks, messages.RunAllStepRegen)

	_, _ = fmt.Fprintln(out, messages.RunAllPlanHeader)
	for _, step := range steps {
		_, _ = fmt.Fprintf(out, messages.RunAllPlanLineFmt, step)
	}
}

// runAllRenderer streams phase progress and prints each phase's summary when
// the next banner arrives, so output reads like the standalone commands run
// back to back.
type runAllRenderer struct {
	out     io.Writer
	verbose bool
	update  batch.UpdateRequest

	files  []batch.FileOutcome
	caches []batch.RemovalOutcome
	locks  []batch.RemovalOutcome
	regens []locks.Outcome
	phase  string
}

func (r *runAllRenderer) hooks() batch.Hooks {
	return batch.Hooks{
		Phase: r.banner,
		FileDone: func(o batch.FileOutcome) {
			renderFileOutcome(r.out, r.update, o, rewrite.DefaultDiffMaxLines)
			r.files = append(r.files, o)
		},
		CacheDone: func(o batch.RemovalOutcome) {
			renderCacheRemoval(r.out, false, o)
			r.caches = append(r.caches, o)
		},
		LockDone: func(o batch.RemovalOutcome) {
			renderLockRemoval(r.out, false, o)
			r.locks = append(r.locks, o)
		},
		RegenStart: func(dir string) {
			_, _ = color.New(color.FgCyan).Fprintf(r.out, messages.RegenProcessingFmt, dir)
		},
		RegenCommand: func(args []string) {
			_, _ = color.New(color.FgBlue).Fprintf(r.out, messages.RegenRunningFmt, commandLine(args))
		},
		RegenInitRetry: func() {
			_, _ = fmt.Fprintln(r.out, color.YellowString(messages.RegenInitRetry))
		},
		RegenDone: func(o locks.Outcome) {
			renderRegenOutcome(r.out, r.verbose, o)
			r.regens = append(r.regens, o)
		},
	}
}

func (r *runAllRenderer) banner(number int, name string) {
	r.flush()
	_, _ = color.New(color.FgCyan).Fprintf(r.out, messages.RunAllStepFmt, number, name)
	r.phase = name
}

// flush prints the summary of the phase that just finished, if any.
func (r *runAllRenderer) flush() {
	switch r.phase {
	case messages.RunAllStepUpdate:
		summary := batch.SummarizeFiles(r.files)
		_, _ = color.New(color.FgCyan).Fprintf(r.out, messages.UpdateSummaryFmt, summary.Succeeded, summary.Total)
	case messages.RunAllStepCache:
		summary := batch.SummarizeRemovals(r.caches)
		_, _ = color.New(color.FgCyan).Fprintf(r.out, messages.CacheSummaryFmt, summary.Succeeded, batch.Megabytes(summary.TotalBytes))
	case messages.RunAllStepLocks:
		summary := batch.SummarizeRemovals(r.locks)
		_, _ = color.New(color.FgCyan).Fprintf(r.out, messages.LocksSummaryFmt, summary.Succeeded)
	case messages.RunAllStepRegen:
		renderRegenSummary(r.out, batch.SummarizeLocks(r.regens))
	}
	r.phase = ""
}
