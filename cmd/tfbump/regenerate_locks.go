package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/birchgrove/tfbump/internal/batch"
	"github.com/birchgrove/tfbump/internal/config"
	"github.com/birchgrove/tfbump/internal/discover"
	"github.com/birchgrove/tfbump/internal/locks"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terraform"
)

func newRegenerateLocksCmd(opts *rootOptions) *cobra.Command {
	var platformsFlag string
	var force bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   messages.RegenerateUse,
		Short: messages.RegenerateShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.target()
			if err != nil {
				return err
			}
			cfg, _, err := config.Load(root)
			if err != nil {
				return err
			}
			platforms, err := resolvePlatforms(platformsFlag, cfg)
			if err != nil {
				return err
			}
			return runRegenerateLocks(cmd.OutOrStdout(), root, opts.recursive, platforms, force, verbose)
		},
	}

	cmd.Flags().StringVar(&platformsFlag, "platforms", "", messages.RegenerateFlagPlatforms)
	cmd.Flags().BoolVarP(&force, "force", "f", false, messages.RegenerateFlagForce)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, messages.RegenerateFlagVerbose)

	return cmd
}

func runRegenerateLocks(out io.Writer, root string, recursive bool, platforms []string, force bool, verbose bool) error {
	sys := batch.RealSystem{}

	dirs, err := discover.ModuleDirs(sys, root, recursive)
	if err != nil {
		return err
	}
	_, _ = color.New(color.FgCyan).Fprintf(out, messages.RegenHeaderFmt, root)
	if len(dirs) == 0 {
		_, _ = fmt.Fprintln(out, color.YellowString(emptyNotice(messages.RegenNoModulesFmt, root, recursive)))
		return nil
	}
	_, _ = color.New(color.FgCyan).Fprintf(out, messages.RegenFoundFmt, len(dirs))

	regenerator := locks.Regenerator{
		Runner:    terraform.ExecRunner{},
		System:    sys,
		Platforms: platforms,
		Force:     force,
		OnCommand: func(args []string) {
			_, _ = color.New(color.FgBlue).Fprintf(out, messages.RegenRunningFmt, commandLine(args))
		},
		OnInitRetry: func() {
			_, _ = fmt.Fprintln(out, color.YellowString(messages.RegenInitRetry))
		},
	}
	outcomes := batch.RegenerateLocks(regenerator, dirs,
		func(dir string) {
			_, _ = color.New(color.FgCyan).Fprintf(out, messages.RegenProcessingFmt, dir)
		},
		func(o locks.Outcome) {
			renderRegenOutcome(out, verbose, o)
		})

	renderRegenSummary(out, batch.SummarizeLocks(outcomes))
	return nil
}

// commandLine renders an argv the way it would be typed.
func commandLine(args []string) string {
	return strings.Join(append([]string{terraform.BinaryName}, args...), " ")
}

func renderRegenOutcome(out io.Writer, verbose bool, o locks.Outcome) {
	switch o.Status {
	case locks.StatusSkipped:
		_, _ = fmt.Fprintln(out, color.YellowString(messages.RegenSkipped))
	case locks.StatusSucceeded:
		if o.AfterInit {
			_, _ = fmt.Fprintln(out, color.GreenString(messages.RegenSucceededAfterInit))
		} else {
			_, _ = fmt.Fprintln(out, color.GreenString(messages.RegenSucceeded))
		}
	case locks.StatusFailed:
		_, _ = color.New(color.FgRed).Fprintf(out, messages.RegenFailedFmt, firstLine(o.Reason))
	}
	if !verbose {
		return
	}
	for _, step := range o.Steps {
		output := strings.TrimSpace(step.Output)
		if output == "" {
			continue
		}
		stepColor := color.New(color.FgGreen)
		if !step.Ok {
			stepColor = color.New(color.FgRed)
		}
		_, _ = stepColor.Fprintf(out, messages.RegenStepOutputFmt, step.Command, output)
	}
}

func renderRegenSummary(out io.Writer, summary batch.Summary) {
	_, _ = color.New(color.FgCyan).Fprintf(out, messages.RegenSummaryFmt, summary.Succeeded, summary.Skipped, summary.Failed)
	failures, more := summary.DetailedFailures()
	for _, failure := range failures {
		_, _ = color.New(color.FgRed).Fprintf(out, messages.RegenFailureLineFmt, failure.Target, failure.Reason)
	}
	if more > 0 {
		_, _ = color.New(color.FgRed).Fprintf(out, messages.RegenFailureMoreFmt, more)
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
