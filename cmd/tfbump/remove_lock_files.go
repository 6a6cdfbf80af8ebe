package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/birchgrove/tfbump/internal/batch"
	"github.com/birchgrove/tfbump/internal/discover"
	"github.com/birchgrove/tfbump/internal/messages"
)

func newRemoveLockFilesCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	var withBackup bool
	var yes bool

	cmd := &cobra.Command{
		Use:   messages.RemoveLocksUse,
		Short: messages.RemoveLocksShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.target()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			sys := batch.RealSystem{}

			paths, err := discover.LockFiles(sys, root, opts.recursive)
			if err != nil {
				return err
			}
			_, _ = color.New(color.FgCyan).Fprintf(out, messages.LocksHeaderFmt, root)
			if len(paths) == 0 {
				_, _ = fmt.Fprintln(out, color.YellowString(emptyNotice(messages.LocksNoneFmt, root, opts.recursive)))
				return nil
			}
			_, _ = color.New(color.FgCyan).Fprintf(out, messages.LocksFoundFmt, len(paths))

			if !dryRun {
				ok, err := confirm(cmd, yes, fmt.Sprintf(messages.ConfirmRemoveLocksFmt, len(paths)))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(out, messages.Aborted)
					return &SilentExitError{Code: 1}
				}
			}

			outcomes := batch.RemoveLockFiles(sys, paths, withBackup, dryRun, func(o batch.RemovalOutcome) {
				renderLockRemoval(out, dryRun, o)
			})

			summary := batch.SummarizeRemovals(outcomes)
			if !dryRun {
				_, _ = color.New(color.FgCyan).Fprintf(out, messages.LocksSummaryFmt, summary.Succeeded)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.FlagDryRun)
	cmd.Flags().BoolVar(&withBackup, "backup", false, messages.FlagBackup)
	cmd.Flags().BoolVar(&yes, "yes", false, messages.FlagYes)

	return cmd
}

func renderLockRemoval(out io.Writer, dryRun bool, o batch.RemovalOutcome) {
	switch {
	case dryRun:
		_, _ = color.New(color.FgGreen).Fprintf(out, messages.LocksWouldRemoveFmt, o.Path)
	case o.Err != nil:
		_, _ = color.New(color.FgRed).Fprintf(out, messages.LocksRemoveFailedFmt, o.Path, o.Err)
	default:
		_, _ = color.New(color.FgGreen).Fprintf(out, messages.LocksRemovedFmt, o.Path)
		if o.BackupPath != "" {
			_, _ = color.New(color.FgBlue).Fprintf(out, messages.BackupCreatedFmt, o.BackupPath)
		}
	}
}
