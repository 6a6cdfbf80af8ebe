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

func newRemoveCacheDirsCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	var yes bool

	cmd := &cobra.Command{
		Use:   messages.RemoveCacheUse,
		Short: messages.RemoveCacheShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.target()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			sys := batch.RealSystem{}

			paths, err := discover.CacheDirs(sys, root, opts.recursive)
			if err != nil {
				return err
			}
			_, _ = color.New(color.FgCyan).Fprintf(out, messages.CacheHeaderFmt, root)
			if len(paths) == 0 {
				_, _ = fmt.Fprintln(out, color.YellowString(emptyNotice(messages.CacheNoneFmt, root, opts.recursive)))
				return nil
			}
			_, _ = color.New(color.FgCyan).Fprintf(out, messages.CacheFoundFmt, len(paths))

			if !dryRun {
				ok, err := confirm(cmd, yes, fmt.Sprintf(messages.ConfirmRemoveCacheFmt, len(paths)))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(out, messages.Aborted)
					return &SilentExitError{Code: 1}
				}
			}

			outcomes := batch.RemoveCacheDirs(sys, paths, dryRun, func(o batch.RemovalOutcome) {
				renderCacheRemoval(out, dryRun, o)
			})

			summary := batch.SummarizeRemovals(outcomes)
			if !dryRun {
				_, _ = color.New(color.FgCyan).Fprintf(out, messages.CacheSummaryFmt, summary.Succeeded, batch.Megabytes(summary.TotalBytes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.FlagDryRun)
	cmd.Flags().BoolVar(&yes, "yes", false, messages.FlagYes)

	return cmd
}

func renderCacheRemoval(out io.Writer, dryRun bool, o batch.RemovalOutcome) {
	switch {
	case dryRun:
		_, _ = color.New(color.FgGreen).Fprintf(out, messages.CacheWouldRemoveFmt, o.Path, batch.Megabytes(o.SizeBytes))
	case o.Err != nil:
		_, _ = color.New(color.FgRed).Fprintf(out, messages.CacheRemoveFailedFmt, o.Path, o.Err)
	default:
		_, _ = color.New(color.FgGreen).Fprintf(out, messages.CacheRemovedFmt, o.Path, batch.Megabytes(o.SizeBytes))
	}
}
