package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/birchgrove/tfbump/internal/batch"
	"github.com/birchgrove/tfbump/internal/discover"
	"github.com/birchgrove/tfbump/internal/locks"
	"github.com/birchgrove/tfbump/internal/messages"
)

func newShowLocksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ShowLocksUse,
		Short: messages.ShowLocksShort,
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
			_, _ = color.New(color.FgCyan).Fprintf(out, messages.ShowLocksHeaderFmt, root)
			if len(paths) == 0 {
				_, _ = fmt.Fprintln(out, color.YellowString(emptyNotice(messages.ShowLocksNoneFmt, root, opts.recursive)))
				return nil
			}

			totalProviders := 0
			for _, path := range paths {
				providers, err := locks.ParseLockFile(sys, path)
				if err != nil {
					_, _ = color.New(color.FgRed).Fprintf(out, messages.ShowLocksParseFailedFmt, path, err)
					continue
				}
				_, _ = fmt.Fprintf(out, messages.ShowLocksFileFmt, path)
				if len(providers) == 0 {
					_, _ = fmt.Fprintln(out, messages.ShowLocksNoProviders)
					continue
				}
				for _, provider := range providers {
					if provider.Constraints == "" {
						_, _ = fmt.Fprintf(out, messages.ShowLocksProviderBareFmt, provider.Address, provider.Version, provider.HashCount)
					} else {
						_, _ = fmt.Fprintf(out, messages.ShowLocksProviderFmt, provider.Address, provider.Version, provider.Constraints, provider.HashCount)
					}
					totalProviders++
				}
			}
			_, _ = color.New(color.FgCyan).Fprintf(out, messages.ShowLocksSummaryFmt, len(paths), totalProviders)
			return nil
		},
	}
}
