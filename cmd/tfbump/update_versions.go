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
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/rewrite"
	"github.com/birchgrove/tfbump/internal/terraform"
)

func newUpdateVersionsCmd(opts *rootOptions) *cobra.Command {
	var tfVersion string
	var providerFlags []string
	var dryRun bool
	var withBackup bool
	var validate bool
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.UpdateVersionsUse,
		Short: messages.UpdateVersionsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.target()
			if err != nil {
				return err
			}
			cfg, _, err := config.Load(root)
			if err != nil {
				return err
			}
			req, err := buildUpdateRequest(cfg, tfVersion, providerFlags, withBackup, dryRun, validate)
			if err != nil {
				return err
			}
			return runUpdateVersions(cmd.OutOrStdout(), root, opts.recursive, req, diffLines)
		},
	}

	cmd.Flags().StringVar(&tfVersion, "tf-version", "", messages.UpdateFlagTfVersion)
	cmd.Flags().StringArrayVar(&providerFlags, "provider", nil, messages.UpdateFlagProvider)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.FlagDryRun)
	cmd.Flags().BoolVar(&withBackup, "backup", false, messages.UpdateFlagBackup)
	cmd.Flags().BoolVar(&validate, "validate", false, messages.UpdateFlagValidate)
	cmd.Flags().IntVar(&diffLines, "diff-lines", rewrite.DefaultDiffMaxLines, messages.UpdateFlagDiffLines)

	return cmd
}

// buildUpdateRequest resolves flags against config and validates the result.
func buildUpdateRequest(cfg *config.Config, tfVersion string, providerFlags []string, withBackup bool, dryRun bool, validate bool) (batch.UpdateRequest, error) {
	constraint, err := resolveTerraformConstraint(tfVersion, cfg)
	if err != nil {
		return batch.UpdateRequest{}, err
	}
	flagProviders, err := parseProviderFlags(providerFlags)
	if err != nil {
		return batch.UpdateRequest{}, err
	}
	return batch.UpdateRequest{
		TerraformConstraint: constraint,
		Providers:           mergeProviders(cfg, flagProviders),
		Backup:              withBackup,
		DryRun:              dryRun,
		Validate:            validate,
	}, nil
}

func runUpdateVersions(out io.Writer, root string, recursive bool, req batch.UpdateRequest, diffLines int) error {
	sys := batch.RealSystem{}

	files, err := discover.TerraformFiles(sys, root, recursive)
	if err != nil {
		return err
	}
	_, _ = color.New(color.FgCyan).Fprintf(out, messages.UpdateHeaderFmt, root)
	if len(files) == 0 {
		_, _ = fmt.Fprintln(out, color.YellowString(emptyNotice(messages.UpdateNoFilesFmt, root, recursive)))
		return nil
	}
	_, _ = color.New(color.FgCyan).Fprintf(out, messages.UpdateFoundFilesFmt, len(files))
	if req.DryRun {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.UpdateDryRunNotice))
	}

	outcomes := batch.UpdateFiles(sys, terraform.ExecRunner{}, req, files, func(o batch.FileOutcome) {
		renderFileOutcome(out, req, o, diffLines)
	})

	summary := batch.SummarizeFiles(outcomes)
	_, _ = color.New(color.FgCyan).Fprintf(out, messages.UpdateSummaryFmt, summary.Succeeded, summary.Total)
	return nil
}

// renderFileOutcome prints one file's update result. Untouched files stay
// silent so large trees read as a list of changes.
func renderFileOutcome(out io.Writer, req batch.UpdateRequest, o batch.FileOutcome, diffLines int) {
	switch {
	case o.Err != nil:
		_, _ = color.New(color.FgRed).Fprintf(out, messages.UpdateFileErrorFmt, o.Path, o.Err)
	case len(o.Updated) == 0:
	case req.DryRun:
		_, _ = color.New(color.FgGreen).Fprintf(out, messages.UpdateWouldUpdateFmt, o.Path, strings.Join(o.Updated, ", "))
		if preview, _ := o.File.Preview(diffLines); preview != "" {
			_, _ = fmt.Fprint(out, preview)
		}
	default:
		_, _ = color.New(color.FgGreen).Fprintf(out, messages.UpdateUpdatedFmt, o.Path, strings.Join(o.Updated, ", "))
		if o.BackupPath != "" {
			_, _ = color.New(color.FgBlue).Fprintf(out, messages.BackupCreatedFmt, o.BackupPath)
		}
		if req.Validate {
			if o.FmtFailed {
				_, _ = color.New(color.FgRed).Fprintf(out, messages.UpdateFmtCheckFailedFmt, o.Path, o.FmtOutput)
			} else {
				_, _ = color.New(color.FgGreen).Fprintf(out, messages.UpdateFmtCheckPassedFmt, o.Path)
			}
		}
	}
}

// emptyNotice formats a none-found notice, naming the subdirectories when the
// search was recursive.
func emptyNotice(format string, root string, recursive bool) string {
	notice := fmt.Sprintf(format, root)
	if recursive {
		notice += messages.NoneRecursiveSuffix
	}
	return notice
}
