package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terminal"
	"github.com/birchgrove/tfbump/internal/update"
)

var isTerminal = terminal.IsInteractive
var checkForUpdate = update.Check

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	path      string
	recursive bool
}

// target resolves the configured path to an absolute existing directory.
func (o *rootOptions) target() (string, error) {
	return resolveTargetPath(o.path)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.path, "path", "p", ".", messages.RootFlagPath)
	cmd.PersistentFlags().BoolVarP(&opts.recursive, "recursive", "r", false, messages.RootFlagRecursive)

	cmd.AddCommand(newUpdateVersionsCmd(opts))
	cmd.AddCommand(newRemoveLockFilesCmd(opts))
	cmd.AddCommand(newRemoveCacheDirsCmd(opts))
	cmd.AddCommand(newRegenerateLocksCmd(opts))
	cmd.AddCommand(newRunAllCmd(opts))
	cmd.AddCommand(newShowLocksCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newDoctorCmd(opts))

	return cmd
}

// expandTargetPath turns the raw flag value into an absolute path without
// checking that anything exists there. The doctor command diagnoses missing
// targets instead of failing on them.
func expandTargetPath(raw string) (string, error) {
	expanded, err := homedir.Expand(raw)
	if err != nil {
		return "", fmt.Errorf(messages.TargetResolvePathFmt, raw, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.TargetResolvePathFmt, raw, err)
	}
	return abs, nil
}

// resolveTargetPath expands, absolutizes, and validates the target directory.
// An unusable target is the one fatal startup error; everything later is
// reported per file or directory.
func resolveTargetPath(raw string) (string, error) {
	abs, err := expandTargetPath(raw)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf(messages.TargetPathMissingFmt, abs)
	}
	if err != nil {
		return "", fmt.Errorf(messages.TargetCheckPathFmt, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf(messages.TargetPathNotDirFmt, abs)
	}
	return abs, nil
}
