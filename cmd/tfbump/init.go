package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"

	"github.com/birchgrove/tfbump/internal/config"
	"github.com/birchgrove/tfbump/internal/fsutil"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terminal"
	"github.com/birchgrove/tfbump/internal/terraform"
	"github.com/birchgrove/tfbump/internal/updatewarn"
)

// runInitForm draws the form on stderr so a redirected stdout captures only
// command output.
var runInitForm = func(form *huh.Form) error {
	form.WithProgramOptions(tea.WithOutput(os.Stderr))
	return form.Run()
}

var canRunForm = terminal.CanRunForm

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	var noInput bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.target()
			if err != nil {
				return err
			}
			configPath := filepath.Join(root, config.FileName)
			if _, err := os.Stat(configPath); err == nil {
				if !force {
					return fmt.Errorf(messages.InitConfigExistsFmt, configPath)
				}
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf(messages.TargetCheckPathFmt, configPath, err)
			}

			updatewarn.WarnIfOutdated(cmd.Context(), Version, cmd.ErrOrStderr())

			cfg := config.Defaults()
			if !noInput {
				if !canRunForm() {
					return errors.New(messages.InitRequiresTerminal)
				}
				// A valid existing config seeds the form; a broken one
				// falls back to defaults, so init --force is the repair
				// path the doctor recommends.
				if existing, _, err := config.Load(root); err == nil {
					cfg = existing
				}
				confirmed, err := collectInitConfig(cfg, configPath)
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.InitCancelled)
					return nil
				}
			}

			rendered, err := config.Render(cfg)
			if err != nil {
				return err
			}
			if err := fsutil.WriteFileAtomic(configPath, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf(messages.InitWriteFailedFmt, configPath, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InitWroteConfigFmt, configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	cmd.Flags().BoolVar(&noInput, "no-input", false, messages.InitFlagNoInput)

	return cmd
}

// collectInitConfig runs the interactive form seeded with cfg's current
// values and writes the answers back. It reports whether the user confirmed
// the write.
func collectInitConfig(cfg *config.Config, configPath string) (bool, error) {
	terraformConstraint := cfg.Versions.Terraform
	providerNames := cfg.SortedProviderNames()
	providerValues := make([]string, len(providerNames))
	for i, name := range providerNames {
		providerValues[i] = cfg.Versions.Providers[name]
	}
	platforms := append([]string(nil), cfg.Lock.Platforms...)
	confirmed := true

	fields := []huh.Field{
		huh.NewInput().
			Title(messages.InitFormTerraformTitle).
			Validate(validateConstraint).
			Value(&terraformConstraint),
	}
	for i, name := range providerNames {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf(messages.InitFormProviderFmt, name)).
			Validate(validateConstraint).
			Value(&providerValues[i]))
	}
	fields = append(fields,
		huh.NewMultiSelect[string]().
			Title(messages.InitFormPlatformsTitle).
			Options(initPlatformOptions(platforms)...).
			Validate(validatePlatforms).
			Value(&platforms),
		huh.NewConfirm().
			Title(fmt.Sprintf(messages.InitFormConfirmFmt, configPath)).
			Value(&confirmed),
	)

	if err := runInitForm(huh.NewForm(huh.NewGroup(fields...))); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	if !confirmed {
		return false, nil
	}

	cfg.Versions.Terraform = strings.TrimSpace(terraformConstraint)
	for i, name := range providerNames {
		cfg.Versions.Providers[name] = strings.TrimSpace(providerValues[i])
	}
	cfg.Lock.Platforms = platforms
	return true, nil
}

// initPlatformOptions offers the default platform set plus anything the
// seeded config already selected.
func initPlatformOptions(selected []string) []huh.Option[string] {
	names := append([]string(nil), terraform.DefaultPlatforms...)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, name := range selected {
		if !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		options[i] = huh.NewOption(name, name)
	}
	return options
}

func validateConstraint(value string) error {
	if _, err := goversion.NewConstraint(strings.TrimSpace(value)); err != nil {
		return errors.New(messages.InitConstraintInvalid)
	}
	return nil
}

func validatePlatforms(selected []string) error {
	if len(selected) == 0 {
		return errors.New(messages.InitPlatformsRequired)
	}
	return nil
}
