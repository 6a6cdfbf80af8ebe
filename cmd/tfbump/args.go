package main

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/birchgrove/tfbump/internal/batch"
	"github.com/birchgrove/tfbump/internal/config"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terraform"
)

// parseProviderFlags turns repeated name=constraint values into providers,
// in flag order.
func parseProviderFlags(values []string) ([]batch.Provider, error) {
	providers := make([]batch.Provider, 0, len(values))
	for _, value := range values {
		name, constraint, ok := strings.Cut(value, "=")
		name = strings.TrimSpace(name)
		constraint = strings.TrimSpace(constraint)
		if !ok || name == "" || constraint == "" {
			return nil, fmt.Errorf(messages.FlagProviderInvalidFmt, value)
		}
		if _, err := goversion.NewConstraint(constraint); err != nil {
			return nil, fmt.Errorf(messages.FlagProviderConstraintInvalidFmt, constraint, name, err)
		}
		providers = append(providers, batch.Provider{Name: name, Constraint: constraint})
	}
	return providers, nil
}

// mergeProviders layers flag providers over config providers. Config entries
// come first in name order, flags override matching names in place, and new
// names are appended in flag order. When neither source names a provider the
// built-in default applies.
func mergeProviders(cfg *config.Config, flags []batch.Provider) []batch.Provider {
	merged := make([]batch.Provider, 0, len(cfg.Versions.Providers)+len(flags))
	for _, name := range cfg.SortedProviderNames() {
		merged = append(merged, batch.Provider{Name: name, Constraint: cfg.Versions.Providers[name]})
	}
	for _, flag := range flags {
		replaced := false
		for i := range merged {
			if merged[i].Name == flag.Name {
				merged[i].Constraint = flag.Constraint
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, flag)
		}
	}
	if len(merged) == 0 {
		merged = append(merged, batch.Provider{
			Name:       config.DefaultProviderName,
			Constraint: config.DefaultProviderConstraint,
		})
	}
	return merged
}

// resolveTerraformConstraint picks the flag value over the config value and
// validates whichever won.
func resolveTerraformConstraint(flagValue string, cfg *config.Config) (string, error) {
	constraint := strings.TrimSpace(flagValue)
	if constraint == "" {
		constraint = cfg.Versions.Terraform
	}
	if _, err := goversion.NewConstraint(constraint); err != nil {
		return "", fmt.Errorf(messages.FlagTfConstraintInvalidFmt, constraint, err)
	}
	return constraint, nil
}

// resolvePlatforms picks the flag CSV over the config list.
func resolvePlatforms(flagValue string, cfg *config.Config) ([]string, error) {
	var platforms []string
	if strings.TrimSpace(flagValue) != "" {
		platforms = terraform.ParsePlatforms(flagValue)
	} else {
		platforms = append(platforms, cfg.Lock.Platforms...)
	}
	if len(platforms) == 0 {
		return nil, fmt.Errorf(messages.FlagPlatformsEmpty)
	}
	return platforms, nil
}
