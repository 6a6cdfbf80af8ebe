// Package config loads the optional .tfbump.toml settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/pelletier/go-toml/v2"

	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terraform"
)

// FileName is the configuration file looked up in the target path.
const FileName = ".tfbump.toml"

// Built-in fallbacks used when neither the config file nor flags say otherwise.
const (
	DefaultTerraformConstraint = ">= 1.7.0"
	DefaultProviderName        = "aws"
	DefaultProviderConstraint  = ">= 5.70.0"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax, filesystem, or other loading errors).
// Callers can use errors.Is(err, ErrConfigValidation) to distinguish
// validation problems from other Load failure modes.
var ErrConfigValidation = errors.New("config validation failed")

// Config holds the per-tree settings.
type Config struct {
	Versions Versions `toml:"versions"`
	Lock     Lock     `toml:"lock"`
}

// Versions holds the constraints written into configuration files.
type Versions struct {
	Terraform string            `toml:"terraform"`
	Providers map[string]string `toml:"providers"`
}

// Lock holds lock file regeneration settings.
type Lock struct {
	Platforms []string `toml:"platforms"`
}

// Defaults returns the built-in configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Versions: Versions{
			Terraform: DefaultTerraformConstraint,
			Providers: map[string]string{DefaultProviderName: DefaultProviderConstraint},
		},
		Lock: Lock{Platforms: append([]string(nil), terraform.DefaultPlatforms...)},
	}
}

// Load reads the configuration file in dir when present. A missing file
// yields the built-in defaults and found=false.
func Load(dir string) (*Config, bool, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Parse parses and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages. Fields the
// data leaves unset are filled from the built-in defaults, except providers,
// whose defaulting is an effective-settings concern of the caller.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnknownKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// This catches keys that toml.Unmarshal silently ignores (e.g. a misspelled
// platform key under [lock]).
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Validate checks constraint syntax and platform entries.
func (c *Config) Validate() error {
	if raw := strings.TrimSpace(c.Versions.Terraform); raw != "" {
		if _, err := goversion.NewConstraint(raw); err != nil {
			return fmt.Errorf(messages.ConfigInvalidTerraformConstraintFmt, c.Versions.Terraform, err)
		}
	}
	for _, name := range sortedProviderNames(c.Versions.Providers) {
		if strings.TrimSpace(name) == "" {
			return errors.New(messages.ConfigEmptyProviderName)
		}
		constraint := c.Versions.Providers[name]
		if _, err := goversion.NewConstraint(constraint); err != nil {
			return fmt.Errorf(messages.ConfigInvalidProviderConstraintFmt, name, constraint, err)
		}
	}
	for i, platform := range c.Lock.Platforms {
		if strings.TrimSpace(platform) == "" {
			return fmt.Errorf(messages.ConfigEmptyPlatformFmt, i)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Versions.Terraform) == "" {
		c.Versions.Terraform = DefaultTerraformConstraint
	}
	if len(c.Lock.Platforms) == 0 {
		c.Lock.Platforms = append([]string(nil), terraform.DefaultPlatforms...)
	}
}

// SortedProviderNames returns the configured provider names in sorted order,
// giving deterministic application and output ordering.
func (c *Config) SortedProviderNames() []string {
	return sortedProviderNames(c.Versions.Providers)
}

func sortedProviderNames(providers map[string]string) []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
