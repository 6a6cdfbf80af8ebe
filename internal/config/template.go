package config

import (
	"fmt"
	"strings"

	// toml is used for syntax validation only; the file is rendered from a
	// commented template so the written config keeps its guidance comments.
	toml "github.com/pelletier/go-toml"

	"github.com/birchgrove/tfbump/internal/messages"
)

const fileTemplate = `# tfbump settings for this directory tree.
# Command-line flags override anything set here.

[versions]
# Constraint written into terraform required_version blocks.
terraform = %s

[versions.providers]
# Provider name to constraint, applied to required_providers entries.
%s
[lock]
# Platforms passed to terraform providers lock.
platforms = [%s]
`

// Render produces .tfbump.toml content for cfg. The rendered document is
// syntax-checked before being returned.
func Render(cfg *Config) (string, error) {
	var providers strings.Builder
	for _, name := range cfg.SortedProviderNames() {
		fmt.Fprintf(&providers, "%s = %q\n", name, cfg.Versions.Providers[name])
	}

	platforms := make([]string, 0, len(cfg.Lock.Platforms))
	for _, platform := range cfg.Lock.Platforms {
		platforms = append(platforms, fmt.Sprintf("%q", platform))
	}

	content := fmt.Sprintf(
		fileTemplate,
		fmt.Sprintf("%q", cfg.Versions.Terraform),
		providers.String(),
		strings.Join(platforms, ", "),
	)
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.InitRenderedInvalidFmt, err)
	}
	return content, nil
}
