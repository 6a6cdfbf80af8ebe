package locks

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/birchgrove/tfbump/internal/messages"
)

// ProviderLock is one provider entry read from a dependency lock file.
type ProviderLock struct {
	Address     string
	Version     string
	Constraints string
	HashCount   int
}

var lockFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "provider", LabelNames: []string{"source"}},
	},
}

// ParseLockFile reads the dependency lock file at path and returns its
// provider entries sorted by address. Attributes other than version,
// constraints and hashes are ignored.
func ParseLockFile(sys System, path string) ([]ProviderLock, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.LockParseFailedFmt, path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf(messages.LockParseDiagnosticsFmt, path, diags)
	}
	content, _, diags := file.Body.PartialContent(lockFileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf(messages.LockParseDiagnosticsFmt, path, diags)
	}

	providers := make([]ProviderLock, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		provider := ProviderLock{Address: block.Labels[0]}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf(messages.LockParseDiagnosticsFmt, path, diags)
		}
		provider.Version, err = attrString(path, provider.Address, attrs, "version")
		if err != nil {
			return nil, err
		}
		provider.Constraints, err = attrString(path, provider.Address, attrs, "constraints")
		if err != nil {
			return nil, err
		}
		provider.HashCount, err = attrLength(path, provider.Address, attrs, "hashes")
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Address < providers[j].Address
	})
	return providers, nil
}

func attrString(path string, address string, attrs hcl.Attributes, name string) (string, error) {
	attr, ok := attrs[name]
	if !ok {
		return "", nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf(messages.LockAttrValueFmt, path, name, address, diags)
	}
	if val.IsNull() || val.Type() != cty.String {
		return "", nil
	}
	return val.AsString(), nil
}

func attrLength(path string, address string, attrs hcl.Attributes, name string) (int, error) {
	attr, ok := attrs[name]
	if !ok {
		return 0, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf(messages.LockAttrValueFmt, path, name, address, diags)
	}
	if val.IsNull() || !val.CanIterateElements() {
		return 0, nil
	}
	return val.LengthInt(), nil
}
