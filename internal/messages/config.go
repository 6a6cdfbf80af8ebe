package messages

// Config messages for loading, validating, and writing .tfbump.toml.
const (
	// ConfigReadFailedFmt formats config read errors.
	ConfigReadFailedFmt  = "read config %s: %w"
	ConfigInvalidFmt     = "invalid config %s: %w"
	ConfigUnknownKeysFmt = "config %s has unrecognized keys: %v"
	// ConfigValidationGuidance is appended to validation failures.
	ConfigValidationGuidance = "(run 'tfbump init --force' to rewrite the config with valid defaults)"

	ConfigInvalidTerraformConstraintFmt = "versions.terraform: invalid constraint %q: %w"
	ConfigInvalidProviderConstraintFmt  = "versions.providers.%s: invalid constraint %q: %w"
	ConfigEmptyProviderName             = "versions.providers: provider name must not be empty"
	ConfigEmptyPlatformFmt              = "lock.platforms[%d]: platform must not be empty"

	// InitConfigExistsFmt reports an existing config blocking init.
	InitConfigExistsFmt    = "%s already exists; re-run with --force to overwrite"
	InitRenderedInvalidFmt = "rendered config failed validation: %w"
	InitWriteFailedFmt     = "write %s: %w"
	InitWroteConfigFmt     = "Wrote %s\n"
	InitRequiresTerminal   = "interactive init requires a terminal; re-run with --no-input to write defaults"
	InitFormTerraformTitle = "Terraform core constraint"
	InitFormProviderFmt    = "Constraint for provider %s"
	InitFormPlatformsTitle = "Lock platforms"
	InitFormConfirmFmt     = "Write %s?"
	InitConstraintInvalid  = "enter a valid version constraint, e.g. >= 1.7.0"
	InitPlatformsRequired  = "select at least one platform"
	InitCancelled          = "Init cancelled; no config written."
)
