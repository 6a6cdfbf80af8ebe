package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "tfbump"
	// RootShort is the short description for the root command.
	RootShort = "Terraform version constraint and lock file maintenance"
	RootLong  = "tfbump updates Terraform version constraints across a repository and regenerates\ndependency lock files for a fixed set of provider platforms."

	RootFlagPath      = "Directory containing Terraform configurations"
	RootFlagRecursive = "Process subdirectories recursively"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt  = "commit %s"
	VersionBuildFmt   = "built %s"
	VersionFullFmt    = "%s (%s)"
	VersionTemplate   = "{{.Version}}\n"
	VersionRequired   = "version is required"
	VersionInvalidFmt = "version %q must be in the form vX.Y.Z or X.Y.Z"

	// UpdateVersionsUse is the update-versions command name.
	UpdateVersionsUse   = "update-versions"
	UpdateVersionsShort = "Update version constraints in Terraform files"

	UpdateFlagTfVersion = "Terraform core version constraint to apply"
	UpdateFlagProvider  = "Provider constraint as name=constraint (repeatable)"
	UpdateFlagBackup    = "Write a .backup copy before modifying each file"
	UpdateFlagValidate  = "Run terraform fmt -check on each modified file"
	UpdateFlagDiffLines = "Maximum diff lines shown per file in dry runs"

	RemoveLocksUse   = "remove-lock-files"
	RemoveLocksShort = "Remove .terraform.lock.hcl files"

	RemoveCacheUse   = "remove-cache-dirs"
	RemoveCacheShort = "Remove .terraform cache directories"

	RegenerateUse   = "regenerate-locks"
	RegenerateShort = "Regenerate dependency lock files for all platforms"

	RegenerateFlagPlatforms = "Comma-separated platforms passed to terraform providers lock"
	RegenerateFlagForce     = "Regenerate even when a lock file already exists"
	RegenerateFlagVerbose   = "Print full terraform command output"

	RunAllUse   = "run-all"
	RunAllShort = "Update constraints, remove lock files, and regenerate locks"

	RunAllFlagCleanCache = "Also remove .terraform cache directories"
	RunAllFlagForceRegen = "Force lock regeneration even when lock files exist"

	ShowLocksUse   = "show-locks"
	ShowLocksShort = "Show providers pinned in dependency lock files"

	InitUse   = "init"
	InitShort = "Write a .tfbump.toml with project defaults"

	InitFlagForce   = "Overwrite an existing .tfbump.toml"
	InitFlagNoInput = "Write defaults without interactive prompts"

	// InitWarnUpdateCheckFailedFmt warns when the release check itself failed.
	InitWarnUpdateCheckFailedFmt = "Warning: failed to check for updates: %v\n"
	InitWarnDevBuildFmt          = "Warning: running dev build; latest release is %s\n"
	InitWarnUpdateAvailableFmt   = "Warning: update available: %s (current %s)\nDownload: " + ReleasesURL + "\n"

	DoctorUse   = "doctor"
	DoctorShort = "Check the target path, terraform binary, and config for problems"

	FlagYes     = "Skip confirmation prompts"
	FlagDryRun  = "Show planned changes without modifying anything"
	FlagBackup  = "Write a backup copy before each removal"
	FlagVerbose = "Print full terraform command output"

	// TargetPathMissingFmt reports a nonexistent target path.
	TargetPathMissingFmt = "target path %s does not exist"
	TargetPathNotDirFmt  = "target path %s is not a directory"
	TargetResolvePathFmt = "resolve target path %s: %w"
	TargetCheckPathFmt   = "check target path %s: %w"

	FlagProviderInvalidFmt           = "invalid --provider value %q; expected name=constraint"
	FlagTfConstraintInvalidFmt       = "invalid terraform constraint %q: %w"
	FlagProviderConstraintInvalidFmt = "invalid constraint %q for provider %s: %w"
	FlagPlatformsEmpty               = "at least one platform is required"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt   = "%s [Y/n]: "
	PromptNoDefaultFmt    = "%s [y/N]: "
	PromptInvalidResponse = "invalid response %q"
	PromptRetryYesNo      = "Please enter y or n."

	PromptRequiresTerminal = "confirmation prompts require an interactive terminal; re-run with --yes to skip them"

	ConfirmRemoveLocksFmt = "Remove %d lock files?"
	ConfirmRemoveCacheFmt = "Remove %d .terraform directories?"
	ConfirmRunAllFmt      = "Run all maintenance steps under %s?"

	Aborted = "Aborted."
)
