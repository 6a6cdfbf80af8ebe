package messages

// Runtime output for version rewriting and lock file maintenance.
const (
	// NoneRecursiveSuffix is appended to none-found notices for recursive runs.
	NoneRecursiveSuffix = " and its subdirectories"

	// UpdateHeaderFmt introduces a constraint update run.
	UpdateHeaderFmt          = "Updating version constraints under %s\n"
	UpdateFoundFilesFmt      = "Found %d Terraform files\n"
	UpdateNoFilesFmt         = "No Terraform files found in %s"
	UpdateDryRunNotice       = "Dry run - no files will be modified"
	UpdateWouldUpdateFmt     = "Would update %s: %s\n"
	UpdateUpdatedFmt         = "Updated %s: %s\n"
	UpdateChangeTerraformFmt = "terraform to %s"
	UpdateChangeProviderFmt  = "provider %s to %s"
	UpdateFileErrorFmt       = "Failed to update %s: %v\n"
	UpdateSummaryFmt         = "Modified %d of %d files\n"
	UpdateFmtCheckPassedFmt  = "Format check passed for %s\n"
	UpdateFmtCheckFailedFmt  = "Format check failed for %s:\n%s\n"

	// BackupCreatedFmt announces a pre-write backup copy.
	BackupCreatedFmt = "  Backup created: %s\n"

	// LocksHeaderFmt introduces a lock file removal run.
	LocksHeaderFmt       = "Removing lock files under %s\n"
	LocksFoundFmt        = "Found %d lock files\n"
	LocksNoneFmt         = "No lock files found in %s"
	LocksWouldRemoveFmt  = "Would remove: %s\n"
	LocksRemovedFmt      = "Removed: %s\n"
	LocksRemoveFailedFmt = "Failed to remove %s: %v\n"
	LocksSummaryFmt      = "Removed %d lock files\n"

	// CacheHeaderFmt introduces a cache directory removal run.
	CacheHeaderFmt       = "Removing .terraform directories under %s\n"
	CacheFoundFmt        = "Found %d .terraform directories\n"
	CacheNoneFmt         = "No .terraform directories found in %s"
	CacheWouldRemoveFmt  = "Would remove: %s (%.2f MB)\n"
	CacheRemovedFmt      = "Removed: %s (%.2f MB)\n"
	CacheRemoveFailedFmt = "Failed to remove %s: %v\n"
	CacheSummaryFmt      = "Removed %d directories, freed %.2f MB\n"

	// RegenHeaderFmt introduces a lock regeneration run.
	RegenHeaderFmt          = "Regenerating lock files under %s\n"
	RegenFoundFmt           = "Found %d Terraform module directories\n"
	RegenNoModulesFmt       = "No Terraform module directories found in %s"
	RegenProcessingFmt      = "Processing: %s\n"
	RegenRunningFmt         = "Running: %s\n"
	RegenSkipped            = "Skipped (lock file exists, use --force to regenerate)"
	RegenInitRetry          = "Lock generation failed, trying to initialize first..."
	RegenSucceeded          = "Lock file generated"
	RegenSucceededAfterInit = "Lock file generated after init"
	RegenFailedFmt          = "Failed: %s\n"
	RegenStepOutputFmt      = "Output of %s:\n%s\n"
	RegenSummaryFmt         = "Lock file generation complete: %d succeeded, %d skipped, %d failed\n"
	RegenFailureLineFmt     = "  %s: %s\n"
	RegenFailureMoreFmt     = "  ... and %d more (use --verbose for full error details)\n"

	// RunAllStepFmt formats run-all step banners.
	RunAllStepFmt     = "\nStep %d: %s\n"
	RunAllStepUpdate  = "Updating version constraints"
	RunAllStepCache   = "Removing .terraform directories"
	RunAllStepLocks   = "Removing lock files"
	RunAllStepRegen   = "Regenerating lock files"
	RunAllPlanHeader  = "This will:"
	RunAllPlanLineFmt = "  - %s\n"
	RunAllDone        = "All steps completed!"

	// ShowLocksHeaderFmt introduces a lock inspection run.
	ShowLocksHeaderFmt       = "Lock files under %s\n"
	ShowLocksNoneFmt         = "No lock files found in %s"
	ShowLocksFileFmt         = "%s\n"
	ShowLocksProviderFmt     = "  %s %s (constraints %s, %d hashes)\n"
	ShowLocksProviderBareFmt = "  %s %s (%d hashes)\n"
	ShowLocksNoProviders     = "  (no providers)"
	ShowLocksParseFailedFmt  = "Failed to parse %s: %v\n"
	ShowLocksSummaryFmt      = "%d lock files, %d providers\n"
)
