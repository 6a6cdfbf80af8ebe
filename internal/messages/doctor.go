package messages

// Doctor messages for the doctor command.
const (
	DoctorHealthCheckFmt = "🏥 Checking tfbump health in %s...\n"

	DoctorCheckNameTarget    = "Target"
	DoctorCheckNameTerraform = "Terraform"
	DoctorCheckNameConfig    = "Config"
	DoctorCheckNameUpdate    = "Update"

	DoctorTargetOKFmt            = "Target directory exists: %s"
	DoctorTargetMissingFmt       = "Target directory does not exist: %s"
	DoctorTargetMissingRecommend = "Pass an existing directory with --path."
	DoctorTargetNotDirFmt        = "%s exists but is not a directory"
	DoctorTargetNotDirRecommend  = "Pass a directory with --path, not a file."

	DoctorTerraformFoundFmt         = "terraform found at %s (%s)"
	DoctorTerraformNoVersionFmt     = "terraform found at %s but 'terraform version' failed: %s"
	DoctorTerraformMissing          = "terraform not found on PATH"
	DoctorTerraformMissingRecommend = "Install Terraform from https://developer.hashicorp.com/terraform/install and ensure it is on PATH."
	DoctorTerraformVersionRecommend = "Check that the terraform binary is executable and not corrupted."

	DoctorConfigDefaultsFmt   = "no %s; using built-in defaults"
	DoctorConfigLoadedFmt     = "%s loaded successfully"
	DoctorConfigLoadFailedFmt = "Failed to load %s: %v"
	DoctorConfigLoadRecommend = "Fix the listed keys, or run 'tfbump init --force' to rewrite the config."

	DoctorUpdateSkippedFmt          = "Update check skipped because %s is set"
	DoctorUpdateSkippedRecommendFmt = "Unset %s to check for updates."
	DoctorUpdateRateLimited         = "Update check skipped due to GitHub API rate limit (HTTP 403/429)"
	DoctorUpdateFailedFmt           = "Failed to check for updates: %v"
	DoctorUpdateFailedRecommend     = "Verify network access and try again."
	DoctorUpdateDevBuildFmt         = "Running dev build; latest release is %s"
	DoctorUpdateAvailableFmt        = "tfbump update available: %s (current %s)"
	DoctorUpdateAvailableRecommend  = "Download the latest release from " + ReleasesURL + "."
	DoctorUpToDateFmt               = "tfbump is up to date (%s)"

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "✅ All systems go."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)
