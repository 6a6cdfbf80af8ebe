package messages

// Update messages for the GitHub release check.
const (
	// ReleasesURL points at the project release listing.
	ReleasesURL = "https://github.com/birchgrove/tfbump/releases"

	UpdateCreateRequestErrFmt         = "create release request: %w"
	UpdateFetchLatestReleaseErrFmt    = "fetch latest release: %w"
	UpdateFetchLatestReleaseStatusFmt = "fetch latest release: unexpected status %s"
	UpdateDecodeLatestReleaseErrFmt   = "decode latest release: %w"
	UpdateLatestReleaseMissingTag     = "latest release response is missing tag_name"
	UpdateInvalidLatestReleaseTagFmt  = "invalid latest release tag %q: %w"
	UpdateInvalidCurrentVersionFmt    = "invalid current version %q: %w"
)
