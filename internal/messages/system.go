package messages

// System messages for internal operations.
const (
	// DiscoverWalkFailedFmt formats tree walk errors.
	DiscoverWalkFailedFmt = "walk %s: %w"
	DiscoverReadDirFmt    = "read directory %s: %w"

	// RewriteReadFailedFmt formats configuration file read errors.
	RewriteReadFailedFmt  = "read %s: %w"
	RewriteWriteFailedFmt = "write %s: %w"

	// BackupReadFailedFmt formats backup source read errors.
	BackupReadFailedFmt  = "read %s for backup: %w"
	BackupStatFailedFmt  = "stat %s for backup: %w"
	BackupWriteFailedFmt = "write backup %s: %w"

	// LockParseFailedFmt formats lock file parse errors.
	LockParseFailedFmt      = "parse lock file %s: %w"
	LockParseDiagnosticsFmt = "parse lock file %s: %s"
	LockAttrValueFmt        = "lock file %s: read %s of provider %s: %s"

	// RegenInitFailedPrefix prefixes failure reasons when terraform init failed.
	RegenInitFailedPrefix = "Initialization failed: "

	// BatchRemoveFailedFmt formats removal errors inside a batch phase.
	BatchRemoveFailedFmt = "remove %s: %w"
)
