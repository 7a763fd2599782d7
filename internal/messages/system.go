package messages

// System messages for internal operations.
const (
	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt   = "create temp file for %s: %w"
	FsutilSetPermissionsFmt   = "set permissions for %s: %w"
	FsutilWriteTempFileFmt    = "write temp file for %s: %w"
	FsutilSyncTempFileFmt     = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt    = "close temp file for %s: %w"
	FsutilRenameTempFileFmt   = "rename temp file for %s: %w"
	FsutilOpenDirFmt          = "open dir %s: %w"
	FsutilSyncDirFmt          = "sync dir %s: %w"
	FsutilOpenSourceFmt       = "open %s: %w"
	FsutilStatSourceFmt       = "stat %s: %w"
	FsutilSourceNotRegularFmt = "%s is not a regular file"
	FsutilCopyFmt             = "copy %s to %s: %w"

	// PromptRequiresTerminal indicates a prompt was requested without a terminal.
	PromptRequiresTerminal = "confirmation prompts require an interactive terminal; re-run with --yes"
	PromptCancelled        = "prompt cancelled"

	// TemplatesReadFailedFmt formats embedded template read failures.
	TemplatesReadFailedFmt = "read template %s: %w"
)
