package messages

// Builder messages for probing, staging and startup module generation.
const (
	// ProbeFailureFmt formats probe failures: python, stage, cause.
	ProbeFailureFmt           = "probe base interpreter %s: %s: %v"
	ProbeFailureStderrFmt     = "probe base interpreter %s: %s: %v (stderr: %s)"
	ProbeStageLaunch          = "launch failed"
	ProbeStageExit            = "interpreter exited with an error"
	ProbeStageDecode          = "output is not a probe record"
	ProbeStageValidate        = "probe record is incomplete"
	ProbeTrailingOutput       = "unexpected output after the probe record"
	ProbeVersionLengthFmt     = "version must have exactly 3 components, got %d"
	ProbeFieldInvalidFmt      = "field %s failed %s validation"
	ProbeRegisterValidatorFmt = "register %s validator: %w"

	// StageMissingModule is the sentinel text for missing bootstrap modules.
	StageMissingModule        = "base library is missing a bootstrap module"
	StageMissingModuleFmt     = "base library is missing bootstrap module %s (looked for %s)"
	StageCreateDirFailedFmt   = "create directory %s: %w"
	StageCopyFailedFmt        = "stage %s: %w"
	StageStatFailedFmt        = "check %s: %w"
	StageUnknownStepKindFmt   = "unknown stage step kind %q"
	SiteWriteFailedFmt        = "write startup module %s: %w"
	SiteReadTemplateFailedFmt = "read startup module template: %w"

	// BuilderResolveDestinationFmt formats destination resolution errors.
	BuilderResolveDestinationFmt = "resolve destination %s: %w"
	BuilderReadExistingSiteFmt   = "read existing startup module %s: %w"

	// InterpreterNotFound is returned when the base interpreter cannot be located.
	InterpreterNotFound         = "base interpreter not found"
	InterpreterNotExecutable    = "base interpreter is not executable"
	InterpreterNotFoundFmt      = "%w: %s"
	InterpreterNotExecutableFmt = "%w: %s"
	InterpreterResolveFmt       = "resolve interpreter %s: %w"
)

// PreviewTruncatedFmt is appended to diffs cut at the line cap: limit, flag name.
const PreviewTruncatedFmt = "... (truncated to %d lines; rerun with %s <n> to see more)"
