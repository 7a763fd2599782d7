package messages

// Config messages for loading and validating the lvenv config file.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt         = "missing config file %s: %w"
	ConfigReadFailedFmt          = "read config file %s: %w"
	ConfigInvalidConfigFmt       = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt    = "%s contains unrecognized keys: %v"
	ConfigValidationGuidance     = "(see the [python] and [create] tables documented in lvenv --help)"
	ConfigResolveDirFmt          = "resolve config dir: %w"
	ConfigExpandPathFmt          = "%s: expand %s: %w"
	ConfigNameInvalidFmt         = "%s: python.name must be a plain file name, got %q"
	ConfigDiffLinesNegativeFmt   = "%s: create.diff_lines must be >= 0, got %d"
	ConfigInterpreterEmptyFmt    = "%s: python.interpreter must not be blank when set"
	ConfigDefaultInterpreterName = "python"
	ConfigValidationFailed       = "config validation failed"
	ConfigUnknownKeyFmt          = "unknown config key %q (known keys: %s)"
	ConfigValueTypeFmt           = "%s must be %s, got %q"
	ConfigEncodeFmt              = "encode config: %w"
	ConfigWriteFailedFmt         = "write config file %s: %w"
)
