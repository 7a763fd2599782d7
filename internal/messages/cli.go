package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "lvenv"
	// RootShort is the short description for the root command.
	RootShort         = "Build isolated environments for interpreters without native venv support"
	RootLong          = "lvenv stages a private environment tree that borrows the standard library and binary of a base\ninterpreter while keeping installed packages in the environment's own site-packages directory."
	RootFlagConfig    = "Path to the config file (default: $XDG_CONFIG_HOME/lvenv/config.toml)"
	RootFlagVerbose   = "Log each construction step to stderr"
	RootVersionFlag   = "Print version and exit"
	RootLoggerKeyStep = "step"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
	VersionUse       = "version"
	VersionShort     = "Print version information"

	// CreateUse is the create command usage.
	CreateUse   = "create DEST"
	CreateShort = "Create an isolated environment at DEST"
	CreateLong  = "Create probes the base interpreter, stages the bootstrap copies of its standard library into DEST and\nwrites a startup module that hands module resolution back to the base installation.\n\nRe-running create against the same DEST rebuilds it file by file; concurrent runs against one DEST are not supported."

	CreateFlagPython       = "Base interpreter name or path (default from config, then python)"
	CreateFlagName         = "Base name for the binary aliases in bin/"
	CreateFlagDryRun       = "Print the planned actions and the startup module diff without writing anything"
	CreateFlagYes          = "Rebuild a non-empty destination without asking"
	CreateFlagProbeTimeout = "Abort probing the base interpreter after this long (0 waits forever)"
	CreateFlagDiffLines    = "Maximum number of diff lines shown for the startup module in --dry-run"

	CreateOverwritePromptFmt = "%s is not empty. Rebuild the environment in place?"
	CreateAbortedFmt         = "create aborted; %s left unchanged"
	CreateDoneFmt            = "Created environment at %s (python %s)\n"
	CreateActivateHintFmt    = "Run %s to use it.\n"
	CreateInspectDestFmt     = "inspect destination %s: %w"

	// DryRunHeaderFmt introduces the plan output.
	DryRunHeaderFmt      = "Plan for %s (base python %s at %s):\n"
	DryRunMkdirFmt       = "  mkdir  %s\n"
	DryRunCopyFmt        = "  copy   %s -> %s\n"
	DryRunWriteFmt       = "  write  %s\n"
	DryRunSiteUnchanged  = "Startup module is unchanged."
	DryRunSiteNewFmt     = "Startup module %s will be created."
	DryRunSiteDiffHeader = "Startup module changes:"

	// CheckUse is the check command name.
	CheckUse       = "check"
	CheckShort     = "Report whether a base interpreter can be used"
	CheckOKFmt     = "[OK]   %s is usable (%s)\n"
	CheckFailFmt   = "[FAIL] %s: %v\n"
	CheckFlagProbe = "Also launch the interpreter and verify the probe succeeds"
	CheckProbedFmt = "%s, python %s"

	// InspectUse is the inspect command name.
	InspectUse        = "inspect"
	InspectShort      = "Print the facts probed from a base interpreter as JSON"
	InspectEncodeFmt  = "encode probe result: %w"
	InterpreterNotSet = "no base interpreter configured"

	// ConfigUse is the config command name.
	ConfigUse            = "config"
	ConfigShort          = "Show or edit the lvenv config file"
	ConfigPathUse        = "path"
	ConfigPathShort      = "Print the config file path"
	ConfigInitUse        = "init"
	ConfigInitShort      = "Write the default config file if none exists"
	ConfigInitWrittenFmt = "Wrote default config to %s\n"
	ConfigInitExistsFmt  = "Config already exists at %s\n"
	ConfigSetUse         = "set KEY VALUE"
	ConfigSetShort       = "Set a config key (python.interpreter, python.name, create.prompt, create.diff_lines)"
	ConfigShowUse        = "show"
	ConfigShowShort      = "Print the effective config"
)
