package sweep

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Organize files with move, prefix and suffix rules"
	MsgRunShort        = "Apply rule files to a directory"
	MsgCheckShort      = "Validate rule files without touching anything"
	MsgConfigShort     = "Show the settings sweep runs with"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgRulesFailed    = "%d rule(s) failed"
	MsgRulesInvalid   = "%d invalid rule(s)"
	MsgVersionFormat  = "sweep version %s\n  commit: %s\n  built:  %s\n"
	MsgNoTopicsLoaded = "help topics unavailable"

	// Error messages
	MsgErrLoadSettings = "failed to load settings"
	MsgErrRunRules     = "failed to run rules"
	MsgErrCheckRules   = "failed to check rules"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagDir         = "Directory whose files the rules act on"
	MsgFlagFile        = "Rule file to apply (repeatable, applied in order)"
	MsgFlagDryRun      = "Describe the actions without performing them"
	MsgFlagInteractive = "Ask before acting on each matched file"
	MsgFlagAll         = "Apply each rule to every matching file, not only the first"
	MsgFlagExtension   = "Extension of discoverable rule files"
	MsgFlagPaths       = "Separator convention of rule targets (native, posix, windows)"
	MsgFlagFormat      = "Output format (text, json, yaml)"
	MsgFlagTemplate    = "Print a commented settings file instead"
	MsgFlagPath        = "Print the path of the user settings file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
