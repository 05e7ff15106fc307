package unitconv

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Convert values between temperature, distance, weight and volume units"
	MsgMenuShort       = "Start the interactive converter"
	MsgMenuLong        = "Start the interactive menu. This is also what running unitconv without a command does."
	MsgConvertShort    = "Convert a single value"
	MsgListShort       = "List the available conversions"
	MsgListLong        = "List prints every conversion with its category and formula, optionally limited to one category."
	MsgBatchShort      = "Convert every request in a file"
	MsgGenConfigShort  = "Print the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Output
	MsgVersionFormat = "unitconv version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s\n"
	MsgErrorFormat   = "Error: %s"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrInvalidValue = "invalid numeric value %q"
	MsgErrCategory     = "unknown category %q (expected temperature, distance, weight or volume)"
	MsgErrBatchFailed  = "%d of %d batch requests failed"
	MsgErrGenMan       = "failed to generate man pages: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration file (default $XDG_CONFIG_HOME/unitconv/config.toml)"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagCategory = "Only list conversions of this category"
	MsgFlagFormat   = "Output format: text, json, yaml, toml or xml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/batch-long.txt
	msgBatchLongRaw string
	MsgBatchLong    = strings.TrimSpace(msgBatchLongRaw)

	//go:embed msgs/batch-example.txt
	msgBatchExampleRaw string
	MsgBatchExample    = strings.TrimRight(msgBatchExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
