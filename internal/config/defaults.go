package config

// Logging format names.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Output codec names, mapped to pkg/persist codecs by the CLI.
const (
	CodecJSON = "json"
	CodecLZ4  = "lz4"
)

// Default values applied before file and environment layers.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = LogFormatText
	DefaultWorkers       = 4
	DefaultSummaryWindow = 5
	DefaultColor         = true
	DefaultCodec         = CodecJSON
	DefaultOutputDir     = "."
)
