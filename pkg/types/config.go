package types

import "errors"

// Config holds the settings read from config.yaml and command-line flags.
type Config struct {
	DataDir   string `json:"data_dir" yaml:"data_dir"`
	Format    string `json:"format" yaml:"format"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
	SeqURL    string `json:"seq_url" yaml:"seq_url"`
}

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config validation errors.
var (
	ErrFormatUnknown    = errors.New("unknown output format")
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
)

var knownFormats = map[string]bool{
	"":         true,
	FormatJSON: true,
	FormatYAML: true,
}

var knownLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var knownLogFormats = map[string]bool{
	"":            true,
	LogFormatText: true,
	LogFormatJSON: true,
}

// Validate checks that the Config is well-formed. Empty values select the
// defaults and are accepted.
func (c Config) Validate() error {
	if !knownFormats[c.Format] {
		return ErrFormatUnknown
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if !knownLogFormats[c.LogFormat] {
		return ErrLogFormatUnknown
	}
	return nil
}
