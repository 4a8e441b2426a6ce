package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir   = "data_dir"
	cfgKeyFormat    = "format"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeySeqURL    = "seq_url"
)

// envKeys maps config keys to the environment variables consulted when
// config.yaml does not set them.
var envKeys = map[string]string{
	cfgKeyFormat:    "PROTOTYPES_FORMAT",
	cfgKeyLogLevel:  "PROTOTYPES_LOG_LEVEL",
	cfgKeyLogFormat: "PROTOTYPES_LOG_FORMAT",
	cfgKeySeqURL:    "PROTOTYPES_SEQ_URL",
}

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# prototypes configuration
#
# Keys left commented out fall back to the PROTOTYPES_* environment
# variables, then to the defaults shown.

# Output format of command results: json or yaml
# format: json

# Logging: level debug|info|warn|error, format text|json
# log_level: info
# log_format: text

# Fixture overrides; collections found here replace the embedded ones
# data_dir:

# Seq server receiving structured logs (optional)
# seq_url: http://localhost:5341
`

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run. Settings not present in the file fall back to
// PROTOTYPES_* environment variables, then to defaults.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyFormat, types.FormatJSON)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, types.LogFormatText)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	// The environment only fills keys config.yaml leaves unset. data_dir
	// follows the same order in paths.ResolveDataDir.
	for _, key := range []string{cfgKeyFormat, cfgKeyLogLevel, cfgKeyLogFormat, cfgKeySeqURL} {
		if v.InConfig(key) {
			continue
		}
		if val := os.Getenv(envKeys[key]); val != "" {
			v.Set(key, val)
		}
	}

	return types.Config{
		DataDir:   v.GetString(cfgKeyDataDir),
		Format:    v.GetString(cfgKeyFormat),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
		SeqURL:    v.GetString(cfgKeySeqURL),
	}, nil
}

func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
