// Package config loads sllist settings from config.yaml, SLLIST_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/sllist/internal/logger"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// EnvPrefix is prepended to upper-cased keys for environment overrides,
	// e.g. SLLIST_ELEMENT_TYPE.
	EnvPrefix = "SLLIST"
)

// Config keys.
const (
	KeyElementType = "element_type"
	KeyOutput      = "output"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyKeepGoing   = "keep_going"
)

// Element types a script's lists can hold.
const (
	ElementInt    = "int"
	ElementString = "string"
)

// Output modes for script results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config validation errors.
var (
	ErrElementTypeUnknown = errors.New("unknown element type")
	ErrOutputUnknown      = errors.New("unknown output mode")
	ErrLogLevelUnknown    = errors.New("unknown log level")
	ErrLogFormatUnknown   = errors.New("unknown log format")
)

// Config holds the resolved settings for a run.
type Config struct {
	ElementType string `yaml:"element_type"`
	Output      string `yaml:"output"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	KeepGoing   bool   `yaml:"keep_going"`
}

// FlagKeys maps command-line flag names to the config keys they override.
var FlagKeys = map[string]string{
	"type":       KeyElementType,
	"output":     KeyOutput,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
	"keep-going": KeyKeepGoing,
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ElementType: ElementInt,
		Output:      OutputText,
		LogLevel:    logger.LevelWarn,
		LogFormat:   logger.FormatText,
		KeepGoing:   false,
	}
}

var (
	knownElementTypes = map[string]bool{ElementInt: true, ElementString: true}
	knownOutputs      = map[string]bool{OutputText: true, OutputJSON: true}
	knownLogLevels    = map[string]bool{
		logger.LevelNone:  true,
		logger.LevelDebug: true,
		logger.LevelInfo:  true,
		logger.LevelWarn:  true,
		logger.LevelError: true,
	}
	knownLogFormats = map[string]bool{logger.FormatText: true, logger.FormatJSON: true}
)

// Validate checks that every field holds a recognized value. It returns a
// sentinel error from this package wrapped with the offending value.
func (c Config) Validate() error {
	if !knownElementTypes[c.ElementType] {
		return fmt.Errorf("%w: %q", ErrElementTypeUnknown, c.ElementType)
	}
	if !knownOutputs[c.Output] {
		return fmt.Errorf("%w: %q", ErrOutputUnknown, c.Output)
	}
	if !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	if !knownLogFormats[c.LogFormat] {
		return fmt.Errorf("%w: %q", ErrLogFormatUnknown, c.LogFormat)
	}
	return nil
}

// Load resolves settings with precedence flag > env > config.yaml > default.
// Flags in fs named in FlagKeys are bound when present; fs may be nil.
// A missing config.yaml is not an error.
func Load(configDir string, fs *pflag.FlagSet) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault(KeyElementType, def.ElementType)
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)
	v.SetDefault(KeyKeepGoing, def.KeepGoing)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range FlagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if configDir != "" {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		ElementType: v.GetString(KeyElementType),
		Output:      v.GetString(KeyOutput),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		KeepGoing:   v.GetBool(KeyKeepGoing),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// defaultConfigHeader precedes the marshaled defaults in a new config.yaml.
const defaultConfigHeader = `# sllist configuration
# Every key can be overridden by an SLLIST_<KEY> environment variable
# or the matching command-line flag.
`

// WriteDefault creates configDir and writes config.yaml with the default
// settings. If the file already exists it is left untouched and created is
// false.
func WriteDefault(configDir string) (path string, created bool, err error) {
	path = filepath.Join(configDir, configFileExt)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return path, false, fmt.Errorf("create config directory: %w", err)
	}

	_, err = os.Stat(path)
	if err == nil {
		return path, false, nil
	}
	if !os.IsNotExist(err) {
		return path, false, fmt.Errorf("stat config file: %w", err)
	}

	def := Default()
	data, err := yaml.Marshal(&def)
	if err != nil {
		return path, false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(defaultConfigHeader), data...), 0o644); err != nil {
		return path, false, fmt.Errorf("write config: %w", err)
	}
	return path, true, nil
}
