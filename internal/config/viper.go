package config

import (
	"fmt"
	"strings"

	"fjacquet/vx-finance/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VX_LOG_LEVEL.
const EnvPrefix = "VX"

// InitializeConfig loads the configuration from the standard locations.
func InitializeConfig() (*Config, error) {
	return Load("")
}

// Load builds the configuration from defaults, an optional config file and
// the environment. When configFile is empty, config.yaml is searched in
// $HOME/.vx-finance, ./.vx-finance and the working directory.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.vx-finance")
		v.AddConfigPath(".vx-finance")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key always comes from the unprefixed variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.backend", BackendFile)
	v.SetDefault("data.directory", "")
	v.SetDefault("data.sqlite_path", "")
	v.SetDefault("data.seed_sample", true)
	v.SetDefault("data.categories_file", "")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-3-flash-preview")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.api_key", "")

	v.SetDefault("report.output_dir", ".")
	v.SetDefault("report.csv_delimiter", ";")
	v.SetDefault("report.formats", []string{"json", "csv", "txt"})
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Data.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid data backend: %s (must be one of %s, %s, %s)",
			config.Data.Backend, BackendMemory, BackendFile, BackendSQLite)
	}

	if len([]rune(config.Report.CSVDelimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Report.CSVDelimiter)
	}

	for _, format := range config.Report.Formats {
		if validation.IsValidOutputFormat(format) != nil {
			return fmt.Errorf("unsupported report format: %s", format)
		}
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}

		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}

		if config.AI.Temperature < 0 || config.AI.Temperature > 2 {
			return fmt.Errorf("ai.temperature must be between 0.0 and 2.0, got: %f", config.AI.Temperature)
		}
	}

	return nil
}
