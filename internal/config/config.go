// Package config provides Viper-based hierarchical configuration management
package config

import (
	"os"
	"path/filepath"

	"fjacquet/vx-finance/internal/validation"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SupportedReportFormats lists the formats accepted in report.formats.
var SupportedReportFormats = validation.ReportFormats

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	AI     AIConfig     `mapstructure:"ai" yaml:"ai"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
}

// LogConfig configures the logrus-backed logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig selects where the ledger is persisted.
type DataConfig struct {
	Backend        string `mapstructure:"backend" yaml:"backend"`
	Directory      string `mapstructure:"directory" yaml:"directory"`
	SQLitePath     string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	SeedSample     bool   `mapstructure:"seed_sample" yaml:"seed_sample"`
	CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
}

// AIConfig configures the optional Gemini analysis.
type AIConfig struct {
	Enabled        bool    `mapstructure:"enabled" yaml:"enabled"`
	Model          string  `mapstructure:"model" yaml:"model"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	Temperature    float64 `mapstructure:"temperature" yaml:"temperature"`
	APIKey         string  `mapstructure:"api_key" yaml:"-"` // Never serialize API key
}

// ReportConfig configures report exports.
type ReportConfig struct {
	OutputDir    string   `mapstructure:"output_dir" yaml:"output_dir"`
	CSVDelimiter string   `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	Formats      []string `mapstructure:"formats" yaml:"formats"`
}

// DataDirectory returns the configured data directory, defaulting to ~/.vx-finance/data.
func (c *Config) DataDirectory() string {
	if c.Data.Directory != "" {
		return c.Data.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".vx-finance", "data")
	}
	return filepath.Join(home, ".vx-finance", "data")
}

// SQLitePath returns the sqlite database path, defaulting to a file in the data directory.
func (c *Config) SQLitePath() string {
	if c.Data.SQLitePath != "" {
		return c.Data.SQLitePath
	}
	return filepath.Join(c.DataDirectory(), "vx-finance.db")
}

// CSVDelimiter returns the report CSV delimiter as a rune.
func (c *Config) CSVDelimiter() rune {
	if r := []rune(c.Report.CSVDelimiter); len(r) == 1 {
		return r[0]
	}
	return ';'
}
