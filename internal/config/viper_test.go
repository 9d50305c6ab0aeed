package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	t.Chdir(t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, BackendFile, config.Data.Backend)
	assert.True(t, config.Data.SeedSample)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-3-flash-preview", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
	assert.InDelta(t, 0.7, config.AI.Temperature, 1e-9)
	assert.Equal(t, ";", config.Report.CSVDelimiter)
	assert.Equal(t, []string{"json", "csv", "txt"}, config.Report.Formats)
	assert.Equal(t, ';', config.CSVDelimiter())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	t.Chdir(t.TempDir())

	testEnvVars := map[string]string{
		"VX_LOG_LEVEL":          "debug",
		"VX_LOG_FORMAT":         "json",
		"VX_DATA_BACKEND":       "sqlite",
		"VX_DATA_SEED_SAMPLE":   "false",
		"VX_AI_ENABLED":         "true",
		"VX_AI_MODEL":           "gemini-1.5-pro",
		"VX_AI_TIMEOUT_SECONDS": "15",
		"VX_REPORT_OUTPUT_DIR":  "/tmp/reports",
		"GEMINI_API_KEY":        "test-api-key",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, BackendSQLite, config.Data.Backend)
	assert.False(t, config.Data.SeedSample)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, 15, config.AI.TimeoutSeconds)
	assert.Equal(t, "/tmp/reports", config.Report.OutputDir)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
data:
  backend: "memory"
  directory: "/var/lib/vx"
report:
  csv_delimiter: "|"
  formats: ["xml", "yaml"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))
	t.Chdir(tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, BackendMemory, config.Data.Backend)
	assert.Equal(t, "/var/lib/vx", config.DataDirectory())
	assert.Equal(t, filepath.Join("/var/lib/vx", "vx-finance.db"), config.SQLitePath())
	assert.Equal(t, '|', config.CSVDelimiter())
	assert.Equal(t, []string{"xml", "yaml"}, config.Report.Formats)
}

func TestLoad_ExplicitFile(t *testing.T) {
	clearTestEnvVars(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0644))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", config.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
report:
  csv_delimiter: "|"
ai:
  timeout_seconds: 20
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))

	t.Setenv("VX_LOG_LEVEL", "error")
	t.Setenv("VX_AI_TIMEOUT_SECONDS", "25")
	t.Setenv("GEMINI_API_KEY", "env-api-key")
	t.Chdir(tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "|", config.Report.CSVDelimiter)
	assert.Equal(t, 25, config.AI.TimeoutSeconds)
	assert.Equal(t, "env-api-key", config.AI.APIKey)
}

func validConfig() *Config {
	return &Config{
		Log:  LogConfig{Level: "info", Format: "text"},
		Data: DataConfig{Backend: BackendFile},
		AI:   AIConfig{Model: "gemini", TimeoutSeconds: 30, Temperature: 0.7},
		Report: ReportConfig{
			OutputDir:    ".",
			CSVDelimiter: ";",
			Formats:      []string{"json"},
		},
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "invalid" }, "invalid log level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"invalid backend", func(c *Config) { c.Data.Backend = "postgres" }, "invalid data backend"},
		{"invalid CSV delimiter", func(c *Config) { c.Report.CSVDelimiter = "abc" }, "CSV delimiter must be a single character"},
		{"unsupported format", func(c *Config) { c.Report.Formats = []string{"pdf"} }, "unsupported report format: pdf"},
		{"AI enabled without API key", func(c *Config) { c.AI.Enabled = true }, "GEMINI_API_KEY required when AI is enabled"},
		{"invalid timeout seconds", func(c *Config) {
			c.AI.Enabled = true
			c.AI.APIKey = "key"
			c.AI.TimeoutSeconds = 0
		}, "ai.timeout_seconds must be between 1 and 300"},
		{"invalid temperature", func(c *Config) {
			c.AI.Enabled = true
			c.AI.APIKey = "key"
			c.AI.Temperature = 3
		}, "ai.temperature must be between 0.0 and 2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestDataDirectory_Default(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	config := validConfig()
	assert.Equal(t, filepath.Join(home, ".vx-finance", "data"), config.DataDirectory())
	assert.Equal(t, filepath.Join(home, ".vx-finance", "data", "vx-finance.db"), config.SQLitePath())
}

// clearTestEnvVars resets the variables the tests depend on; t.Setenv restores them afterwards.
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"VX_LOG_LEVEL",
		"VX_LOG_FORMAT",
		"VX_DATA_BACKEND",
		"VX_DATA_DIRECTORY",
		"VX_DATA_SQLITE_PATH",
		"VX_DATA_SEED_SAMPLE",
		"VX_DATA_CATEGORIES_FILE",
		"VX_AI_ENABLED",
		"VX_AI_MODEL",
		"VX_AI_TIMEOUT_SECONDS",
		"VX_AI_TEMPERATURE",
		"VX_REPORT_OUTPUT_DIR",
		"VX_REPORT_CSV_DELIMITER",
		"VX_REPORT_FORMATS",
		"GEMINI_API_KEY",
	}

	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
