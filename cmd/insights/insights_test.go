package insights

import (
	"bytes"
	"context"
	"testing"

	"fjacquet/vx-finance/cmd/root"
	"fjacquet/vx-finance/internal/config"
	"fjacquet/vx-finance/internal/container"
	"fjacquet/vx-finance/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsWithoutAIPrintsFallback(t *testing.T) {
	cfg := &config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Data:   config.DataConfig{Backend: config.BackendMemory, SeedSample: true},
		Report: config.ReportConfig{CSVDelimiter: ";"},
	}
	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithLogger(context.Background(), cfg, logger)
	require.NoError(t, err)
	root.AppContainer = c
	root.Log = logger
	t.Cleanup(func() {
		_ = c.Close()
		root.AppContainer = nil
	})

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Desculpe, não foi possível gerar a análise no momento.\n", out.String())
	assert.True(t, logger.HasEntry("WARN", "AI analysis failed"))
}
