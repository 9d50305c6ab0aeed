package store

import (
	"fmt"

	"fjacquet/vx-finance/internal/config"
)

// NewKeyValue creates the backend selected in the configuration.
func NewKeyValue(cfg *config.Config) (KeyValue, error) {
	switch cfg.Data.Backend {
	case config.BackendMemory:
		return NewMemoryKV(), nil
	case config.BackendFile:
		return NewFileKV(cfg.DataDirectory())
	case config.BackendSQLite:
		return NewSQLiteKV(cfg.SQLitePath())
	default:
		return nil, fmt.Errorf("unknown data backend: %s", cfg.Data.Backend)
	}
}
