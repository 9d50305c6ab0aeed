// Package container provides dependency injection for the vx-finance application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fjacquet/vx-finance/internal/backup"
	"fjacquet/vx-finance/internal/config"
	"fjacquet/vx-finance/internal/insights"
	"fjacquet/vx-finance/internal/ledger"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"
	"fjacquet/vx-finance/internal/report"
	"fjacquet/vx-finance/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	kv         store.KeyValue
	repository *store.Repository
	ledger     *ledger.Ledger
	generator  *report.Generator
	codec      *backup.Codec
	analyzer   *insights.Analyzer
	gemini     *insights.GeminiClient
}

// NewContainer creates and wires all application dependencies and loads the
// persisted ledger state.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return newContainer(ctx, cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an injected logger.
func NewContainerWithLogger(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return newContainer(ctx, cfg, logger)
}

func newContainer(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	seed, err := store.ResolveSeedCategories(cfg.Data.CategoriesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed categories: %w", err)
	}

	kv, err := store.NewKeyValue(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Data.Backend, err)
	}

	defaults := models.DefaultState(cfg.Data.SeedSample)
	defaults.Categories = seed
	repository := store.NewRepository(kv, defaults, logger)

	state, err := repository.Load(ctx)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("failed to load ledger state: %w", err)
	}

	l := ledger.New(state,
		ledger.WithPersister(repository),
		ledger.WithSeedCategories(seed),
		ledger.WithLogger(logger))

	c := &Container{
		logger:     logger,
		config:     cfg,
		kv:         kv,
		repository: repository,
		ledger:     l,
		generator:  report.NewGenerator(logger, cfg.CSVDelimiter()),
		codec:      backup.NewCodec(logger, seed),
	}

	var aiClient insights.AIClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		gemini, err := insights.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Temperature, logger)
		if err != nil {
			logger.WithError(err).Warn("AI analysis unavailable")
		} else {
			c.gemini = gemini
			aiClient = gemini
			logger.Info("AI analysis enabled", logging.F(logging.FieldModel, cfg.AI.Model))
		}
	} else {
		logger.Info("AI analysis disabled")
	}
	c.analyzer = insights.NewAnalyzer(aiClient, time.Duration(cfg.AI.TimeoutSeconds)*time.Second, logger)

	logger.Info("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Data.Backend),
		logging.F("transactions", len(state.Transactions)),
		logging.F("ai_enabled", aiClient != nil))

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLedger returns the ledger loaded from storage.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetRepository returns the storage repository backing the ledger.
func (c *Container) GetRepository() *store.Repository {
	return c.repository
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// GetBackupCodec returns the backup codec.
func (c *Container) GetBackupCodec() *backup.Codec {
	return c.codec
}

// GetAnalyzer returns the AI analyzer. It is never nil; without an AI client
// it always answers with the fallback text.
func (c *Container) GetAnalyzer() *insights.Analyzer {
	return c.analyzer
}

// Close releases the storage backend and the AI client.
func (c *Container) Close() error {
	var errs []error
	if c.gemini != nil {
		if err := c.gemini.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close AI client: %w", err))
		}
	}
	if err := c.kv.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	c.logger.Info("Container closed")
	return errors.Join(errs...)
}
