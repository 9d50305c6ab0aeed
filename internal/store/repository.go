package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"
)

// Repository maps the four ledger collections onto a KeyValue backend.
type Repository struct {
	kv       KeyValue
	defaults models.AppState
	logger   logging.Logger
}

// NewRepository creates a Repository. defaults is used for every collection
// that is absent or cannot be decoded.
func NewRepository(kv KeyValue, defaults models.AppState, logger logging.Logger) *Repository {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Repository{
		kv:       kv,
		defaults: defaults.Clone(),
		logger:   logger.WithField(logging.FieldComponent, "repository"),
	}
}

// Load reads all four collections. Backend failures are returned; missing or
// corrupt entries fall back to the defaults.
func (r *Repository) Load(ctx context.Context) (models.AppState, error) {
	var (
		state models.AppState
		err   error
	)
	defaults := r.defaults.Clone()

	if state.Transactions, err = loadCollection(ctx, r, models.KeyTransactions, defaults.Transactions); err != nil {
		return models.AppState{}, err
	}
	if state.Clients, err = loadCollection(ctx, r, models.KeyClients, defaults.Clients); err != nil {
		return models.AppState{}, err
	}
	if state.Projects, err = loadCollection(ctx, r, models.KeyProjects, defaults.Projects); err != nil {
		return models.AppState{}, err
	}
	if state.Categories, err = loadCollection(ctx, r, models.KeyCategories, defaults.Categories); err != nil {
		return models.AppState{}, err
	}

	r.logger.Debug("Ledger state loaded",
		logging.F("transactions", len(state.Transactions)),
		logging.F("clients", len(state.Clients)),
		logging.F("projects", len(state.Projects)),
		logging.F("categories", len(state.Categories)))
	return state, nil
}

func loadCollection[T any](ctx context.Context, r *Repository, key string, fallback []T) ([]T, error) {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return nil, &ledgererror.CollaboratorError{Collaborator: "storage", Operation: "load " + key, Err: err}
	}
	if !ok {
		return fallback, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.logger.WithError(err).Warn("Stored collection is unreadable, using defaults", logging.F(logging.FieldKey, key))
		return fallback, nil
	}
	if items == nil {
		return fallback, nil
	}
	return items, nil
}

// Save writes all four collections. Every key is attempted even if one fails.
func (r *Repository) Save(ctx context.Context, state models.AppState) error {
	entries := []struct {
		key   string
		value interface{}
	}{
		{models.KeyTransactions, nonNil(state.Transactions)},
		{models.KeyClients, nonNil(state.Clients)},
		{models.KeyProjects, nonNil(state.Projects)},
		{models.KeyCategories, nonNil(state.Categories)},
	}

	var errs []error
	for _, e := range entries {
		data, err := json.Marshal(e.value)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", e.key, err))
			continue
		}
		if err := r.kv.Set(ctx, e.key, string(data)); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", e.key, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return &ledgererror.CollaboratorError{Collaborator: "storage", Operation: "save", Err: err}
	}
	return nil
}

// Persist saves state with a background context. It satisfies the ledger's persistence hook.
func (r *Repository) Persist(state models.AppState) error {
	return r.Save(context.Background(), state)
}

// Clear removes every stored collection.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.kv.Clear(ctx); err != nil {
		return &ledgererror.CollaboratorError{Collaborator: "storage", Operation: "clear", Err: err}
	}
	return nil
}

// Defaults returns a copy of the fallback state.
func (r *Repository) Defaults() models.AppState {
	return r.defaults.Clone()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
