// Package ledger owns the in-memory ledger collections (transactions, clients,
// projects and categories) and the mutations allowed on them.
//
// Every successful mutation hands a snapshot of the full state to the
// configured Persister. Persistence failures are logged and remembered but
// never roll back the in-memory state.
package ledger

import (
	"sync"

	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"

	"github.com/google/uuid"
)

// RemovedLabel is shown for a reference whose target no longer exists.
const RemovedLabel = "Removido"

// UnattributedLabel is shown for an empty client or project reference.
const UnattributedLabel = "-"

// Persister receives the full state after every successful mutation.
type Persister interface {
	Persist(state models.AppState) error
}

// PersisterFunc adapts a function to Persister.
type PersisterFunc func(state models.AppState) error

// Persist calls f(state).
func (f PersisterFunc) Persist(state models.AppState) error {
	return f(state)
}

// Ledger is the single owner of the application state.
type Ledger struct {
	mu             sync.RWMutex
	state          models.AppState
	seedCategories []models.Category
	persister      Persister
	newID          func() string
	logger         logging.Logger
	lastPersistErr error
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPersister sets the persistence hook.
func WithPersister(p Persister) Option {
	return func(l *Ledger) { l.persister = p }
}

// WithLogger sets the logger.
func WithLogger(logger logging.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(l *Ledger) { l.newID = gen }
}

// WithSeedCategories sets the categories restored by ResetAll.
func WithSeedCategories(categories []models.Category) Option {
	return func(l *Ledger) { l.seedCategories = append([]models.Category{}, categories...) }
}

// New creates a Ledger holding a copy of initial.
func New(initial models.AppState, opts ...Option) *Ledger {
	l := &Ledger{
		state:          normalize(initial.Clone()),
		seedCategories: models.DefaultCategories(),
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logging.NewLogrusAdapter("info", "text")
	}
	l.logger = l.logger.WithField(logging.FieldComponent, "ledger")
	return l
}

func normalize(state models.AppState) models.AppState {
	if state.Transactions == nil {
		state.Transactions = []models.Transaction{}
	}
	if state.Clients == nil {
		state.Clients = []models.Client{}
	}
	if state.Projects == nil {
		state.Projects = []models.Project{}
	}
	if state.Categories == nil {
		state.Categories = []models.Category{}
	}
	return state
}

// commit must be called with the write lock held, after a mutation succeeded.
func (l *Ledger) commit(operation string) {
	if l.persister == nil {
		return
	}
	if err := l.persister.Persist(l.state.Clone()); err != nil {
		l.lastPersistErr = err
		l.logger.WithError(err).Error("Failed to persist ledger state",
			logging.F(logging.FieldOperation, operation))
		return
	}
	l.lastPersistErr = nil
}

// LastPersistError returns the error of the most recent persistence attempt, if it failed.
func (l *Ledger) LastPersistError() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastPersistErr
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() models.AppState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Clone()
}

// Transactions returns the transactions, newest first.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Transaction{}, l.state.Transactions...)
}

// Clients returns the clients in creation order.
func (l *Ledger) Clients() []models.Client {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Client{}, l.state.Clients...)
}

// Projects returns the projects in creation order.
func (l *Ledger) Projects() []models.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Project{}, l.state.Projects...)
}

// Categories returns the categories in creation order.
func (l *Ledger) Categories() []models.Category {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Category{}, l.state.Categories...)
}

// ProjectsForClient returns the projects owned by clientID.
func (l *Ledger) ProjectsForClient(clientID string) []models.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.Project
	for _, p := range l.state.Projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// ClientName resolves a client id for display. An empty id yields
// UnattributedLabel and a dangling id yields RemovedLabel.
func (l *Ledger) ClientName(id string) string {
	if id == "" {
		return UnattributedLabel
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if c, ok := l.findClient(id); ok {
		return c.Name
	}
	return RemovedLabel
}

// ProjectName resolves a project id the same way ClientName does.
func (l *Ledger) ProjectName(id string) string {
	if id == "" {
		return UnattributedLabel
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if p, ok := l.findProject(id); ok {
		return p.Name
	}
	return RemovedLabel
}

func (l *Ledger) findClient(id string) (models.Client, bool) {
	for _, c := range l.state.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

func (l *Ledger) findProject(id string) (models.Project, bool) {
	for _, p := range l.state.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

func (l *Ledger) transactionIndex(id string) int {
	for i, t := range l.state.Transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}
