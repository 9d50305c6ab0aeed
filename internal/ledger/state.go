package ledger

import (
	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"
)

// ResetAll empties transactions, clients and projects and restores the seed
// categories. It is irreversible and requires confirmation.
func (l *Ledger) ResetAll(confirm Confirmer) error {
	if !confirmed(confirm, PromptResetAll) {
		return ledgererror.ErrNotConfirmed
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = models.AppState{
		Transactions: []models.Transaction{},
		Clients:      []models.Client{},
		Projects:     []models.Project{},
		Categories:   append([]models.Category{}, l.seedCategories...),
	}
	l.logger.Info("Ledger reset")
	l.commit("reset")
	return nil
}

// ReplaceState swaps the whole state for state, as done when restoring a
// backup. It requires confirmation; on refusal nothing changes.
func (l *Ledger) ReplaceState(state models.AppState, confirm Confirmer) error {
	if !confirmed(confirm, PromptReplaceState) {
		return ledgererror.ErrNotConfirmed
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = normalize(state.Clone())
	l.logger.Info("Ledger state replaced",
		logging.F("transactions", len(l.state.Transactions)),
		logging.F("clients", len(l.state.Clients)),
		logging.F("projects", len(l.state.Projects)),
		logging.F("categories", len(l.state.Categories)))
	l.commit("replace_state")
	return nil
}
