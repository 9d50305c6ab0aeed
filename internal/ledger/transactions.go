package ledger

import (
	"strings"

	"fjacquet/vx-finance/internal/currencyutils"
	"fjacquet/vx-finance/internal/dateutils"
	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"

	"github.com/shopspring/decimal"
)

const entityTransaction = "transaction"

// TransactionInput carries the user-editable fields of a transaction.
type TransactionInput struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Type        models.TransactionType
	Category    string
	ClientID    string
	ProjectID   string
}

// AddTransaction validates in, snapshots the category group and prepends the
// new transaction so the collection stays newest first.
func (l *Ledger) AddTransaction(in TransactionInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, err := l.buildTransaction(in, nil)
	if err != nil {
		l.logger.WithError(err).Warn("Transaction rejected")
		return models.Transaction{}, err
	}
	tx.ID = l.newID()

	l.state.Transactions = append([]models.Transaction{tx}, l.state.Transactions...)
	l.logger.Debug("Transaction added",
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldCategory, tx.Category),
		logging.F(logging.FieldGroup, tx.Group))
	l.commit("add_transaction")
	return tx, nil
}

// EditTransaction replaces every field of the transaction except its id,
// keeping its position in the collection.
func (l *Ledger) EditTransaction(id string, in TransactionInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.transactionIndex(id)
	if idx < 0 {
		return models.Transaction{}, ledgererror.NotFound(entityTransaction, id)
	}

	previous := l.state.Transactions[idx]
	tx, err := l.buildTransaction(in, &previous)
	if err != nil {
		l.logger.WithError(err).Warn("Transaction edit rejected", logging.F(logging.FieldTransactionID, id))
		return models.Transaction{}, err
	}
	tx.ID = previous.ID

	l.state.Transactions[idx] = tx
	l.logger.Debug("Transaction edited", logging.F(logging.FieldTransactionID, id))
	l.commit("edit_transaction")
	return tx, nil
}

// RemoveTransaction deletes a transaction after confirmation. An unknown id is
// a no-op reported as (false, nil); a declined confirmation returns
// ErrNotConfirmed.
func (l *Ledger) RemoveTransaction(id string, confirm Confirmer) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.transactionIndex(id)
	if idx < 0 {
		l.logger.Debug("Transaction to remove not found", logging.F(logging.FieldTransactionID, id))
		return false, nil
	}
	if !confirmed(confirm, PromptRemoveTransaction) {
		return false, ledgererror.ErrNotConfirmed
	}

	l.state.Transactions = append(l.state.Transactions[:idx:idx], l.state.Transactions[idx+1:]...)
	l.logger.Debug("Transaction removed", logging.F(logging.FieldTransactionID, id))
	l.commit("remove_transaction")
	return true, nil
}

// Transaction returns the transaction with the given id.
func (l *Ledger) Transaction(id string) (models.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if idx := l.transactionIndex(id); idx >= 0 {
		return l.state.Transactions[idx], true
	}
	return models.Transaction{}, false
}

// MaskedAmount returns the masked input representation of a stored
// transaction amount, as shown when the transaction is opened for editing.
func (l *Ledger) MaskedAmount(id string) (string, error) {
	tx, ok := l.Transaction(id)
	if !ok {
		return "", ledgererror.NotFound(entityTransaction, id)
	}
	return currencyutils.MaskedFromAmount(tx.Amount, tx.Type), nil
}

// buildTransaction must be called with the lock held. previous is the
// transaction being edited, nil on add.
func (l *Ledger) buildTransaction(in TransactionInput, previous *models.Transaction) (models.Transaction, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return models.Transaction{}, ledgererror.Validation(entityTransaction, "description", "", ledgererror.ErrEmptyDescription)
	}
	if !in.Amount.IsPositive() {
		return models.Transaction{}, ledgererror.Validation(entityTransaction, "amount", in.Amount.String(), ledgererror.ErrZeroAmount)
	}
	if !in.Type.Valid() {
		return models.Transaction{}, ledgererror.Validation(entityTransaction, "type", string(in.Type), ledgererror.ErrInvalidType)
	}
	if !dateutils.IsISODate(in.Date) {
		return models.Transaction{}, ledgererror.Validation(entityTransaction, "date", in.Date, ledgererror.ErrInvalidDate)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return models.Transaction{}, ledgererror.Validation(entityTransaction, "category", "", ledgererror.ErrEmptyReference)
	}

	clientID, projectID, err := l.resolveReferences(strings.TrimSpace(in.ClientID), strings.TrimSpace(in.ProjectID), previous)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Date:        in.Date,
		Description: description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    category,
		Group:       l.groupFor(category),
		ClientID:    clientID,
		ProjectID:   projectID,
	}, nil
}

// groupFor copies the current group of the named category. The copy is a
// snapshot: later group changes do not reach existing transactions.
func (l *Ledger) groupFor(category string) models.CategoryGroup {
	for _, c := range l.state.Categories {
		if c.Name == category {
			return c.Group
		}
	}

	fields := []logging.Field{
		logging.F(logging.FieldCategory, category),
		logging.F(logging.FieldGroup, models.GroupOperatingExpense),
	}
	if suggestion, ok := closestCategory(category, l.state.Categories); ok {
		fields = append(fields, logging.F(logging.FieldSuggestion, suggestion))
	}
	l.logger.Warn("Unknown category, using operating expense group", fields...)
	return models.GroupOperatingExpense
}

// resolveReferences enforces that a project belongs to the transaction's
// client. An empty client id is derived from the project. References already
// stored on the edited transaction are accepted even if their target was
// removed since.
func (l *Ledger) resolveReferences(clientID, projectID string, previous *models.Transaction) (string, string, error) {
	if projectID != "" {
		project, ok := l.findProject(projectID)
		if !ok {
			if previous != nil && previous.ProjectID == projectID && (clientID == "" || clientID == previous.ClientID) {
				return previous.ClientID, projectID, nil
			}
			return "", "", ledgererror.Validation(entityTransaction, "projectId", projectID, ledgererror.ErrUnknownProject)
		}
		if clientID == "" {
			return project.ClientID, projectID, nil
		}
		if clientID != project.ClientID {
			return "", "", ledgererror.Validation(entityTransaction, "projectId", projectID, ledgererror.ErrProjectClientMismatch)
		}
		return clientID, projectID, nil
	}

	if clientID != "" {
		if _, ok := l.findClient(clientID); !ok && (previous == nil || previous.ClientID != clientID) {
			return "", "", ledgererror.Validation(entityTransaction, "clientId", clientID, ledgererror.ErrUnknownClient)
		}
	}
	return clientID, "", nil
}
