package ledgererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := Validation("transaction", "amount", "0", ErrZeroAmount)

	assert.Equal(t, "invalid transaction amount='0': amount must be greater than zero", err.Error())
	assert.True(t, errors.Is(err, ErrZeroAmount))
	assert.True(t, IsValidation(err))

	wrapped := fmt.Errorf("add transaction: %w", err)
	assert.True(t, errors.Is(wrapped, ErrZeroAmount))
	assert.True(t, IsValidation(wrapped))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "amount", ve.Field)

	noValue := Validation("client", "name", "", ErrEmptyName)
	assert.Equal(t, "invalid client name: name is required", noValue.Error())
}

func TestNotFoundError(t *testing.T) {
	err := NotFound("transaction", "abc")

	assert.Equal(t, "transaction 'abc' not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("edit: %w", err), ErrNotFound))
	assert.False(t, IsValidation(err))
}

func TestMalformedBackupError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &MalformedBackupError{Reason: "invalid JSON", Err: cause}

	assert.Equal(t, "malformed backup: invalid JSON: unexpected EOF", err.Error())
	assert.True(t, errors.Is(err, ErrMalformedBackup))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, MalformedBackupMessage, err.UserMessage())

	bare := &MalformedBackupError{Reason: "transactions must be a list"}
	assert.Equal(t, "malformed backup: transactions must be a list", bare.Error())
}

func TestCollaboratorError(t *testing.T) {
	cause := errors.New("disk full")
	err := &CollaboratorError{Collaborator: "storage", Operation: "save", Err: cause}

	assert.Equal(t, "storage failed during save: disk full", err.Error())
	assert.True(t, errors.Is(err, cause))
}
