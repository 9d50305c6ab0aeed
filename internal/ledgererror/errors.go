// Package ledgererror defines the error taxonomy shared by the ledger, the
// backup codec and the external collaborators.
package ledgererror

import (
	"errors"
	"fmt"
)

// Validation causes. They are wrapped by ValidationError and can be matched with errors.Is.
var (
	ErrZeroAmount            = errors.New("amount must be greater than zero")
	ErrEmptyName             = errors.New("name is required")
	ErrEmptyDescription      = errors.New("description is required")
	ErrEmptyReference        = errors.New("reference is required")
	ErrDuplicateCategory     = errors.New("category already exists")
	ErrInvalidDate           = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidType           = errors.New("unknown transaction type")
	ErrInvalidGroup          = errors.New("unknown category group")
	ErrUnknownClient         = errors.New("client does not exist")
	ErrUnknownProject        = errors.New("project does not exist")
	ErrProjectClientMismatch = errors.New("project belongs to another client")
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrMalformedBackup is matched by every MalformedBackupError.
	ErrMalformedBackup = errors.New("malformed backup")

	// ErrNotConfirmed is returned when a destructive operation was declined.
	ErrNotConfirmed = errors.New("operation not confirmed")

	// ErrBusy is returned when a one-shot operation is already in flight.
	ErrBusy = errors.New("operation already in progress")
)

// ValidationError represents rejected input at a mutation boundary
type ValidationError struct {
	Entity string
	Field  string
	Value  string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %s='%s': %v", e.Entity, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %s: %v", e.Entity, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError represents an edit or remove target that does not exist
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Entity, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MalformedBackupMessage is the user-facing text for an invalid backup document.
const MalformedBackupMessage = "O arquivo não parece ser um backup válido da VX Finance."

// MalformedBackupError represents a backup document that cannot be imported
type MalformedBackupError struct {
	Reason string
	Err    error
}

func (e *MalformedBackupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed backup: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed backup: %s", e.Reason)
}

func (e *MalformedBackupError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedBackup) match any MalformedBackupError.
func (e *MalformedBackupError) Is(target error) bool {
	return target == ErrMalformedBackup
}

// UserMessage returns the text shown to the user.
func (e *MalformedBackupError) UserMessage() string {
	return MalformedBackupMessage
}

// CollaboratorError represents a failure of a side-effecting collaborator
// (persistence, AI analysis, report export). The in-memory ledger stays valid.
type CollaboratorError struct {
	Collaborator string
	Operation    string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s failed during %s: %v", e.Collaborator, e.Operation, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Validation is a shorthand for building a ValidationError.
func Validation(entity, field, value string, cause error) error {
	return &ValidationError{Entity: entity, Field: field, Value: value, Err: cause}
}

// NotFound is a shorthand for building a NotFoundError.
func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
