// Package backup encodes the full ledger state into a portable JSON document
// and decodes it back, rejecting documents that are not ledger backups.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/vx-finance/internal/fileutils"
	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"
)

// FilenamePrefix starts every backup file name.
const FilenamePrefix = "vx-finance-full-backup-"

// Document is the serialized form of a backup.
type Document struct {
	ExportedAt   string               `json:"exportedAt,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	Clients      []models.Client      `json:"clients"`
	Projects     []models.Project     `json:"projects"`
	Categories   []models.Category    `json:"categories"`
}

// Codec converts between AppState and backup documents.
type Codec struct {
	logger            logging.Logger
	defaultCategories []models.Category
	now               func() time.Time
}

// NewCodec creates a Codec. defaultCategories replace an absent categories
// field on import.
func NewCodec(logger logging.Logger, defaultCategories []models.Category) *Codec {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if defaultCategories == nil {
		defaultCategories = models.DefaultCategories()
	}
	return &Codec{
		logger:            logger.WithField(logging.FieldComponent, "backup"),
		defaultCategories: defaultCategories,
		now:               time.Now,
	}
}

// Filename returns the backup file name for the given export time.
func Filename(at time.Time) string {
	return FilenamePrefix + at.UTC().Format("2006-01-02") + ".json"
}

// Encode serializes state with a 2-space indent and returns the document
// together with its file name.
func (c *Codec) Encode(state models.AppState) ([]byte, string, error) {
	at := c.now()
	doc := Document{
		ExportedAt:   at.UTC().Format(time.RFC3339),
		Transactions: nonNil(state.Transactions),
		Clients:      nonNil(state.Clients),
		Projects:     nonNil(state.Projects),
		Categories:   nonNil(state.Categories),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, Filename(at), nil
}

// Decode parses a backup document. Only the transactions field is required;
// absent clients and projects become empty and absent categories become the
// default set. Any error leaves nothing partially decoded.
func (c *Codec) Decode(data []byte) (models.AppState, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return models.AppState{}, &ledgererror.MalformedBackupError{Reason: "document is not a JSON object", Err: err}
	}

	raw, ok := fields["transactions"]
	if !ok || isNull(raw) {
		return models.AppState{}, &ledgererror.MalformedBackupError{Reason: "transactions field is missing"}
	}

	var state models.AppState
	if err := decodeList(raw, "transactions", &state.Transactions); err != nil {
		return models.AppState{}, err
	}
	if err := decodeOptional(fields, "clients", &state.Clients); err != nil {
		return models.AppState{}, err
	}
	if err := decodeOptional(fields, "projects", &state.Projects); err != nil {
		return models.AppState{}, err
	}
	if err := decodeOptional(fields, "categories", &state.Categories); err != nil {
		return models.AppState{}, err
	}

	state.Transactions = nonNil(state.Transactions)
	state.Clients = nonNil(state.Clients)
	state.Projects = nonNil(state.Projects)
	if state.Categories == nil {
		state.Categories = append([]models.Category{}, c.defaultCategories...)
	}

	c.logger.Debug("Backup decoded",
		logging.F("transactions", len(state.Transactions)),
		logging.F("clients", len(state.Clients)),
		logging.F("projects", len(state.Projects)),
		logging.F("categories", len(state.Categories)))
	return state, nil
}

// ExportFile writes the encoded state into dir and returns the file path.
func (c *Codec) ExportFile(state models.AppState, dir string) (string, error) {
	data, name, err := c.Encode(state)
	if err != nil {
		return "", err
	}
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return "", &ledgererror.CollaboratorError{Collaborator: "backup", Operation: "export", Err: err}
	}
	path := filepath.Join(dir, name)
	if err := fileutils.WriteFile(path, data, models.PermissionDataFile); err != nil {
		return "", &ledgererror.CollaboratorError{Collaborator: "backup", Operation: "export", Err: err}
	}
	c.logger.Info("Backup exported",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(state.Transactions)))
	return path, nil
}

// ImportFile reads and decodes a backup file.
func (c *Codec) ImportFile(path string) (models.AppState, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return models.AppState{}, &ledgererror.CollaboratorError{Collaborator: "backup", Operation: "import", Err: err}
	}
	state, err := c.Decode(data)
	if err != nil {
		c.logger.WithError(err).Warn("Backup rejected", logging.F(logging.FieldFile, path))
		return models.AppState{}, err
	}
	return state, nil
}

func decodeOptional[T any](fields map[string]json.RawMessage, name string, out *[]T) error {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return nil
	}
	return decodeList(raw, name, out)
}

func decodeList[T any](raw json.RawMessage, name string, out *[]T) error {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '[' {
		return &ledgererror.MalformedBackupError{Reason: name + " field is not a list"}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ledgererror.MalformedBackupError{Reason: "invalid entry in " + name, Err: err}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
