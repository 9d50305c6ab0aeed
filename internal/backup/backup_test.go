package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 18, 21, 30, 0, 0, time.UTC)

func newTestCodec() (*Codec, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	c := NewCodec(logger, models.DefaultCategories())
	c.now = func() time.Time { return fixedTime }
	return c, logger
}

func sampleState() models.AppState {
	state := models.DefaultState(true)
	state.Clients = []models.Client{{ID: "c1", Name: "ACME"}}
	state.Projects = []models.Project{{ID: "p1", Name: "Site", ClientID: "c1"}}
	state.Transactions[0].ClientID = "c1"
	state.Transactions[0].ProjectID = "p1"
	return state
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "vx-finance-full-backup-2024-03-18.json", Filename(fixedTime))
}

func TestEncode(t *testing.T) {
	c, _ := newTestCodec()

	data, name, err := c.Encode(sampleState())
	require.NoError(t, err)
	assert.Equal(t, "vx-finance-full-backup-2024-03-18.json", name)
	assert.Contains(t, string(data), "\n  \"transactions\": [")
	assert.Contains(t, string(data), `"exportedAt": "2024-03-18T21:30:00Z"`)
	assert.Contains(t, string(data), `"amount": 15000`)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "clients")
	assert.Contains(t, doc, "projects")
	assert.Contains(t, doc, "categories")
}

func TestEncodeEmptyStateWritesLists(t *testing.T) {
	c, _ := newTestCodec()

	data, _, err := c.Encode(models.AppState{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"transactions": []`)
	assert.Contains(t, string(data), `"clients": []`)
}

func TestRoundTrip(t *testing.T) {
	c, _ := newTestCodec()
	state := sampleState()

	data, _, err := c.Encode(state)
	require.NoError(t, err)

	decoded, err := c.Decode(data)
	require.NoError(t, err)

	require.Len(t, decoded.Transactions, len(state.Transactions))
	for i := range state.Transactions {
		want, got := state.Transactions[i], decoded.Transactions[i]
		assert.True(t, want.Amount.Equal(got.Amount))
		got.Amount = want.Amount
		assert.Equal(t, want, got)
	}
	assert.Equal(t, state.Clients, decoded.Clients)
	assert.Equal(t, state.Projects, decoded.Projects)
	assert.Equal(t, state.Categories, decoded.Categories)
}

func TestDecodeOptionalCollections(t *testing.T) {
	c, _ := newTestCodec()

	state, err := c.Decode([]byte(`{"transactions": [{"id":"a","date":"2024-01-02","description":"x","amount":10.5,"type":"EXPENSE","category":"Impostos","group":"Despesa Operacional"}]}`))
	require.NoError(t, err)

	require.Len(t, state.Transactions, 1)
	assert.Equal(t, "10.5", state.Transactions[0].Amount.String())
	assert.Equal(t, models.TransactionTypeExpense, state.Transactions[0].Type)
	assert.Equal(t, models.GroupOperatingExpense, state.Transactions[0].Group)
	assert.NotNil(t, state.Clients)
	assert.Empty(t, state.Clients)
	assert.Empty(t, state.Projects)
	assert.Equal(t, models.DefaultCategories(), state.Categories)
}

func TestDecodeNullOptionalCollections(t *testing.T) {
	c, _ := newTestCodec()

	state, err := c.Decode([]byte(`{"transactions": [], "clients": null, "categories": []}`))
	require.NoError(t, err)
	assert.Empty(t, state.Transactions)
	assert.Empty(t, state.Clients)
	assert.Empty(t, state.Categories, "an explicit empty list is kept")
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"not json", `not json`, "document is not a JSON object"},
		{"top-level list", `[1, 2]`, "document is not a JSON object"},
		{"missing transactions", `{"clients": []}`, "transactions field is missing"},
		{"null transactions", `{"transactions": null}`, "transactions field is missing"},
		{"number transactions", `{"transactions": 42}`, "transactions field is not a list"},
		{"object transactions", `{"transactions": {"id": "1"}}`, "transactions field is not a list"},
		{"bad entry", `{"transactions": [{"amount": "abc"}]}`, "invalid entry in transactions"},
		{"clients not a list", `{"transactions": [], "clients": "ACME"}`, "clients field is not a list"},
		{"bad category", `{"transactions": [], "categories": [1]}`, "invalid entry in categories"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestCodec()
			_, err := c.Decode([]byte(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ledgererror.ErrMalformedBackup)

			var malformed *ledgererror.MalformedBackupError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.reason, malformed.Reason)
			assert.Equal(t, ledgererror.MalformedBackupMessage, malformed.UserMessage())
		})
	}
}

func TestExportAndImportFile(t *testing.T) {
	c, logger := newTestCodec()
	dir := filepath.Join(t.TempDir(), "backups")

	path, err := c.ExportFile(sampleState(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "vx-finance-full-backup-2024-03-18.json"), path)
	assert.True(t, logger.HasEntry("INFO", "Backup exported"))

	state, err := c.ImportFile(path)
	require.NoError(t, err)
	assert.Len(t, state.Transactions, 4)
	assert.Equal(t, "p1", state.Transactions[0].ProjectID)
}

func TestImportFileErrors(t *testing.T) {
	c, logger := newTestCodec()
	dir := t.TempDir()

	_, err := c.ImportFile(filepath.Join(dir, "missing.json"))
	var collab *ledgererror.CollaboratorError
	require.ErrorAs(t, err, &collab)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"transactions": 1}`), 0600))
	_, err = c.ImportFile(bad)
	assert.ErrorIs(t, err, ledgererror.ErrMalformedBackup)
	assert.True(t, logger.HasEntry("WARN", "Backup rejected"))
}
