package tx

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"fjacquet/vx-finance/cmd/root"
	"fjacquet/vx-finance/internal/config"
	"fjacquet/vx-finance/internal/container"
	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *container.Container {
	t.Helper()
	cfg := &config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Data:   config.DataConfig{Backend: config.BackendMemory, SeedSample: true},
		Report: config.ReportConfig{CSVDelimiter: ";"},
	}
	c, err := container.NewContainerWithLogger(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)
	root.AppContainer = c
	t.Cleanup(func() {
		_ = c.Close()
		root.AppContainer = nil
		root.AssumeYes = false
	})
	return c
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	setup(t)

	out, err := run(t, "", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "DESCRIÇÃO")
	assert.Contains(t, lines[1], "Venda de Software VX")
	assert.Contains(t, lines[1], "01/03/2024")
	assert.Contains(t, lines[2], "-R$\u00a01.200,00")

	out, err = run(t, "", "list", "--month", "2019-01")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)
}

func TestListCSV(t *testing.T) {
	setup(t)

	out, err := run(t, "", "list", "--csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ID;Date;Description;"))
}

func TestAdd(t *testing.T) {
	c := setup(t)
	timeNow = func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = time.Now })

	out, err := run(t, "", "add", "--description", "Hospedagem", "--amount", "1.234,56", "--category", "Infraestrutura")
	require.NoError(t, err)
	assert.Contains(t, out, "Hospedagem -R$\u00a01.234,56")

	added := c.GetLedger().Transactions()[0]
	assert.Equal(t, "2024-05-02", added.Date)
	assert.True(t, added.Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, models.TransactionTypeExpense, added.Type)
	assert.Equal(t, models.GroupCOGS, added.Group)
}

func TestAddMaskedIncome(t *testing.T) {
	c := setup(t)

	_, err := run(t, "", "add", "--description", "Consultoria", "--amount", "150000", "--masked",
		"--type", "receita", "--category", "Serviços", "--date", "15/04/2024")
	require.NoError(t, err)

	added := c.GetLedger().Transactions()[0]
	assert.Equal(t, "2024-04-15", added.Date)
	assert.True(t, added.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, models.TransactionTypeIncome, added.Type)
}

func TestAddRejectsZeroAmount(t *testing.T) {
	c := setup(t)

	_, err := run(t, "", "add", "--description", "Nada", "--amount", "0,00", "--category", "Impostos")
	assert.ErrorIs(t, err, ledgererror.ErrZeroAmount)
	assert.Len(t, c.GetLedger().Transactions(), 4)
}

func TestEditKeepsUnsetFields(t *testing.T) {
	c := setup(t)

	_, err := run(t, "", "edit", "3", "--amount", "8500")
	require.NoError(t, err)

	edited, ok := c.GetLedger().Transaction("3")
	require.True(t, ok)
	assert.True(t, edited.Amount.Equal(decimal.NewFromInt(8500)))
	assert.Equal(t, "Salários Equipe Dev", edited.Description)
	assert.Equal(t, "2024-03-10", edited.Date)
	assert.Equal(t, models.TransactionTypeExpense, edited.Type)

	_, err = run(t, "", "edit", "missing", "--amount", "1")
	assert.EqualError(t, err, "lançamento missing não encontrado")
}

func TestRemove(t *testing.T) {
	c := setup(t)

	_, err := run(t, "n\n", "remove", "4")
	assert.ErrorIs(t, err, ledgererror.ErrNotConfirmed)
	assert.Len(t, c.GetLedger().Transactions(), 4)

	out, err := run(t, "s\n", "remove", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Lançamento 4 excluído")
	assert.Len(t, c.GetLedger().Transactions(), 3)

	out, err = run(t, "", "remove", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "não encontrado")
}

func TestShow(t *testing.T) {
	setup(t)

	out, err := run(t, "", "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "-R$\u00a01.200,00")
	assert.Contains(t, out, "Infraestrutura (Custos de Venda)")
	assert.Regexp(t, `Cliente:\s+-\n`, out)
}
