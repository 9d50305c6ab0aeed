package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/logging"
	"fjacquet/vx-finance/internal/models"
)

// SystemInstruction sets the analyst persona.
const SystemInstruction = "Você é um CFO experiente especializado em startups e empresas virtuais. " +
	"Sua análise deve ser direta, profissional e focada em crescimento sustentável."

// FallbackMessage is returned instead of an analysis when the call fails.
const FallbackMessage = "Desculpe, não foi possível gerar a análise no momento."

// DefaultTimeout bounds a single analysis request.
const DefaultTimeout = 30 * time.Second

var errNotConfigured = errors.New("AI analysis is not configured")

// BuildPrompt embeds the JSON transaction snapshot in the analysis request.
func BuildPrompt(transactions []models.Transaction) (string, error) {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	data, err := json.Marshal(transactions)
	if err != nil {
		return "", fmt.Errorf("failed to serialize transactions: %w", err)
	}
	return "Analise os seguintes dados financeiros da empresa VX Virtual e forneça insights estratégicos em português.\n" +
		"Considere saúde financeira, tendências de gastos e sugestões de otimização.\n" +
		"Dados: " + string(data), nil
}

// Analyzer runs one AI analysis at a time.
type Analyzer struct {
	client  AIClient
	timeout time.Duration
	logger  logging.Logger
	busy    atomic.Bool
}

// NewAnalyzer creates an Analyzer. A nil client makes every call return the
// fallback text.
func NewAnalyzer(client AIClient, timeout time.Duration, logger logging.Logger) *Analyzer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Analyzer{
		client:  client,
		timeout: timeout,
		logger:  logger.WithField(logging.FieldComponent, "insights"),
	}
}

// Busy reports whether an analysis is in flight.
func (a *Analyzer) Busy() bool {
	return a.busy.Load()
}

// Analyze returns the model's analysis of transactions. While a call is in
// flight further calls fail with ErrBusy. On any other failure it returns
// FallbackMessage along with a CollaboratorError.
func (a *Analyzer) Analyze(ctx context.Context, transactions []models.Transaction) (string, error) {
	if !a.busy.CompareAndSwap(false, true) {
		return "", ledgererror.ErrBusy
	}
	defer a.busy.Store(false)

	if a.client == nil {
		return a.fail(errNotConfigured)
	}

	prompt, err := BuildPrompt(transactions)
	if err != nil {
		return a.fail(err)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	text, err := a.client.Generate(ctx, SystemInstruction, prompt)
	if err != nil {
		return a.fail(err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return a.fail(errors.New("empty analysis"))
	}

	a.logger.Info("Analysis generated",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldDuration, time.Since(start).String()))
	return text, nil
}

func (a *Analyzer) fail(err error) (string, error) {
	a.logger.WithError(err).Error("Failed to generate analysis")
	return FallbackMessage, &ledgererror.CollaboratorError{Collaborator: "ai", Operation: "analyze", Err: err}
}
