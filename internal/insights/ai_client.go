// Package insights asks a generative AI model for a written analysis of the
// ledger and guards the call so only one request runs at a time.
package insights

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/vx-finance/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIClient generates free text from a system instruction and a prompt.
type AIClient interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// GeminiClient implements AIClient with the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
	logger logging.Logger
}

// NewGeminiClient connects to Gemini with apiKey and selects modelName.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, temperature float64, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(float32(temperature))

	return &GeminiClient{
		client: client,
		model:  model,
		name:   modelName,
		logger: logger.WithField(logging.FieldComponent, "gemini"),
	}, nil
}

// Generate sends the system instruction as the leading part of the request.
func (c *GeminiClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	c.logger.Debug("Requesting Gemini analysis",
		logging.F(logging.FieldModel, c.name),
		logging.F("prompt_length", len(prompt)))

	resp, err := c.model.GenerateContent(ctx, genai.Text(system), genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from Gemini API")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
