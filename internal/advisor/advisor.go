// Package advisor turns the spending summary into personal-finance advice
// via a single Gemini completion call.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/extracto-dev/extracto/internal/model"
)

// Advisor holds a configured Gemini client and model.
type Advisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// New creates an Advisor. The API key is required; the caller validates it
// at startup so a missing credential fails before any work is done.
func New(ctx context.Context, apiKey, modelName string) (*Advisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating AI client: %w", err)
	}

	m := client.GenerativeModel(modelName)
	m.SetTemperature(0)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &Advisor{client: client, model: m}, nil
}

// Advise sends the summary table in the fixed advisory prompt and returns
// the model's free-form advice text. No schema is imposed on the response
// and no retries are attempted.
func (a *Advisor) Advise(ctx context.Context, rows []model.SummaryRow, monthlyIncome int64) (string, error) {
	resp, err := a.model.GenerateContent(ctx, genai.Text(BuildPrompt(rows, monthlyIncome)))
	if err != nil {
		return "", fmt.Errorf("generating advice: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	advice := strings.TrimSpace(b.String())
	if advice == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return advice, nil
}

// Close releases the underlying client.
func (a *Advisor) Close() error {
	return a.client.Close()
}
