package service

import (
	"context"
	"fmt"

	"leadflow_backend/platform/config"

	"google.golang.org/genai"
)

// GeminiGenerator produces completions through the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator backed by the configured Gemini
// model. Returns an error when the client cannot be constructed.
func NewGeminiGenerator(ctx context.Context, cfg config.AdCopyConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GetGeminiAPIKey(),
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  cfg.GetGeminiModel(),
	}, nil
}

// Generate runs a single text completion.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return text, nil
}

var _ TextGenerator = (*GeminiGenerator)(nil)
