package gamification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// GeminiScorer scores contributions with a Google Gemini model.
type GeminiScorer struct {
	client *genai.Client
	model  string
}

// NewGeminiScorer creates a scorer for the given API key and model.
// An empty model defaults to gemini-2.0-flash.
func NewGeminiScorer(ctx context.Context, apiKey, model string) (*GeminiScorer, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	slog.Info("Initializing Gemini scorer", "model", model)
	return &GeminiScorer{client: client, model: model}, nil
}

// ScoreContributions implements Scorer.
func (g *GeminiScorer) ScoreContributions(ctx context.Context, req Request) (*Response, error) {
	prompt, err := RenderPrompt(req)
	if err != nil {
		return nil, err
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini generate failed: %w", err)
	}
	return ParseResponse(result.Text())
}
