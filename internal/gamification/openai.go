package gamification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

// OpenAIScorer scores contributions with an OpenAI chat model.
type OpenAIScorer struct {
	client *openai.Client
	model  string
}

// NewOpenAIScorer creates a scorer for the given API key and model.
// An empty model defaults to gpt-4o-mini.
func NewOpenAIScorer(apiKey, model string) (*OpenAIScorer, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	slog.Info("Initializing OpenAI scorer", "model", model)
	return newOpenAIScorer(openai.NewClient(apiKey), model), nil
}

func newOpenAIScorer(client *openai.Client, model string) *OpenAIScorer {
	return &OpenAIScorer{client: client, model: model}
}

// ScoreContributions implements Scorer.
func (o *OpenAIScorer) ScoreContributions(ctx context.Context, req Request) (*Response, error) {
	prompt, err := RenderPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("OpenAI returned no choices: %w", ErrInvalidOutput)
	}
	slog.Debug("Received response from OpenAI", "finish_reason", resp.Choices[0].FinishReason)
	return ParseResponse(resp.Choices[0].Message.Content)
}
