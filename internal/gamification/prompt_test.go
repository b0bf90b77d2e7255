package gamification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPrompt(t *testing.T) {
	req := Request{
		MemberContributionHistory: []HistoryEntry{
			{MemberID: "Alice Wanjiru", ContributionAmount: 100, ContributionDate: "2024-05-01T10:00:00Z"},
			{MemberID: "Bob Otieno", ContributionAmount: 150.5, ContributionDate: "2024-05-02T10:00:00Z"},
		},
		CurrentScoringRules: DefaultScoringRules,
	}

	prompt, err := RenderPrompt(req)
	require.NoError(t, err)
	assert.Contains(t, prompt, "- Member ID: Alice Wanjiru, Amount: 100, Date: 2024-05-01T10:00:00Z")
	assert.Contains(t, prompt, "- Member ID: Bob Otieno, Amount: 150.5, Date: 2024-05-02T10:00:00Z")
	assert.Contains(t, prompt, DefaultScoringRules)
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		want    *Response
	}{
		{
			name: "valid",
			raw:  `{"memberScores":[{"memberId":"Alice","score":120,"streak":4}],"suggestedRuleTweaks":"Add a leaderboard."}`,
			want: &Response{MemberScores: []MemberScore{{MemberID: "Alice", Score: 120, Streak: 4}}, SuggestedRuleTweaks: "Add a leaderboard."},
		},
		{
			name: "fenced",
			raw:  "```json\n{\"memberScores\":[],\"suggestedRuleTweaks\":\"\"}\n```",
			want: &Response{MemberScores: []MemberScore{}, SuggestedRuleTweaks: ""},
		},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "not json", raw: "Sure! Here are the scores.", wantErr: true},
		{name: "missing tweaks", raw: `{"memberScores":[]}`, wantErr: true},
		{name: "score as string", raw: `{"memberScores":[{"memberId":"A","score":"high","streak":1}],"suggestedRuleTweaks":""}`, wantErr: true},
		{name: "negative streak", raw: `{"memberScores":[{"memberId":"A","score":1,"streak":-1}],"suggestedRuleTweaks":""}`, wantErr: true},
		{name: "fractional streak", raw: `{"memberScores":[{"memberId":"A","score":1,"streak":1.5}],"suggestedRuleTweaks":""}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidOutput), "expected ErrInvalidOutput, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestOpenAIScorer(t *testing.T, answer string) (*OpenAIScorer, *openai.ChatCompletionRequest) {
	t.Helper()
	var captured openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Model: captured.Model,
			Choices: []openai.ChatCompletionChoice{{
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: answer},
				FinishReason: openai.FinishReasonStop,
			}},
		})
	}))
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return newOpenAIScorer(openai.NewClientWithConfig(cfg), "gpt-4o-mini"), &captured
}

func TestOpenAIScorer(t *testing.T) {
	req := Request{
		MemberContributionHistory: []HistoryEntry{{MemberID: "Alice Wanjiru", ContributionAmount: 100, ContributionDate: "2024-05-01T10:00:00Z"}},
		CurrentScoringRules:       DefaultScoringRules,
	}

	t.Run("valid answer", func(t *testing.T) {
		scorer, captured := newTestOpenAIScorer(t, `{"memberScores":[{"memberId":"Alice Wanjiru","score":80,"streak":1}],"suggestedRuleTweaks":"Keep going."}`)

		resp, err := scorer.ScoreContributions(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, []MemberScore{{MemberID: "Alice Wanjiru", Score: 80, Streak: 1}}, resp.MemberScores)

		assert.Equal(t, "gpt-4o-mini", captured.Model)
		require.NotNil(t, captured.ResponseFormat)
		assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, captured.ResponseFormat.Type)
		require.Len(t, captured.Messages, 2)
		assert.Contains(t, captured.Messages[1].Content, "Alice Wanjiru")
	})

	t.Run("invalid answer", func(t *testing.T) {
		scorer, _ := newTestOpenAIScorer(t, `{"scores":"none"}`)

		_, err := scorer.ScoreContributions(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidOutput)
	})
}

func TestNewScorers_RequireKey(t *testing.T) {
	_, err := NewOpenAIScorer("", "")
	assert.Error(t, err)
	_, err = NewGeminiScorer(context.Background(), "", "")
	assert.Error(t, err)
}
