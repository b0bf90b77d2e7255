// Package gamification turns a chama's contribution history into engagement
// scores by delegating to an external scoring model.
package gamification

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mmynk/chama/internal/metrics"
	"github.com/mmynk/chama/internal/models"
)

// DefaultScoringRules is the ruleset sent with every scoring request.
const DefaultScoringRules = "Points are awarded based on contribution amount. A streak bonus is given for contributions made in consecutive weeks. Higher frequency and amounts get higher scores."

// ErrNoScorer is returned when the adapter has no scorer configured.
var ErrNoScorer = errors.New("no scorer configured")

// HistoryEntry is one contribution as the scorer sees it.
type HistoryEntry struct {
	MemberID           string  `json:"memberId"`
	ContributionAmount float64 `json:"contributionAmount"`
	ContributionDate   string  `json:"contributionDate"`
}

// Request is the payload sent to a Scorer.
type Request struct {
	MemberContributionHistory []HistoryEntry `json:"memberContributionHistory"`
	CurrentScoringRules       string         `json:"currentScoringRules"`
}

// MemberScore is the score a scorer assigned to one member.
type MemberScore struct {
	MemberID string  `json:"memberId"`
	Score    float64 `json:"score"`
	Streak   int     `json:"streak"`
}

// Response is a scorer's answer.
type Response struct {
	MemberScores        []MemberScore `json:"memberScores"`
	SuggestedRuleTweaks string        `json:"suggestedRuleTweaks"`
}

// NoDataResponse is returned, without calling the scorer, when a chama has no
// contributions.
func NoDataResponse() *Response {
	return &Response{
		MemberScores:        []MemberScore{},
		SuggestedRuleTweaks: "No contribution data available to generate insights.",
	}
}

// Scorer computes gamification scores for a contribution history.
type Scorer interface {
	ScoreContributions(ctx context.Context, req Request) (*Response, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ctx context.Context, req Request) (*Response, error)

func (f ScorerFunc) ScoreContributions(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// Source is the subset of storage the adapter reads.
type Source interface {
	ListMembers(ctx context.Context, chamaID string) ([]*models.Member, error)
	ListContributions(ctx context.Context, chamaID string) ([]*models.Contribution, error)
}

// Adapter gathers contribution history and relays it to a Scorer.
type Adapter struct {
	src     Source
	scorer  Scorer
	cache   Cache
	limiter *rate.Limiter
	timeout time.Duration

	mu   sync.Mutex
	gens map[string]uint64 // bumped by Invalidate, keyed by chama ID
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithCache stores scored responses in c.
func WithCache(c Cache) Option {
	return func(a *Adapter) { a.cache = c }
}

// WithRateLimit allows at most perSecond scorer calls per second, with the
// given burst. Callers wait for a token until their context expires.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(a *Adapter) {
		if perSecond > 0 {
			a.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
		}
	}
}

// WithTimeout bounds each scorer call.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) { a.timeout = d }
}

// NewAdapter creates an adapter. A nil scorer disables insights: chamas with
// contributions then get a nil result.
func NewAdapter(src Source, scorer Scorer, opts ...Option) *Adapter {
	a := &Adapter{src: src, scorer: scorer, gens: make(map[string]uint64)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Insights returns gamification insights for a chama, or for every chama when
// chamaID is empty. A nil result means no insights are available; failures are
// logged, never returned.
func (a *Adapter) Insights(ctx context.Context, chamaID string) *Response {
	resp, outcome, err := a.insights(ctx, chamaID)
	metrics.GamificationCalls.WithLabelValues(outcome).Inc()
	if err != nil {
		slog.Warn("Gamification insights unavailable", "chama_id", chamaID, "error", err)
		return nil
	}
	return resp
}

func (a *Adapter) insights(ctx context.Context, chamaID string) (*Response, string, error) {
	gen := a.generation(chamaID)
	contributions, err := a.src.ListContributions(ctx, chamaID)
	if err != nil {
		return nil, metrics.OutcomeError, fmt.Errorf("failed to list contributions: %w", err)
	}
	if len(contributions) == 0 {
		return NoDataResponse(), metrics.OutcomeNoData, nil
	}
	if a.scorer == nil {
		return nil, metrics.OutcomeDisabled, ErrNoScorer
	}

	if a.cache != nil {
		cached, err := a.cache.Get(ctx, chamaID)
		if err != nil {
			slog.Warn("Insight cache read failed", "chama_id", chamaID, "error", err)
		} else if cached != nil {
			return cached, metrics.OutcomeCacheHit, nil
		}
	}

	members, err := a.src.ListMembers(ctx, chamaID)
	if err != nil {
		return nil, metrics.OutcomeError, fmt.Errorf("failed to list members: %w", err)
	}
	req := BuildRequest(contributions, members)

	resp, err := a.score(ctx, req)
	if err != nil {
		return nil, metrics.OutcomeError, err
	}
	SortScores(resp)

	if a.cache != nil {
		a.store(ctx, chamaID, gen, resp)
	}
	return resp, metrics.OutcomeScored, nil
}

// store caches resp unless the chama was invalidated after gen was taken.
// A write that lands concurrently with Invalidate is deleted again.
func (a *Adapter) store(ctx context.Context, chamaID string, gen uint64, resp *Response) {
	if a.generation(chamaID) != gen {
		slog.Debug("Skipping stale insight cache write", "chama_id", chamaID)
		return
	}
	if err := a.cache.Set(ctx, chamaID, resp); err != nil {
		slog.Warn("Insight cache write failed", "chama_id", chamaID, "error", err)
		return
	}
	if a.generation(chamaID) != gen {
		if err := a.cache.Delete(ctx, chamaID); err != nil {
			slog.Warn("Insight cache invalidation failed", "chama_id", chamaID, "error", err)
		}
	}
}

func (a *Adapter) generation(chamaID string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gens[chamaID]
}

func (a *Adapter) score(ctx context.Context, req Request) (*Response, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("scorer rate limit: %w", err)
		}
	}

	start := time.Now()
	resp, err := a.scorer.ScoreContributions(ctx, req)
	metrics.ScorerDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("scorer call failed: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("scorer returned no response: %w", ErrInvalidOutput)
	}
	slog.Debug("Scored contributions", "entries", len(req.MemberContributionHistory), "members", len(resp.MemberScores))
	return resp, nil
}

// Invalidate drops cached insights for a chama and for the all-chamas view.
func (a *Adapter) Invalidate(ctx context.Context, chamaID string) {
	if a.cache == nil {
		return
	}
	a.mu.Lock()
	a.gens[chamaID]++
	a.gens[""]++
	a.mu.Unlock()
	if err := a.cache.Delete(ctx, chamaID, ""); err != nil {
		slog.Warn("Insight cache invalidation failed", "chama_id", chamaID, "error", err)
	}
}

// BuildRequest maps contributions to scorer history entries. Each entry is
// labelled with the member's name, or the raw member ID when the member is
// unknown.
func BuildRequest(contributions []*models.Contribution, members []*models.Member) Request {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	history := make([]HistoryEntry, 0, len(contributions))
	for _, c := range contributions {
		label, ok := names[c.MemberID]
		if !ok {
			label = c.MemberID
		}
		history = append(history, HistoryEntry{
			MemberID:           label,
			ContributionAmount: c.Amount,
			ContributionDate:   c.Date.UTC().Format(time.RFC3339),
		})
	}
	return Request{
		MemberContributionHistory: history,
		CurrentScoringRules:       DefaultScoringRules,
	}
}

// SortScores orders member scores highest first, ties broken by member.
func SortScores(resp *Response) {
	slices.SortStableFunc(resp.MemberScores, func(a, b MemberScore) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.MemberID, b.MemberID)
	})
}
