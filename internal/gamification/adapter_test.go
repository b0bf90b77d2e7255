package gamification

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage/memory"
	"github.com/mmynk/chama/internal/storage/storagetest"
)

// mockScorer records requests and returns a canned response or error.
type mockScorer struct {
	calls atomic.Int32
	last  Request
	resp  *Response
	err   error
}

func (m *mockScorer) ScoreContributions(_ context.Context, req Request) (*Response, error) {
	m.calls.Add(1)
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	cp := *m.resp
	cp.MemberScores = append([]MemberScore(nil), m.resp.MemberScores...)
	return &cp, nil
}

func cannedResponse() *Response {
	return &Response{
		MemberScores: []MemberScore{
			{MemberID: "Bob Otieno", Score: 95, Streak: 1},
			{MemberID: "Alice Wanjiru", Score: 120, Streak: 2},
		},
		SuggestedRuleTweaks: "Reward weekly streaks.",
	}
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestInsights_NoContributions(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	empty := &models.Chama{Name: "Future Investors"}
	require.NoError(t, store.CreateChama(ctx, empty))

	scorer := &mockScorer{resp: cannedResponse()}
	a := NewAdapter(store, scorer)

	got := a.Insights(ctx, empty.ID)
	require.NotNil(t, got)
	assert.Equal(t, NoDataResponse(), got)
	assert.Equal(t, int32(0), scorer.calls.Load(), "scorer must not be called without data")
}

func TestInsights_SeededChama(t *testing.T) {
	store := memory.New()
	f := storagetest.Seed(t, store)
	ctx := context.Background()

	t.Run("request carries member names", func(t *testing.T) {
		scorer := &mockScorer{resp: cannedResponse()}
		a := NewAdapter(store, scorer)

		got := a.Insights(ctx, f.ChamaA.ID)
		require.NotNil(t, got)
		assert.Equal(t, int32(1), scorer.calls.Load())

		history := scorer.last.MemberContributionHistory
		require.Len(t, history, 3)
		assert.Equal(t, HistoryEntry{MemberID: "Alice Wanjiru", ContributionAmount: 100, ContributionDate: "2024-05-01T10:00:00Z"}, history[0])
		assert.Equal(t, HistoryEntry{MemberID: "Bob Otieno", ContributionAmount: 150, ContributionDate: "2024-05-01T10:05:00Z"}, history[1])
		assert.Equal(t, HistoryEntry{MemberID: "Alice Wanjiru", ContributionAmount: 100, ContributionDate: "2024-05-08T10:00:00Z"}, history[2])
		assert.Equal(t, DefaultScoringRules, scorer.last.CurrentScoringRules)

		// Leaderboard order.
		require.Len(t, got.MemberScores, 2)
		assert.Equal(t, "Alice Wanjiru", got.MemberScores[0].MemberID)
		assert.Equal(t, "Bob Otieno", got.MemberScores[1].MemberID)
	})

	t.Run("scorer error yields nil", func(t *testing.T) {
		scorer := &mockScorer{err: errors.New("model unavailable")}
		a := NewAdapter(store, scorer)

		assert.Nil(t, a.Insights(ctx, f.ChamaA.ID))
		assert.Equal(t, int32(1), scorer.calls.Load())
	})

	t.Run("nil scorer yields nil", func(t *testing.T) {
		a := NewAdapter(store, nil)
		assert.Nil(t, a.Insights(ctx, f.ChamaA.ID))
	})

	t.Run("all chamas", func(t *testing.T) {
		scorer := &mockScorer{resp: cannedResponse()}
		a := NewAdapter(store, scorer)

		require.NotNil(t, a.Insights(ctx, ""))
		assert.Len(t, scorer.last.MemberContributionHistory, 4)
	})

	t.Run("timeout yields nil", func(t *testing.T) {
		slow := ScorerFunc(func(ctx context.Context, _ Request) (*Response, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
		a := NewAdapter(store, slow, WithTimeout(10*time.Millisecond))
		assert.Nil(t, a.Insights(ctx, f.ChamaA.ID))
	})
}

func TestBuildRequest_UnknownMemberKeepsID(t *testing.T) {
	contributions := []*models.Contribution{
		{MemberID: "m-1", Amount: 50, Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{MemberID: "ghost", Amount: 75, Date: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)},
	}
	members := []*models.Member{{ID: "m-1", Name: "Grace Akinyi"}}

	req := BuildRequest(contributions, members)
	require.Len(t, req.MemberContributionHistory, 2)
	assert.Equal(t, "Grace Akinyi", req.MemberContributionHistory[0].MemberID)
	assert.Equal(t, "ghost", req.MemberContributionHistory[1].MemberID)
}

func TestInsights_Cache(t *testing.T) {
	store := memory.New()
	f := storagetest.Seed(t, store)
	ctx := context.Background()
	mr, client := setupRedis(t)

	scorer := &mockScorer{resp: cannedResponse()}
	a := NewAdapter(store, scorer, WithCache(NewRedisCache(client, time.Minute)))

	first := a.Insights(ctx, f.ChamaA.ID)
	require.NotNil(t, first)
	second := a.Insights(ctx, f.ChamaA.ID)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), scorer.calls.Load(), "second call should be served from cache")
	assert.True(t, mr.Exists(cacheKey(f.ChamaA.ID)))

	a.Invalidate(ctx, f.ChamaA.ID)
	assert.False(t, mr.Exists(cacheKey(f.ChamaA.ID)))
	require.NotNil(t, a.Insights(ctx, f.ChamaA.ID))
	assert.Equal(t, int32(2), scorer.calls.Load())

	mr.FastForward(2 * time.Minute)
	require.NotNil(t, a.Insights(ctx, f.ChamaA.ID))
	assert.Equal(t, int32(3), scorer.calls.Load(), "expired entry should be rescored")
}

func TestInsights_CacheDownStillScores(t *testing.T) {
	store := memory.New()
	f := storagetest.Seed(t, store)
	mr, client := setupRedis(t)
	mr.Close()

	scorer := &mockScorer{resp: cannedResponse()}
	a := NewAdapter(store, scorer, WithCache(NewRedisCache(client, time.Minute)))

	require.NotNil(t, a.Insights(context.Background(), f.ChamaA.ID))
	assert.Equal(t, int32(1), scorer.calls.Load())
}

func TestInsights_RateLimited(t *testing.T) {
	store := memory.New()
	f := storagetest.Seed(t, store)

	scorer := &mockScorer{resp: cannedResponse()}
	// One token, refilled far slower than the timeout.
	a := NewAdapter(store, scorer, WithRateLimit(0.001, 1), WithTimeout(20*time.Millisecond))

	ctx := context.Background()
	require.NotNil(t, a.Insights(ctx, f.ChamaA.ID))
	assert.Nil(t, a.Insights(ctx, f.ChamaA.ID))
	assert.Equal(t, int32(1), scorer.calls.Load())
}

// blockingScorer parks each call until release is closed.
type blockingScorer struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingScorer) ScoreContributions(ctx context.Context, _ Request) (*Response, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
		select {
		case <-b.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return cannedResponse(), nil
}

func TestInsights_InvalidateDuringScoring(t *testing.T) {
	store := memory.New()
	f := storagetest.Seed(t, store)
	ctx := context.Background()
	mr, client := setupRedis(t)

	scorer := &blockingScorer{started: make(chan struct{}), release: make(chan struct{})}
	a := NewAdapter(store, scorer, WithCache(NewRedisCache(client, time.Minute)))

	done := make(chan *Response)
	go func() { done <- a.Insights(ctx, f.ChamaA.ID) }()

	<-scorer.started
	a.Invalidate(ctx, f.ChamaA.ID)
	close(scorer.release)
	require.NotNil(t, <-done, "in-flight caller still gets its answer")
	assert.False(t, mr.Exists(cacheKey(f.ChamaA.ID)), "stale response must not be cached")

	require.NotNil(t, a.Insights(ctx, f.ChamaA.ID))
	assert.Equal(t, int32(2), scorer.calls.Load(), "next call should rescore")
	assert.True(t, mr.Exists(cacheKey(f.ChamaA.ID)))
}
