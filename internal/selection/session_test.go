package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
	"github.com/mmynk/chama/internal/storage/memory"
	"github.com/mmynk/chama/internal/storage/storagetest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// gatedSource blocks member listing for one chama until released. It ignores
// context cancellation so a late response really arrives late.
type gatedSource struct {
	Source
	gatedChama string
	entered    chan struct{}
	release    chan struct{}
}

func (g *gatedSource) ListMembers(ctx context.Context, chamaID string) ([]*models.Member, error) {
	if chamaID == g.gatedChama {
		close(g.entered)
		<-g.release
	}
	return g.Source.ListMembers(ctx, chamaID)
}

func newSession(t *testing.T) (*Session, *storagetest.Fixture) {
	t.Helper()
	store := memory.New()
	f := storagetest.Seed(t, store)
	s := NewSession(store)
	t.Cleanup(s.Close)
	return s, f
}

func TestInit_DefaultsToFirstChama(t *testing.T) {
	s, f := newSession(t)
	ctx := context.Background()

	require.NoError(t, s.Init(ctx))
	require.NotNil(t, s.Active())
	assert.Equal(t, f.ChamaA.ID, s.ActiveID())
	assert.Len(t, s.Available(), 2)

	// Init is one-shot.
	require.NoError(t, s.Select(f.ChamaB.ID))
	require.NoError(t, s.Init(ctx))
	assert.Equal(t, f.ChamaB.ID, s.ActiveID())
}

func TestInit_EmptyStore(t *testing.T) {
	s := NewSession(memory.New())
	defer s.Close()

	require.NoError(t, s.Init(context.Background()))
	assert.Nil(t, s.Active())
	assert.Empty(t, s.Available())
}

func TestSelect(t *testing.T) {
	s, f := newSession(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	require.NoError(t, s.Select(f.ChamaB.ID))
	assert.Equal(t, f.ChamaB.ID, s.ActiveID())

	err := s.Select("nonexistent-id")
	assert.True(t, errors.Is(err, storage.ErrNotFound), "expected ErrNotFound, got %v", err)
	assert.Equal(t, f.ChamaB.ID, s.ActiveID(), "failed select must keep the previous chama")

	require.NoError(t, s.Select(""))
	assert.Nil(t, s.Active())

	// An explicit "all chamas" choice survives a refresh.
	require.NoError(t, s.Refresh(ctx))
	assert.Nil(t, s.Active())
}

func TestRefresh_PicksUpNewChamas(t *testing.T) {
	store := memory.New()
	storagetest.Seed(t, store)
	s := NewSession(store)
	defer s.Close()
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	created := &models.Chama{Name: "Future Investors"}
	require.NoError(t, store.CreateChama(ctx, created))
	require.NoError(t, s.Refresh(ctx))

	assert.Len(t, s.Available(), 3)
	require.NoError(t, s.Select(created.ID))
}

func TestLoad_ScopesToActiveChama(t *testing.T) {
	s, f := newSession(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	view, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, f.ChamaA.ID, view.ChamaID)
	assert.Len(t, view.Members, 2)
	assert.Len(t, view.Contributions, 3)
	for _, l := range view.Loans {
		assert.Equal(t, f.ChamaA.ID, l.ChamaID)
	}
	assert.Same(t, view, s.View())

	require.NoError(t, s.Select(""))
	all, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", all.ChamaID)
	assert.Len(t, all.Members, 3)
}

func TestLoad_LatestSelectionWins(t *testing.T) {
	store := memory.New()
	f := storagetest.Seed(t, store)
	src := &gatedSource{
		Source:     store,
		gatedChama: f.ChamaA.ID,
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	s := NewSession(src)
	defer s.Close()
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Select(f.ChamaA.ID))

	type result struct {
		view *View
		err  error
	}
	loadA := make(chan result, 1)
	go func() {
		v, err := s.Load(ctx)
		loadA <- result{v, err}
	}()

	// Wait until the load for chama A is in flight, then switch to B.
	select {
	case <-src.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("load for chama A never started")
	}
	require.NoError(t, s.Select(f.ChamaB.ID))

	viewB, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, f.ChamaB.ID, viewB.ChamaID)

	// Now let A's response arrive late.
	close(src.release)
	a := <-loadA
	assert.ErrorIs(t, a.err, ErrStale)
	assert.Nil(t, a.view)

	committed := s.View()
	require.NotNil(t, committed)
	assert.Equal(t, f.ChamaB.ID, committed.ChamaID)
	for _, m := range committed.Members {
		assert.Equal(t, f.ChamaB.ID, m.ChamaID)
	}
}

func TestLoad_CancelledBySelect(t *testing.T) {
	store := memory.New()
	f := storagetest.Seed(t, store)
	s := NewSession(storage.WithLatency(store, time.Hour, 0))
	defer s.Close()
	ctx := context.Background()

	// Refresh goes through the latency store too, so populate directly.
	s.available = []*models.Chama{f.ChamaA, f.ChamaB}
	s.active = f.ChamaA

	done := make(chan error, 1)
	go func() {
		_, err := s.Load(ctx)
		done <- err
	}()

	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.cancel != nil
	}, 5*time.Second, time.Millisecond, "load never started")
	require.NoError(t, s.Select(f.ChamaB.ID))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrStale)
	case <-time.After(5 * time.Second):
		t.Fatal("superseded load was not cancelled")
	}
	assert.Nil(t, s.View())
}
