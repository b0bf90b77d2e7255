// Package selection tracks which chama is active for scoped queries and
// loads the scoped dashboard data for it.
//
// A Session replaces a process-wide "current group" global: it is created
// explicitly, initialised once with Init, and torn down with Close. Every
// Select and Load bumps a generation counter; a load only commits its result
// if no newer selection or load started in the meantime, so a slow response
// for an old selection can never overwrite a newer one.
package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
)

// ErrStale is returned by Load when a newer selection or load superseded it.
var ErrStale = errors.New("selection changed while loading")

// Source is the subset of storage the session reads from.
type Source interface {
	ListChamas(ctx context.Context) ([]*models.Chama, error)
	ListMembers(ctx context.Context, chamaID string) ([]*models.Member, error)
	ListContributions(ctx context.Context, chamaID string) ([]*models.Contribution, error)
	ListLoans(ctx context.Context, chamaID string) ([]*models.Loan, error)
}

// View is the scoped data of one committed load.
type View struct {
	// ChamaID is the scope the view was loaded for; empty means all chamas.
	ChamaID       string
	Members       []*models.Member
	Contributions []*models.Contribution
	Loans         []*models.Loan
	LoadedAt      time.Time
}

// Session holds the active chama and the chamas available for selection.
type Session struct {
	src Source

	initOnce sync.Once
	initErr  error

	mu          sync.Mutex
	active      *models.Chama
	explicitAll bool // the user chose "all chamas"; Refresh must not override it
	available   []*models.Chama
	generation  uint64
	cancel      context.CancelFunc
	view        *View
}

// NewSession creates a session reading from src. Call Init before use.
func NewSession(src Source) *Session {
	return &Session{src: src}
}

// Init runs the first Refresh. Later calls return the first call's result.
func (s *Session) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.Refresh(ctx)
	})
	return s.initErr
}

// Refresh re-fetches the available chamas. When no chama is active and the
// user has not explicitly chosen "all chamas", the first chama becomes active.
func (s *Session) Refresh(ctx context.Context) error {
	chamas, err := s.src.ListChamas(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh chamas: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.available = chamas
	if s.active != nil {
		// Swap in the refreshed record for the active chama.
		for _, c := range chamas {
			if c.ID == s.active.ID {
				s.active = c
				break
			}
		}
	}
	if s.active == nil && !s.explicitAll && len(chamas) > 0 {
		s.active = chamas[0]
		s.supersede()
		slog.Debug("Defaulted active chama", "chama_id", s.active.ID)
	}
	return nil
}

// Select makes the chama with the given ID active. An empty ID selects the
// "all chamas" view. Unknown IDs return storage.ErrNotFound.
// Any in-flight Load is cancelled and its result will be discarded.
func (s *Session) Select(chamaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next *models.Chama
	if chamaID != "" {
		for _, c := range s.available {
			if c.ID == chamaID {
				next = c
				break
			}
		}
		if next == nil {
			return fmt.Errorf("chama %s: %w", chamaID, storage.ErrNotFound)
		}
	}

	s.active = next
	s.explicitAll = next == nil
	s.supersede()
	return nil
}

// supersede invalidates the in-flight load. Callers must hold s.mu.
func (s *Session) supersede() {
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Active returns the active chama, or nil for "all chamas".
func (s *Session) Active() *models.Chama {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// ActiveID returns the active chama's ID, or "" for "all chamas".
func (s *Session) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID()
}

func (s *Session) activeID() string {
	if s.active == nil {
		return ""
	}
	return s.active.ID
}

// Available returns the chamas fetched by the last Refresh.
func (s *Session) Available() []*models.Chama {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Chama, len(s.available))
	copy(out, s.available)
	return out
}

// Load fetches members, contributions and loans for the active scope
// concurrently and commits them as the session's view. If a newer Select or
// Load starts before this one finishes, Load returns ErrStale and leaves the
// committed view untouched.
func (s *Session) Load(ctx context.Context) (*View, error) {
	s.mu.Lock()
	s.supersede()
	gen := s.generation
	chamaID := s.activeID()
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	view := &View{ChamaID: chamaID}
	g, gctx := errgroup.WithContext(loadCtx)
	g.Go(func() error {
		var err error
		view.Members, err = s.src.ListMembers(gctx, chamaID)
		return err
	})
	g.Go(func() error {
		var err error
		view.Contributions, err = s.src.ListContributions(gctx, chamaID)
		return err
	})
	g.Go(func() error {
		var err error
		view.Loans, err = s.src.ListLoans(gctx, chamaID)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		slog.Debug("Discarded stale load", "chama_id", chamaID)
		return nil, ErrStale
	}
	s.cancel = nil
	if err != nil {
		return nil, fmt.Errorf("failed to load chama data: %w", err)
	}

	view.LoadedAt = time.Now().UTC()
	s.view = view
	return view, nil
}

// View returns the last committed view, or nil before the first Load.
func (s *Session) View() *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Close cancels any in-flight Load.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersede()
}
