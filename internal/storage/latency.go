package storage

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/mmynk/chama/internal/models"
)

// Ensure latencyStore implements Store
var _ Store = (*latencyStore)(nil)

// latencyStore delays every call to simulate a remote backend.
type latencyStore struct {
	next   Store
	delay  time.Duration
	jitter time.Duration
}

// WithLatency wraps a store so that every call waits delay plus a random
// amount up to jitter before running. A cancelled context aborts the wait
// and the call returns ctx.Err().
// A zero delay and jitter returns next unchanged.
func WithLatency(next Store, delay, jitter time.Duration) Store {
	if delay <= 0 && jitter <= 0 {
		return next
	}
	return &latencyStore{next: next, delay: delay, jitter: jitter}
}

func (s *latencyStore) wait(ctx context.Context) error {
	d := s.delay
	if s.jitter > 0 {
		d += rand.N(s.jitter)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *latencyStore) ListChamas(ctx context.Context) ([]*models.Chama, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.ListChamas(ctx)
}

func (s *latencyStore) GetChama(ctx context.Context, chamaID string) (*models.Chama, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.GetChama(ctx, chamaID)
}

func (s *latencyStore) CreateChama(ctx context.Context, chama *models.Chama) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.next.CreateChama(ctx, chama)
}

func (s *latencyStore) ListMembers(ctx context.Context, chamaID string) ([]*models.Member, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.ListMembers(ctx, chamaID)
}

func (s *latencyStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.GetMember(ctx, memberID)
}

func (s *latencyStore) CreateMember(ctx context.Context, member *models.Member) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.next.CreateMember(ctx, member)
}

func (s *latencyStore) ListContributions(ctx context.Context, chamaID string) ([]*models.Contribution, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.ListContributions(ctx, chamaID)
}

func (s *latencyStore) CreateContribution(ctx context.Context, contribution *models.Contribution) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.next.CreateContribution(ctx, contribution)
}

func (s *latencyStore) ListLoans(ctx context.Context, chamaID string) ([]*models.Loan, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.ListLoans(ctx, chamaID)
}

func (s *latencyStore) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.GetLoan(ctx, loanID)
}

func (s *latencyStore) CreateLoan(ctx context.Context, loan *models.Loan) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.next.CreateLoan(ctx, loan)
}

func (s *latencyStore) UpdateLoanStatus(ctx context.Context, loanID string, from, to models.LoanStatus, repaidAt *time.Time) (*models.Loan, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.UpdateLoanStatus(ctx, loanID, from, to, repaidAt)
}

// User lookups back authentication and are not delayed.

func (s *latencyStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.next.CreateUser(ctx, user)
}

func (s *latencyStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.next.GetUserByEmail(ctx, email)
}

func (s *latencyStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.next.GetUserByID(ctx, id)
}

func (s *latencyStore) Close() error {
	return s.next.Close()
}
