// Package memory provides an in-memory implementation of the storage.Store interface.
// It backs tests and the demo mode of the server.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore keeps every collection in insertion-ordered slices guarded by
// a single RWMutex. Records are copied on the way in and out so callers can
// never mutate stored state directly.
type MemoryStore struct {
	mu            sync.RWMutex
	chamas        []models.Chama
	members       []models.Member
	contributions []models.Contribution
	loans         []models.Loan
	users         []models.User
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{}
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// ListChamas returns all chamas in insertion order.
func (s *MemoryStore) ListChamas(ctx context.Context) ([]*models.Chama, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chamas := make([]*models.Chama, 0, len(s.chamas))
	for i := range s.chamas {
		c := s.chamas[i]
		chamas = append(chamas, &c)
	}
	return chamas, nil
}

// GetChama retrieves a chama by ID.
func (s *MemoryStore) GetChama(ctx context.Context, chamaID string) (*models.Chama, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.chamas {
		if s.chamas[i].ID == chamaID {
			c := s.chamas[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("chama %s: %w", chamaID, storage.ErrNotFound)
}

// CreateChama appends a chama, generating its ID and creation day if unset.
func (s *MemoryStore) CreateChama(ctx context.Context, chama *models.Chama) error {
	if chama.ID == "" {
		chama.ID = uuid.New().String()
	}
	if chama.CreatedAt.IsZero() {
		chama.CreatedAt = today()
	}
	chama.CreatedAt = storage.Truncate(chama.CreatedAt)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chamas {
		if s.chamas[i].ID == chama.ID {
			return fmt.Errorf("chama %s already exists", chama.ID)
		}
	}
	s.chamas = append(s.chamas, *chama)
	return nil
}

// ListMembers returns members of a chama, or all members when chamaID is empty.
func (s *MemoryStore) ListMembers(ctx context.Context, chamaID string) ([]*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var members []*models.Member
	for i := range s.members {
		if chamaID == "" || s.members[i].ChamaID == chamaID {
			m := s.members[i]
			members = append(members, &m)
		}
	}
	return members, nil
}

// GetMember retrieves a member by ID.
func (s *MemoryStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.members {
		if s.members[i].ID == memberID {
			m := s.members[i]
			return &m, nil
		}
	}
	return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
}

// CreateMember appends a member.
func (s *MemoryStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = today()
	}
	member.JoinedAt = storage.Truncate(member.JoinedAt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, *member)
	return nil
}

// ListContributions returns contributions of a chama, or all of them when
// chamaID is empty.
func (s *MemoryStore) ListContributions(ctx context.Context, chamaID string) ([]*models.Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var contributions []*models.Contribution
	for i := range s.contributions {
		if chamaID == "" || s.contributions[i].ChamaID == chamaID {
			c := s.contributions[i]
			contributions = append(contributions, &c)
		}
	}
	return contributions, nil
}

// CreateContribution appends a contribution.
func (s *MemoryStore) CreateContribution(ctx context.Context, contribution *models.Contribution) error {
	if contribution.ID == "" {
		contribution.ID = uuid.New().String()
	}
	if contribution.Date.IsZero() {
		contribution.Date = time.Now()
	}
	contribution.Date = storage.Truncate(contribution.Date)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contributions = append(s.contributions, *contribution)
	return nil
}

// ListLoans returns loans of a chama, or all loans when chamaID is empty.
func (s *MemoryStore) ListLoans(ctx context.Context, chamaID string) ([]*models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var loans []*models.Loan
	for i := range s.loans {
		if chamaID == "" || s.loans[i].ChamaID == chamaID {
			loans = append(loans, cloneLoan(&s.loans[i]))
		}
	}
	return loans, nil
}

// GetLoan retrieves a loan by ID.
func (s *MemoryStore) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.loanIndex(loanID); i >= 0 {
		return cloneLoan(&s.loans[i]), nil
	}
	return nil, fmt.Errorf("loan %s: %w", loanID, storage.ErrNotFound)
}

// CreateLoan appends a loan. New loans default to LoanPending.
func (s *MemoryStore) CreateLoan(ctx context.Context, loan *models.Loan) error {
	if loan.ID == "" {
		loan.ID = uuid.New().String()
	}
	if loan.RequestDate.IsZero() {
		loan.RequestDate = today()
	}
	if loan.Status == "" {
		loan.Status = models.LoanPending
	}
	loan.RequestDate = storage.Truncate(loan.RequestDate)
	if loan.RepaymentDate != nil {
		t := storage.Truncate(*loan.RepaymentDate)
		loan.RepaymentDate = &t
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loans = append(s.loans, *cloneLoan(loan))
	return nil
}

// UpdateLoanStatus moves a loan from one status to another under the write lock.
func (s *MemoryStore) UpdateLoanStatus(ctx context.Context, loanID string, from, to models.LoanStatus, repaidAt *time.Time) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.loanIndex(loanID)
	if i < 0 {
		return nil, fmt.Errorf("loan %s: %w", loanID, storage.ErrNotFound)
	}
	loan := &s.loans[i]
	if loan.Status != from {
		return nil, fmt.Errorf("loan %s is %s, expected %s: %w", loanID, loan.Status, from, storage.ErrStatusConflict)
	}

	loan.Status = to
	if repaidAt != nil {
		t := storage.Truncate(*repaidAt)
		loan.RepaymentDate = &t
	}
	return cloneLoan(loan), nil
}

func (s *MemoryStore) loanIndex(loanID string) int {
	for i := range s.loans {
		if s.loans[i].ID == loanID {
			return i
		}
	}
	return -1
}

func cloneLoan(l *models.Loan) *models.Loan {
	c := *l
	if l.RepaymentDate != nil {
		t := *l.RepaymentDate
		c.RepaymentDate = &t
	}
	return &c
}

// CreateUser inserts a new user. Emails are unique, case-insensitively.
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, user.Email) {
			return fmt.Errorf("failed to create user: email %s already registered", user.Email)
		}
	}
	s.users = append(s.users, *user)
	return nil
}

// GetUserByEmail retrieves a user by email address.
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil // User not found
}

// GetUserByID retrieves a user by ID.
func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil // User not found
}
