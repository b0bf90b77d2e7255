// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/chama/internal/models"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStatusConflict is returned by UpdateLoanStatus when the stored status
	// no longer matches the expected one.
	ErrStatusConflict = errors.New("loan status changed concurrently")
)

// Precision is the resolution at which stores keep timestamps.
const Precision = time.Second

// Truncate returns t in UTC, truncated to Precision. Stores apply it to every
// timestamp they persist, so a record reads back exactly as it was written.
func Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(Precision)
}

// ChamaRepository stores savings groups.
type ChamaRepository interface {
	// ListChamas returns all chamas in insertion order.
	ListChamas(ctx context.Context) ([]*models.Chama, error)

	// GetChama retrieves a chama by ID. Returns ErrNotFound if absent.
	GetChama(ctx context.Context, chamaID string) (*models.Chama, error)

	// CreateChama persists a new chama.
	// The chama.ID and chama.CreatedAt fields are populated by the store when empty.
	CreateChama(ctx context.Context, chama *models.Chama) error
}

// MemberRepository stores chama members.
type MemberRepository interface {
	// ListMembers returns the members of a chama, or every member when
	// chamaID is empty.
	ListMembers(ctx context.Context, chamaID string) ([]*models.Member, error)

	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	CreateMember(ctx context.Context, member *models.Member) error
}

// ContributionRepository stores contributions.
type ContributionRepository interface {
	// ListContributions returns the contributions of a chama, or every
	// contribution when chamaID is empty.
	ListContributions(ctx context.Context, chamaID string) ([]*models.Contribution, error)

	CreateContribution(ctx context.Context, contribution *models.Contribution) error
}

// LoanRepository stores loans.
type LoanRepository interface {
	// ListLoans returns the loans of a chama, or every loan when chamaID is empty.
	ListLoans(ctx context.Context, chamaID string) ([]*models.Loan, error)

	GetLoan(ctx context.Context, loanID string) (*models.Loan, error)
	CreateLoan(ctx context.Context, loan *models.Loan) error

	// UpdateLoanStatus moves a loan from status `from` to status `to`.
	// repaidAt is stored as the repayment date when non-nil.
	// Returns ErrNotFound if the loan does not exist and ErrStatusConflict if
	// its current status is not `from`; the store is unchanged in both cases.
	UpdateLoanStatus(ctx context.Context, loanID string, from, to models.LoanStatus, repaidAt *time.Time) (*models.Loan, error)
}

// UserRepository stores dashboard accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store combines every repository.
// This abstraction allows swapping storage backends (in-memory, SQLite)
// without changing the service layer.
type Store interface {
	ChamaRepository
	MemberRepository
	ContributionRepository
	LoanRepository
	UserRepository

	// Close releases any resources held by the store.
	Close() error
}
