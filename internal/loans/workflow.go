// Package loans implements the loan approval workflow: the status state
// machine, per-chama loan boards and decision notifications.
package loans

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mmynk/chama/internal/calculator"
	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
)

// PageSize is the number of loans per board page.
const PageSize = 10

// ErrInvalidAmount is returned when a loan request is not positive.
var ErrInvalidAmount = errors.New("loan amount must be positive")

// Decision is a manual verdict on a pending loan.
type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

// ParseDecision converts a wire string into a Decision.
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case Approve, Reject:
		return d, nil
	}
	return "", fmt.Errorf("unknown decision: %q", s)
}

func (d Decision) target() models.LoanStatus {
	if d == Approve {
		return models.LoanApproved
	}
	return models.LoanRejected
}

// InvalidTransitionError reports an attempt to move a loan along an edge the
// state machine does not have. It matches models.ErrInvalidStateTransition
// with errors.Is.
type InvalidTransitionError struct {
	LoanID string
	From   models.LoanStatus
	To     models.LoanStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("loan %s cannot move from %s to %s", e.LoanID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return models.ErrInvalidStateTransition
}

// Board groups a chama's loans by status. Each list is sorted by request
// date, newest first.
type Board struct {
	Pending  []*models.Loan
	Approved []*models.Loan
	Rejected []*models.Loan
	Repaid   []*models.Loan
}

// List returns the board column for a status.
func (b *Board) List(status models.LoanStatus) []*models.Loan {
	switch status {
	case models.LoanPending:
		return b.Pending
	case models.LoanApproved:
		return b.Approved
	case models.LoanRejected:
		return b.Rejected
	case models.LoanRepaid:
		return b.Repaid
	}
	return nil
}

// Listener is notified after every persisted status change.
type Listener func(loan models.Loan)

// Workflow drives loan status changes and keeps derived boards fresh.
type Workflow struct {
	store storage.Store
	now   func() time.Time

	mu        sync.Mutex
	boards    map[string]*Board // keyed by chama ID, "" = all chamas
	version   uint64            // bumped on every invalidation
	listeners []Listener
}

// NewWorkflow creates a Workflow over the given store.
func NewWorkflow(store storage.Store) *Workflow {
	return &Workflow{
		store:  store,
		now:    func() time.Time { return time.Now().UTC() },
		boards: make(map[string]*Board),
	}
}

// Subscribe registers a listener for decisions and repayments.
func (w *Workflow) Subscribe(l Listener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, l)
}

// Decide applies a decision to a pending loan.
// It returns storage.ErrNotFound for unknown loans and an
// *InvalidTransitionError when the loan is no longer pending.
func (w *Workflow) Decide(ctx context.Context, loanID string, decision Decision) (*models.Loan, error) {
	if _, err := ParseDecision(string(decision)); err != nil {
		return nil, err
	}
	return w.transition(ctx, loanID, decision.target(), nil)
}

// Approve moves a pending loan to Approved.
func (w *Workflow) Approve(ctx context.Context, loanID string) (*models.Loan, error) {
	return w.Decide(ctx, loanID, Approve)
}

// Reject moves a pending loan to Rejected.
func (w *Workflow) Reject(ctx context.Context, loanID string) (*models.Loan, error) {
	return w.Decide(ctx, loanID, Reject)
}

// MarkRepaid moves an approved loan to Repaid and records the repayment date.
// A zero at means now.
func (w *Workflow) MarkRepaid(ctx context.Context, loanID string, at time.Time) (*models.Loan, error) {
	if at.IsZero() {
		at = w.now()
	}
	return w.transition(ctx, loanID, models.LoanRepaid, &at)
}

func (w *Workflow) transition(ctx context.Context, loanID string, to models.LoanStatus, repaidAt *time.Time) (*models.Loan, error) {
	loan, err := w.store.GetLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if !loan.Status.CanTransitionTo(to) {
		return nil, &InvalidTransitionError{LoanID: loanID, From: loan.Status, To: to}
	}

	updated, err := w.store.UpdateLoanStatus(ctx, loanID, loan.Status, to, repaidAt)
	if errors.Is(err, storage.ErrStatusConflict) {
		// Someone else decided first; report it against the status they set.
		current, getErr := w.store.GetLoan(ctx, loanID)
		if getErr != nil {
			return nil, err
		}
		return nil, &InvalidTransitionError{LoanID: loanID, From: current.Status, To: to}
	}
	if err != nil {
		return nil, err
	}

	slog.Info("Loan status changed",
		"loan_id", loanID,
		"chama_id", updated.ChamaID,
		"from", loan.Status,
		"to", updated.Status,
	)

	w.invalidate(updated.ChamaID)
	w.notify(*updated)
	return updated, nil
}

// RequestLoan creates a pending loan for a member in the member's chama.
func (w *Workflow) RequestLoan(ctx context.Context, memberID string, amount float64) (*models.Loan, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	member, err := w.store.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	loan := &models.Loan{
		MemberID:    member.ID,
		ChamaID:     member.ChamaID,
		Amount:      amount,
		RequestDate: w.now(),
		Status:      models.LoanPending,
	}
	if err := w.store.CreateLoan(ctx, loan); err != nil {
		return nil, err
	}

	slog.Info("Loan requested", "loan_id", loan.ID, "member_id", memberID, "amount", amount)
	w.invalidate(loan.ChamaID)
	return loan, nil
}

// Board returns the loans of a chama grouped by status, or of every chama
// when chamaID is empty. Boards are cached until the next status change.
// Unknown chamas yield storage.ErrNotFound and are never cached.
func (w *Workflow) Board(ctx context.Context, chamaID string) (*Board, error) {
	w.mu.Lock()
	if b, ok := w.boards[chamaID]; ok {
		w.mu.Unlock()
		return b, nil
	}
	version := w.version
	w.mu.Unlock()

	if chamaID != "" {
		if _, err := w.store.GetChama(ctx, chamaID); err != nil {
			return nil, err
		}
	}

	loans, err := w.store.ListLoans(ctx, chamaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	b := buildBoard(loans)

	// A board built across an invalidation may already be stale; serve it
	// once but do not cache it.
	w.mu.Lock()
	if w.version == version {
		w.boards[chamaID] = b
	}
	w.mu.Unlock()
	return b, nil
}

// Page returns one page of a board column.
func Page(loans []*models.Loan, page int) calculator.Page[*models.Loan] {
	return calculator.Paginate(loans, page, PageSize)
}

func buildBoard(loans []*models.Loan) *Board {
	sorted := make([]*models.Loan, len(loans))
	copy(sorted, loans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RequestDate.After(sorted[j].RequestDate)
	})

	b := &Board{}
	for _, l := range sorted {
		switch l.Status {
		case models.LoanPending:
			b.Pending = append(b.Pending, l)
		case models.LoanApproved:
			b.Approved = append(b.Approved, l)
		case models.LoanRejected:
			b.Rejected = append(b.Rejected, l)
		case models.LoanRepaid:
			b.Repaid = append(b.Repaid, l)
		}
	}
	return b
}

// invalidate drops the chama's board and the all-chamas board.
func (w *Workflow) invalidate(chamaID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.version++
	delete(w.boards, chamaID)
	delete(w.boards, "")
}

func (w *Workflow) notify(loan models.Loan) {
	w.mu.Lock()
	listeners := make([]Listener, len(w.listeners))
	copy(listeners, w.listeners)
	w.mu.Unlock()

	for _, l := range listeners {
		l(loan)
	}
}
