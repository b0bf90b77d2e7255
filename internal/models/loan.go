package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidStateTransition is returned when a loan is moved between two
// statuses that the workflow does not connect.
var ErrInvalidStateTransition = errors.New("invalid loan state transition")

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanPending  LoanStatus = "Pending"
	LoanApproved LoanStatus = "Approved"
	LoanRejected LoanStatus = "Rejected"
	LoanRepaid   LoanStatus = "Repaid"
)

// loanTransitions lists, for each status, the statuses it may move to.
// Rejected and Repaid are terminal.
var loanTransitions = map[LoanStatus][]LoanStatus{
	LoanPending:  {LoanApproved, LoanRejected},
	LoanApproved: {LoanRepaid},
}

// ParseLoanStatus converts a wire string into a LoanStatus.
func ParseLoanStatus(s string) (LoanStatus, error) {
	switch st := LoanStatus(s); st {
	case LoanPending, LoanApproved, LoanRejected, LoanRepaid:
		return st, nil
	}
	return "", fmt.Errorf("unknown loan status: %q", s)
}

// CanTransitionTo reports whether a loan in status s may move to next.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	for _, allowed := range loanTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s LoanStatus) Terminal() bool {
	return len(loanTransitions[s]) == 0
}

// Loan represents a member's request to borrow from the chama pool.
type Loan struct {
	// ID is the unique identifier for the loan (UUID format).
	ID string

	// MemberID is the borrowing member.
	MemberID string

	// ChamaID is the chama whose pool the loan is drawn from.
	ChamaID string

	// Amount is the requested principal.
	Amount float64

	// RequestDate is when the member asked for the loan.
	RequestDate time.Time

	// Status is the current lifecycle state. New loans start as LoanPending.
	Status LoanStatus

	// RepaymentDate is set only once the loan reaches LoanRepaid.
	RepaymentDate *time.Time
}
