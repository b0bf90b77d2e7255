package loans

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
	"github.com/mmynk/chama/internal/storage/memory"
	"github.com/mmynk/chama/internal/storage/storagetest"
)

func setupWorkflow(t *testing.T) (*Workflow, storage.Store, *storagetest.Fixture) {
	t.Helper()
	store := memory.New()
	f := storagetest.Seed(t, store)
	return NewWorkflow(store), store, f
}

func TestDecide_Approve(t *testing.T) {
	w, store, f := setupWorkflow(t)
	ctx := context.Background()
	pending := f.Loans[0]

	loan, err := w.Approve(ctx, pending.ID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if loan.Status != models.LoanApproved {
		t.Errorf("status: expected Approved, got %s", loan.Status)
	}

	stored, _ := store.GetLoan(ctx, pending.ID)
	if stored.Status != models.LoanApproved {
		t.Errorf("persisted status: expected Approved, got %s", stored.Status)
	}
}

func TestDecide_Reject(t *testing.T) {
	w, _, f := setupWorkflow(t)

	loan, err := w.Decide(context.Background(), f.Loans[0].ID, Reject)
	if err != nil {
		t.Fatalf("Decide failed: %v", err)
	}
	if loan.Status != models.LoanRejected {
		t.Errorf("status: expected Rejected, got %s", loan.Status)
	}
}

func TestDecide_NotFound(t *testing.T) {
	w, store, _ := setupWorkflow(t)
	ctx := context.Background()
	before, _ := store.ListLoans(ctx, "")

	_, err := w.Approve(ctx, "nonexistent-id")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, _ := store.ListLoans(ctx, "")
	for i := range before {
		if before[i].Status != after[i].Status {
			t.Errorf("loan %s changed from %s to %s", before[i].ID, before[i].Status, after[i].Status)
		}
	}
}

func TestDecide_NonPendingIsRejected(t *testing.T) {
	w, store, f := setupWorkflow(t)
	ctx := context.Background()

	for _, loan := range f.Loans[1:] { // Approved and Rejected
		t.Run(string(loan.Status), func(t *testing.T) {
			_, err := w.Approve(ctx, loan.ID)
			if !errors.Is(err, models.ErrInvalidStateTransition) {
				t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
			}
			var transitionErr *InvalidTransitionError
			if !errors.As(err, &transitionErr) {
				t.Fatalf("expected *InvalidTransitionError, got %T", err)
			}
			if transitionErr.From != loan.Status {
				t.Errorf("From: expected %s, got %s", loan.Status, transitionErr.From)
			}

			stored, _ := store.GetLoan(ctx, loan.ID)
			if stored.Status != loan.Status {
				t.Errorf("status overwritten: %s -> %s", loan.Status, stored.Status)
			}
		})
	}
}

func TestDecide_UnknownDecision(t *testing.T) {
	w, _, f := setupWorkflow(t)
	if _, err := w.Decide(context.Background(), f.Loans[0].ID, Decision("maybe")); err == nil {
		t.Error("expected error for unknown decision")
	}
}

func TestBoard_RefreshesAfterDecision(t *testing.T) {
	w, _, f := setupWorkflow(t)
	ctx := context.Background()
	pending := f.Loans[0]

	board, err := w.Board(ctx, f.ChamaA.ID)
	if err != nil {
		t.Fatalf("Board failed: %v", err)
	}
	if len(board.Pending) != 1 || board.Pending[0].ID != pending.ID {
		t.Fatalf("expected pending loan %s on the board, got %d pending", pending.ID, len(board.Pending))
	}
	if len(board.Approved) != 0 {
		t.Errorf("expected no approved loans in chama A, got %d", len(board.Approved))
	}

	// Warm the all-chamas board too; it must be invalidated as well.
	if _, err := w.Board(ctx, ""); err != nil {
		t.Fatalf("Board failed: %v", err)
	}

	if _, err := w.Approve(ctx, pending.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	for _, scope := range []string{f.ChamaA.ID, ""} {
		board, err := w.Board(ctx, scope)
		if err != nil {
			t.Fatalf("Board failed: %v", err)
		}
		for _, l := range board.Pending {
			if l.ID == pending.ID {
				t.Errorf("scope %q: approved loan still listed as pending", scope)
			}
		}
		found := false
		for _, l := range board.List(models.LoanApproved) {
			if l.ID == pending.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("scope %q: approved loan missing from approved list", scope)
		}
	}
}

func TestBoard_ScopedAndSorted(t *testing.T) {
	w, store, f := setupWorkflow(t)
	ctx := context.Background()

	older := &models.Loan{MemberID: f.Members[0].ID, ChamaID: f.ChamaA.ID, Amount: 50, RequestDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := store.CreateLoan(ctx, older); err != nil {
		t.Fatalf("CreateLoan failed: %v", err)
	}

	board, err := w.Board(ctx, f.ChamaA.ID)
	if err != nil {
		t.Fatalf("Board failed: %v", err)
	}
	if len(board.Pending) != 2 {
		t.Fatalf("expected 2 pending loans, got %d", len(board.Pending))
	}
	if board.Pending[0].ID != f.Loans[0].ID {
		t.Errorf("expected newest request first")
	}
	for _, list := range [][]*models.Loan{board.Pending, board.Approved, board.Rejected, board.Repaid} {
		for _, l := range list {
			if l.ChamaID != f.ChamaA.ID {
				t.Errorf("loan %s from chama %s on chama A board", l.ID, l.ChamaID)
			}
		}
	}
}

func TestBoard_UnknownChama(t *testing.T) {
	w, _, _ := setupWorkflow(t)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		_, err := w.Board(ctx, fmt.Sprintf("missing-%d", i))
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	}
	w.mu.Lock()
	cached := len(w.boards)
	w.mu.Unlock()
	if cached != 0 {
		t.Errorf("expected no cached boards for unknown chamas, got %d", cached)
	}
}

func TestMarkRepaid(t *testing.T) {
	w, _, f := setupWorkflow(t)
	ctx := context.Background()
	repaidAt := time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)

	loan, err := w.MarkRepaid(ctx, f.Loans[1].ID, repaidAt)
	if err != nil {
		t.Fatalf("MarkRepaid failed: %v", err)
	}
	if loan.Status != models.LoanRepaid {
		t.Errorf("status: expected Repaid, got %s", loan.Status)
	}
	if loan.RepaymentDate == nil || !loan.RepaymentDate.Equal(repaidAt) {
		t.Errorf("repayment date: expected %v, got %v", repaidAt, loan.RepaymentDate)
	}

	// Pending loans must be approved before they can be repaid.
	if _, err := w.MarkRepaid(ctx, f.Loans[0].ID, repaidAt); !errors.Is(err, models.ErrInvalidStateTransition) {
		t.Errorf("expected ErrInvalidStateTransition for pending loan, got %v", err)
	}
}

func TestRequestLoan(t *testing.T) {
	w, _, f := setupWorkflow(t)
	ctx := context.Background()
	member := f.Members[2]

	loan, err := w.RequestLoan(ctx, member.ID, 750)
	if err != nil {
		t.Fatalf("RequestLoan failed: %v", err)
	}
	if loan.Status != models.LoanPending || loan.ChamaID != member.ChamaID {
		t.Errorf("unexpected loan: %+v", loan)
	}

	board, _ := w.Board(ctx, member.ChamaID)
	if len(board.Pending) != 1 || board.Pending[0].ID != loan.ID {
		t.Errorf("expected new loan on the pending board")
	}

	if _, err := w.RequestLoan(ctx, member.ID, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := w.RequestLoan(ctx, "nonexistent-id", 10); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubscribe(t *testing.T) {
	w, _, f := setupWorkflow(t)

	var got []models.Loan
	w.Subscribe(func(l models.Loan) { got = append(got, l) })

	if _, err := w.Reject(context.Background(), f.Loans[0].ID); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if len(got) != 1 || got[0].Status != models.LoanRejected {
		t.Errorf("expected one Rejected notification, got %+v", got)
	}
}

func TestPage(t *testing.T) {
	loans := make([]*models.Loan, 25)
	for i := range loans {
		loans[i] = &models.Loan{}
	}
	p := Page(loans, 3)
	if len(p.Items) != 5 || p.TotalPages != 3 {
		t.Errorf("page 3: got %d items of %d pages", len(p.Items), p.TotalPages)
	}
}
