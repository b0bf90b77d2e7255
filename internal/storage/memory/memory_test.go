package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
	"github.com/mmynk/chama/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	storagetest.RunStoreTests(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := New()
	f := storagetest.Seed(t, store)

	loan, err := store.GetLoan(ctx, f.Loans[0].ID)
	if err != nil {
		t.Fatalf("GetLoan failed: %v", err)
	}
	loan.Status = models.LoanRepaid

	stored, _ := store.GetLoan(ctx, f.Loans[0].ID)
	if stored.Status != models.LoanPending {
		t.Errorf("mutating a returned loan changed the store: %s", stored.Status)
	}
}

func TestMemoryStore_ConcurrentDecisions(t *testing.T) {
	ctx := context.Background()
	store := New()
	f := storagetest.Seed(t, store)
	pending := f.Loans[0]

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			to := models.LoanApproved
			if i%2 == 1 {
				to = models.LoanRejected
			}
			_, err := store.UpdateLoanStatus(ctx, pending.ID, models.LoanPending, to, nil)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	if succeeded != 1 {
		t.Errorf("expected exactly one decision to win, got %d", succeeded)
	}
}
