package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
	"github.com/mmynk/chama/internal/storage/storagetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storagetest.RunStoreTests(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestSQLiteStore_ForeignKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.CreateMember(ctx, &models.Member{
		Name:    "Orphan",
		Email:   "orphan@example.com",
		ChamaID: "nonexistent-chama",
	})
	if err == nil {
		t.Error("expected foreign key violation for unknown chama")
	}
}

func TestSQLiteStore_RejectsNonPositiveAmounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	f := storagetest.Seed(t, store)

	err := store.CreateContribution(ctx, &models.Contribution{
		MemberID: f.Members[0].ID,
		ChamaID:  f.ChamaA.ID,
		Amount:   0,
	})
	if err == nil {
		t.Error("expected CHECK constraint to reject a zero contribution")
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	chama := &models.Chama{Name: "Persisted"}
	if err := store.CreateChama(ctx, chama); err != nil {
		t.Fatalf("CreateChama failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetChama(ctx, chama.ID)
	if err != nil {
		t.Fatalf("GetChama after reopen failed: %v", err)
	}
	if got.Name != "Persisted" {
		t.Errorf("name: expected 'Persisted', got '%s'", got.Name)
	}
}
