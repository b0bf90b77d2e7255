// Package storagetest holds a conformance suite that every storage.Store
// implementation must pass.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
)

// Fixture is a small two-chama data set created by Seed.
type Fixture struct {
	ChamaA, ChamaB *models.Chama
	Members        []*models.Member
	Contributions  []*models.Contribution
	Loans          []*models.Loan
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed inserts two chamas, three members, four contributions and three loans.
func Seed(t *testing.T, store storage.Store) *Fixture {
	t.Helper()
	ctx := context.Background()
	f := &Fixture{
		ChamaA: &models.Chama{Name: "Uhuru Savings", CreatedAt: day(2023, time.January, 15)},
		ChamaB: &models.Chama{Name: "Maendeleo Women Group", CreatedAt: day(2023, time.March, 20)},
	}
	for _, c := range []*models.Chama{f.ChamaA, f.ChamaB} {
		if err := store.CreateChama(ctx, c); err != nil {
			t.Fatalf("CreateChama failed: %v", err)
		}
	}

	f.Members = []*models.Member{
		{Name: "Alice Wanjiru", Email: "alice@example.com", ChamaID: f.ChamaA.ID, JoinedAt: day(2023, time.January, 15), AvatarSeed: 1},
		{Name: "Bob Otieno", Email: "bob@example.com", ChamaID: f.ChamaA.ID, JoinedAt: day(2023, time.January, 20), AvatarSeed: 2},
		{Name: "Diana Achieng", Email: "diana@example.com", ChamaID: f.ChamaB.ID, JoinedAt: day(2023, time.March, 20), AvatarSeed: 4},
	}
	for _, m := range f.Members {
		if err := store.CreateMember(ctx, m); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}
	}

	alice, bob, diana := f.Members[0], f.Members[1], f.Members[2]
	f.Contributions = []*models.Contribution{
		{MemberID: alice.ID, ChamaID: f.ChamaA.ID, Amount: 100, Date: time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)},
		{MemberID: bob.ID, ChamaID: f.ChamaA.ID, Amount: 150, Date: time.Date(2024, time.May, 1, 10, 5, 0, 0, time.UTC)},
		{MemberID: alice.ID, ChamaID: f.ChamaA.ID, Amount: 100, Date: time.Date(2024, time.May, 8, 10, 0, 0, 0, time.UTC)},
		{MemberID: diana.ID, ChamaID: f.ChamaB.ID, Amount: 200, Date: time.Date(2024, time.May, 5, 14, 0, 0, 0, time.UTC)},
	}
	for _, c := range f.Contributions {
		if err := store.CreateContribution(ctx, c); err != nil {
			t.Fatalf("CreateContribution failed: %v", err)
		}
	}

	f.Loans = []*models.Loan{
		{MemberID: bob.ID, ChamaID: f.ChamaA.ID, Amount: 500, RequestDate: day(2024, time.May, 16), Status: models.LoanPending},
		{MemberID: diana.ID, ChamaID: f.ChamaB.ID, Amount: 1000, RequestDate: day(2024, time.May, 13), Status: models.LoanApproved},
		{MemberID: alice.ID, ChamaID: f.ChamaA.ID, Amount: 300, RequestDate: day(2024, time.May, 18), Status: models.LoanRejected},
	}
	for _, l := range f.Loans {
		if err := store.CreateLoan(ctx, l); err != nil {
			t.Fatalf("CreateLoan failed: %v", err)
		}
	}
	return f
}

// RunStoreTests runs the conformance suite. newStore must return an empty store.
func RunStoreTests(t *testing.T, newStore func(t *testing.T) storage.Store) {
	ctx := context.Background()

	t.Run("CreateChama generates unique IDs", func(t *testing.T) {
		store := newStore(t)
		a := &models.Chama{Name: "Future Investors"}
		b := &models.Chama{Name: "Future Investors"}
		if err := store.CreateChama(ctx, a); err != nil {
			t.Fatalf("CreateChama failed: %v", err)
		}
		if err := store.CreateChama(ctx, b); err != nil {
			t.Fatalf("CreateChama failed: %v", err)
		}
		if a.ID == "" || b.ID == "" {
			t.Fatal("expected chama IDs to be generated")
		}
		if a.ID == b.ID {
			t.Errorf("expected unique IDs, both are %s", a.ID)
		}
		if a.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be set")
		}

		chamas, err := store.ListChamas(ctx)
		if err != nil {
			t.Fatalf("ListChamas failed: %v", err)
		}
		if len(chamas) != 2 {
			t.Fatalf("expected 2 chamas, got %d", len(chamas))
		}
		if chamas[0].ID != a.ID || chamas[1].ID != b.ID {
			t.Errorf("expected insertion order [%s %s], got [%s %s]", a.ID, b.ID, chamas[0].ID, chamas[1].ID)
		}
	})

	t.Run("GetChama", func(t *testing.T) {
		store := newStore(t)
		f := Seed(t, store)

		got, err := store.GetChama(ctx, f.ChamaB.ID)
		if err != nil {
			t.Fatalf("GetChama failed: %v", err)
		}
		if diff := cmp.Diff(f.ChamaB, got); diff != "" {
			t.Errorf("GetChama mismatch (-want +got):\n%s", diff)
		}

		_, err = store.GetChama(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("scoped lists only return the chama's records", func(t *testing.T) {
		store := newStore(t)
		f := Seed(t, store)

		for _, chama := range []*models.Chama{f.ChamaA, f.ChamaB} {
			members, err := store.ListMembers(ctx, chama.ID)
			if err != nil {
				t.Fatalf("ListMembers failed: %v", err)
			}
			for _, m := range members {
				if m.ChamaID != chama.ID {
					t.Errorf("member %s belongs to %s, listed under %s", m.ID, m.ChamaID, chama.ID)
				}
			}

			contributions, err := store.ListContributions(ctx, chama.ID)
			if err != nil {
				t.Fatalf("ListContributions failed: %v", err)
			}
			for _, c := range contributions {
				if c.ChamaID != chama.ID {
					t.Errorf("contribution %s belongs to %s, listed under %s", c.ID, c.ChamaID, chama.ID)
				}
			}

			loans, err := store.ListLoans(ctx, chama.ID)
			if err != nil {
				t.Fatalf("ListLoans failed: %v", err)
			}
			for _, l := range loans {
				if l.ChamaID != chama.ID {
					t.Errorf("loan %s belongs to %s, listed under %s", l.ID, l.ChamaID, chama.ID)
				}
			}
		}

		members, _ := store.ListMembers(ctx, f.ChamaA.ID)
		if len(members) != 2 {
			t.Errorf("expected 2 members in chama A, got %d", len(members))
		}
		contributions, _ := store.ListContributions(ctx, f.ChamaA.ID)
		if len(contributions) != 3 {
			t.Errorf("expected 3 contributions in chama A, got %d", len(contributions))
		}
	})

	t.Run("empty chama ID returns everything", func(t *testing.T) {
		store := newStore(t)
		f := Seed(t, store)

		members, _ := store.ListMembers(ctx, "")
		contributions, _ := store.ListContributions(ctx, "")
		loans, _ := store.ListLoans(ctx, "")
		if len(members) != len(f.Members) {
			t.Errorf("members: expected %d, got %d", len(f.Members), len(members))
		}
		if len(contributions) != len(f.Contributions) {
			t.Errorf("contributions: expected %d, got %d", len(f.Contributions), len(contributions))
		}
		if diff := cmp.Diff(f.Loans, loans); diff != "" {
			t.Errorf("loans mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("GetMember and GetLoan", func(t *testing.T) {
		store := newStore(t)
		f := Seed(t, store)

		member, err := store.GetMember(ctx, f.Members[1].ID)
		if err != nil {
			t.Fatalf("GetMember failed: %v", err)
		}
		if member.Name != "Bob Otieno" {
			t.Errorf("name: expected 'Bob Otieno', got '%s'", member.Name)
		}
		if _, err := store.GetMember(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		loan, err := store.GetLoan(ctx, f.Loans[0].ID)
		if err != nil {
			t.Fatalf("GetLoan failed: %v", err)
		}
		if loan.Status != models.LoanPending {
			t.Errorf("status: expected Pending, got %s", loan.Status)
		}
		if _, err := store.GetLoan(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateLoanStatus approves a pending loan", func(t *testing.T) {
		store := newStore(t)
		f := Seed(t, store)
		pending := f.Loans[0]

		updated, err := store.UpdateLoanStatus(ctx, pending.ID, models.LoanPending, models.LoanApproved, nil)
		if err != nil {
			t.Fatalf("UpdateLoanStatus failed: %v", err)
		}
		if updated.Status != models.LoanApproved {
			t.Errorf("status: expected Approved, got %s", updated.Status)
		}

		loans, _ := store.ListLoans(ctx, "")
		for _, l := range loans {
			if l.ID == pending.ID && l.Status != models.LoanApproved {
				t.Errorf("persisted status: expected Approved, got %s", l.Status)
			}
		}
	})

	t.Run("UpdateLoanStatus on missing loan has no side effect", func(t *testing.T) {
		store := newStore(t)
		Seed(t, store)
		before, _ := store.ListLoans(ctx, "")

		_, err := store.UpdateLoanStatus(ctx, "nonexistent-id", models.LoanPending, models.LoanApproved, nil)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}

		after, _ := store.ListLoans(ctx, "")
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("store changed (-before +after):\n%s", diff)
		}
	})

	t.Run("UpdateLoanStatus with stale status conflicts", func(t *testing.T) {
		store := newStore(t)
		f := Seed(t, store)
		rejected := f.Loans[2]

		_, err := store.UpdateLoanStatus(ctx, rejected.ID, models.LoanPending, models.LoanApproved, nil)
		if !errors.Is(err, storage.ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
		loan, _ := store.GetLoan(ctx, rejected.ID)
		if loan.Status != models.LoanRejected {
			t.Errorf("status changed to %s", loan.Status)
		}
	})

	t.Run("UpdateLoanStatus records repayment date", func(t *testing.T) {
		store := newStore(t)
		f := Seed(t, store)
		approved := f.Loans[1]
		repaidAt := day(2024, time.June, 11)

		updated, err := store.UpdateLoanStatus(ctx, approved.ID, models.LoanApproved, models.LoanRepaid, &repaidAt)
		if err != nil {
			t.Fatalf("UpdateLoanStatus failed: %v", err)
		}
		if updated.RepaymentDate == nil || !updated.RepaymentDate.Equal(repaidAt) {
			t.Errorf("repayment date: expected %v, got %v", repaidAt, updated.RepaymentDate)
		}
	})

	t.Run("timestamps read back as written", func(t *testing.T) {
		store := newStore(t)
		f := Seed(t, store)
		nairobi := time.FixedZone("EAT", 3*60*60)
		at := time.Date(2024, time.June, 3, 9, 15, 42, 987654321, nairobi)

		c := &models.Contribution{MemberID: f.Members[0].ID, ChamaID: f.ChamaA.ID, Amount: 75, Date: at}
		if err := store.CreateContribution(ctx, c); err != nil {
			t.Fatalf("CreateContribution failed: %v", err)
		}
		l := &models.Loan{MemberID: f.Members[0].ID, ChamaID: f.ChamaA.ID, Amount: 300, RequestDate: at}
		if err := store.CreateLoan(ctx, l); err != nil {
			t.Fatalf("CreateLoan failed: %v", err)
		}

		want := storage.Truncate(at)
		if !c.Date.Equal(want) || !l.RequestDate.Equal(want) {
			t.Errorf("expected created records at %v, got %v and %v", want, c.Date, l.RequestDate)
		}

		contributions, _ := store.ListContributions(ctx, f.ChamaA.ID)
		found := false
		for _, got := range contributions {
			if got.ID == c.ID {
				found = true
				if diff := cmp.Diff(c, got); diff != "" {
					t.Errorf("contribution mismatch (-created +stored):\n%s", diff)
				}
			}
		}
		if !found {
			t.Fatalf("contribution %s not listed", c.ID)
		}

		stored, err := store.GetLoan(ctx, l.ID)
		if err != nil {
			t.Fatalf("GetLoan failed: %v", err)
		}
		if diff := cmp.Diff(l, stored); diff != "" {
			t.Errorf("loan mismatch (-created +stored):\n%s", diff)
		}
	})

	t.Run("users", func(t *testing.T) {
		store := newStore(t)
		user := models.NewUser("Alex.Doe@example.com", "Alex Doe", "hash", models.RoleAdmin)
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		byEmail, err := store.GetUserByEmail(ctx, "alex.doe@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if byEmail == nil || byEmail.ID != user.ID {
			t.Fatalf("expected user %s, got %+v", user.ID, byEmail)
		}
		if byEmail.Role != models.RoleAdmin {
			t.Errorf("role: expected Admin, got %s", byEmail.Role)
		}

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil || byID == nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}

		missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil || missing != nil {
			t.Errorf("expected nil user and nil error, got %+v, %v", missing, err)
		}

		if err := store.CreateUser(ctx, models.NewUser("alex.doe@example.com", "Dup", "hash", "")); err == nil {
			t.Error("expected duplicate email to fail")
		}
	})
}
