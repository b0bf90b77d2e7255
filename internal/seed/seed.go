// Package seed loads the demo data set: three chamas with their members,
// contributions and loans, plus an admin account.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
)

// Demo admin credentials.
const (
	AdminEmail    = "alex.doe@example.com"
	AdminName     = "Alex Doe"
	AdminPassword = "chama-demo-2024"
)

type memberRow struct {
	name, email, chama, joined string
	seed                       int
}

type contributionRow struct {
	member string
	amount float64
	date   string
}

type loanRow struct {
	member    string
	amount    float64
	requested string
	status    models.LoanStatus
	repaid    string
}

var (
	chamaRows = []struct{ name, created string }{
		{"Uhuru Savings", "2023-01-15"},
		{"Maendeleo Women Group", "2023-03-20"},
		{"Future Investors", "2023-05-10"},
	}

	memberRows = []memberRow{
		{"Alice Wanjiru", "alice@example.com", "Uhuru Savings", "2023-01-15", 1},
		{"Bob Otieno", "bob@example.com", "Uhuru Savings", "2023-01-20", 2},
		{"Charlie Kamau", "charlie@example.com", "Uhuru Savings", "2023-02-01", 3},
		{"Diana Achieng", "diana@example.com", "Maendeleo Women Group", "2023-03-20", 4},
		{"Eve Njeri", "eve@example.com", "Maendeleo Women Group", "2023-03-25", 5},
		{"Frank Musyoka", "frank@example.com", "Future Investors", "2023-05-10", 6},
		{"Grace Akinyi", "grace@example.com", "Future Investors", "2023-05-15", 7},
		{"Henry Mwangi", "henry@example.com", "Maendeleo Women Group", "2023-04-05", 8},
	}

	contributionRows = []contributionRow{
		{"Alice Wanjiru", 100, "2024-05-01T10:00:00Z"},
		{"Bob Otieno", 150, "2024-05-01T10:05:00Z"},
		{"Alice Wanjiru", 100, "2024-05-08T10:00:00Z"},
		{"Charlie Kamau", 120, "2024-05-08T10:10:00Z"},
		{"Bob Otieno", 150, "2024-05-15T10:05:00Z"},
		{"Alice Wanjiru", 100, "2024-05-15T10:00:00Z"},
		{"Alice Wanjiru", 100, "2024-05-22T10:00:00Z"},

		{"Diana Achieng", 200, "2024-05-05T14:00:00Z"},
		{"Eve Njeri", 250, "2024-05-05T14:05:00Z"},
		{"Diana Achieng", 200, "2024-05-12T14:00:00Z"},
		{"Henry Mwangi", 180, "2024-05-12T14:10:00Z"},

		{"Frank Musyoka", 500, "2024-05-10T09:00:00Z"},
		{"Grace Akinyi", 500, "2024-05-10T09:05:00Z"},
		{"Frank Musyoka", 500, "2024-05-24T09:00:00Z"},
	}

	loanRows = []loanRow{
		{"Bob Otieno", 500, "2024-05-16", models.LoanPending, ""},
		{"Eve Njeri", 1000, "2024-05-13", models.LoanApproved, ""},
		{"Grace Akinyi", 2000, "2024-05-11", models.LoanRepaid, "2024-06-11"},
		{"Charlie Kamau", 300, "2024-05-18", models.LoanRejected, ""},
		{"Henry Mwangi", 750, "2024-05-20", models.LoanPending, ""},
	}
)

// Result counts what Demo inserted.
type Result struct {
	Chamas, Members, Contributions, Loans int
	AdminCreated                          bool
}

// Demo inserts the demo data set. It refuses to run against a store that
// already holds chamas, so running it twice is harmless.
func Demo(ctx context.Context, store storage.Store) (*Result, error) {
	existing, err := store.ListChamas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chamas: %w", err)
	}
	res := &Result{}
	if len(existing) > 0 {
		slog.Info("Store already seeded, skipping demo data", "chamas", len(existing))
	} else if err := insertDemo(ctx, store, res); err != nil {
		return nil, err
	}

	created, err := ensureAdmin(ctx, store)
	if err != nil {
		return nil, err
	}
	res.AdminCreated = created
	return res, nil
}

func insertDemo(ctx context.Context, store storage.Store, res *Result) error {
	chamaIDs := make(map[string]string, len(chamaRows))
	for _, row := range chamaRows {
		c := &models.Chama{Name: row.name, CreatedAt: mustParse(row.created)}
		if err := store.CreateChama(ctx, c); err != nil {
			return fmt.Errorf("failed to create chama %q: %w", row.name, err)
		}
		chamaIDs[row.name] = c.ID
		res.Chamas++
	}

	members := make(map[string]*models.Member, len(memberRows))
	for _, row := range memberRows {
		m := &models.Member{
			Name:       row.name,
			Email:      row.email,
			ChamaID:    chamaIDs[row.chama],
			JoinedAt:   mustParse(row.joined),
			AvatarSeed: row.seed,
		}
		if err := store.CreateMember(ctx, m); err != nil {
			return fmt.Errorf("failed to create member %q: %w", row.name, err)
		}
		members[row.name] = m
		res.Members++
	}

	for _, row := range contributionRows {
		m := members[row.member]
		c := &models.Contribution{MemberID: m.ID, ChamaID: m.ChamaID, Amount: row.amount, Date: mustParse(row.date)}
		if err := store.CreateContribution(ctx, c); err != nil {
			return fmt.Errorf("failed to create contribution: %w", err)
		}
		res.Contributions++
	}

	for _, row := range loanRows {
		m := members[row.member]
		l := &models.Loan{
			MemberID:    m.ID,
			ChamaID:     m.ChamaID,
			Amount:      row.amount,
			RequestDate: mustParse(row.requested),
			Status:      row.status,
		}
		if row.repaid != "" {
			repaid := mustParse(row.repaid)
			l.RepaymentDate = &repaid
		}
		if err := store.CreateLoan(ctx, l); err != nil {
			return fmt.Errorf("failed to create loan: %w", err)
		}
		res.Loans++
	}

	slog.Info("Seeded demo data",
		"chamas", res.Chamas,
		"members", res.Members,
		"contributions", res.Contributions,
		"loans", res.Loans,
	)
	return nil
}

func ensureAdmin(ctx context.Context, store storage.UserRepository) (bool, error) {
	existing, err := store.GetUserByEmail(ctx, AdminEmail)
	if err != nil {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	hash, err := auth.HashPassword(AdminPassword)
	if err != nil {
		return false, err
	}
	admin := models.NewUser(AdminEmail, AdminName, hash, models.RoleAdmin)
	admin.AvatarSeed = 1
	if err := store.CreateUser(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}
	slog.Info("Created demo admin", "email", AdminEmail)
	return true, nil
}

// mustParse reads a date or RFC 3339 timestamp from the fixed tables above.
func mustParse(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(fmt.Sprintf("seed: bad date %q", s))
	}
	return t
}
