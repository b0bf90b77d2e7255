package calculator

import (
	"sort"
	"strings"
	"time"

	"github.com/mmynk/chama/internal/models"
)

// LedgerPageSize is the number of ledger entries per page.
const LedgerPageSize = 10

// EntryKind distinguishes ledger rows.
type EntryKind string

const (
	KindContribution EntryKind = "contribution"
	KindLoan         EntryKind = "loan"
)

// LedgerEntry is one row of the merged transaction ledger.
type LedgerEntry struct {
	Kind       EntryKind
	ID         string
	MemberID   string
	MemberName string
	ChamaID    string
	Amount     float64
	Date       time.Time

	// LoanStatus is set for loan rows only.
	LoanStatus models.LoanStatus
}

// BuildLedger merges contributions and loans into one list sorted by date,
// newest first. Loans are dated by their request date. Member names are
// resolved from members; unknown members keep an empty name.
func BuildLedger(contributions []*models.Contribution, loans []*models.Loan, members []*models.Member) []LedgerEntry {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	entries := make([]LedgerEntry, 0, len(contributions)+len(loans))
	for _, c := range contributions {
		entries = append(entries, LedgerEntry{
			Kind:       KindContribution,
			ID:         c.ID,
			MemberID:   c.MemberID,
			MemberName: names[c.MemberID],
			ChamaID:    c.ChamaID,
			Amount:     c.Amount,
			Date:       c.Date,
		})
	}
	for _, l := range loans {
		entries = append(entries, LedgerEntry{
			Kind:       KindLoan,
			ID:         l.ID,
			MemberID:   l.MemberID,
			MemberName: names[l.MemberID],
			ChamaID:    l.ChamaID,
			Amount:     l.Amount,
			Date:       l.RequestDate,
			LoanStatus: l.Status,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

// FilterLedger keeps entries whose member name contains query
// (case-insensitive) and whose kind matches. An empty query matches every
// entry; an empty kind or "all" matches both kinds.
func FilterLedger(entries []LedgerEntry, query string, kind string) []LedgerEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	kind = strings.ToLower(kind)

	var filtered []LedgerEntry
	for _, e := range entries {
		if query != "" && !strings.Contains(strings.ToLower(e.MemberName), query) {
			continue
		}
		if kind != "" && kind != "all" && string(e.Kind) != kind {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
