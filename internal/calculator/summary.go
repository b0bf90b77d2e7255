// Package calculator holds the pure computations behind the dashboard:
// totals, monthly contribution buckets, the merged ledger and pagination.
package calculator

import (
	"time"

	"github.com/mmynk/chama/internal/models"
)

// Summary is the headline numbers of the dashboard.
type Summary struct {
	TotalContributions float64
	MemberCount        int
	ChamaCount         int
}

// Summarize aggregates the dashboard headline numbers.
func Summarize(chamas []*models.Chama, members []*models.Member, contributions []*models.Contribution) Summary {
	var total float64
	for _, c := range contributions {
		total += c.Amount
	}
	return Summary{
		TotalContributions: total,
		MemberCount:        len(members),
		ChamaCount:         len(chamas),
	}
}

// MonthlyTotal is the sum of contributions made in one calendar month.
type MonthlyTotal struct {
	Month time.Month
	Total float64
}

// MonthlyTotals buckets contributions made in the given year by month.
// All twelve months are returned, January first; months without
// contributions total zero.
func MonthlyTotals(contributions []*models.Contribution, year int) []MonthlyTotal {
	totals := make([]MonthlyTotal, 12)
	for i := range totals {
		totals[i].Month = time.Month(i + 1)
	}
	for _, c := range contributions {
		d := c.Date.UTC()
		if d.Year() != year {
			continue
		}
		totals[d.Month()-1].Total += c.Amount
	}
	return totals
}

// MemberTotals sums contributions per member ID.
func MemberTotals(contributions []*models.Contribution) map[string]float64 {
	totals := make(map[string]float64)
	for _, c := range contributions {
		totals[c.MemberID] += c.Amount
	}
	return totals
}
