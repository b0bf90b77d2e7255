package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/chama/internal/models"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name       string
		items      []int
		page       int
		size       int
		wantPage   int
		wantLen    int
		wantFirst  int
		wantTotalP int
	}{
		{name: "first page", items: items, page: 1, size: 10, wantPage: 1, wantLen: 10, wantFirst: 0, wantTotalP: 3},
		{name: "last partial page", items: items, page: 3, size: 10, wantPage: 3, wantLen: 3, wantFirst: 20, wantTotalP: 3},
		{name: "page past the end is clamped", items: items, page: 9, size: 10, wantPage: 3, wantLen: 3, wantFirst: 20, wantTotalP: 3},
		{name: "page zero is clamped", items: items, page: 0, size: 5, wantPage: 1, wantLen: 5, wantFirst: 0, wantTotalP: 5},
		{name: "empty list has one empty page", items: nil, page: 1, size: 10, wantPage: 1, wantLen: 0, wantTotalP: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.items, tt.page, tt.size)
			if got.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", got.Page, tt.wantPage)
			}
			if len(got.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(got.Items), tt.wantLen)
			}
			if tt.wantLen > 0 && got.Items[0] != tt.wantFirst {
				t.Errorf("Items[0] = %d, want %d", got.Items[0], tt.wantFirst)
			}
			if got.TotalPages != tt.wantTotalP {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalP)
			}
			if got.TotalItems != len(tt.items) {
				t.Errorf("TotalItems = %d, want %d", got.TotalItems, len(tt.items))
			}
		})
	}
}

func contribution(member string, amount float64, date time.Time) *models.Contribution {
	return &models.Contribution{ID: member + date.Format(time.RFC3339), MemberID: member, ChamaID: "c1", Amount: amount, Date: date}
}

func TestSummarize(t *testing.T) {
	chamas := []*models.Chama{{ID: "c1"}, {ID: "c2"}}
	members := []*models.Member{{ID: "m1"}, {ID: "m2"}, {ID: "m3"}}
	contributions := []*models.Contribution{
		contribution("m1", 100, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		contribution("m2", 150.5, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
	}

	got := Summarize(chamas, members, contributions)
	if math.Abs(got.TotalContributions-250.5) > 0.001 {
		t.Errorf("TotalContributions = %v, want 250.5", got.TotalContributions)
	}
	if got.MemberCount != 3 || got.ChamaCount != 2 {
		t.Errorf("counts = %d members / %d chamas, want 3 / 2", got.MemberCount, got.ChamaCount)
	}
}

func TestMonthlyTotals(t *testing.T) {
	contributions := []*models.Contribution{
		contribution("m1", 100, time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)),
		contribution("m2", 150, time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)),
		contribution("m1", 200, time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC)),
		contribution("m1", 999, time.Date(2023, time.May, 1, 10, 0, 0, 0, time.UTC)),
	}

	got := MonthlyTotals(contributions, 2024)
	if len(got) != 12 {
		t.Fatalf("expected 12 months, got %d", len(got))
	}
	if got[0].Month != time.January || got[0].Total != 200 {
		t.Errorf("January = %+v, want 200", got[0])
	}
	if got[4].Month != time.May || got[4].Total != 250 {
		t.Errorf("May = %+v, want 250", got[4])
	}
	if got[5].Total != 0 {
		t.Errorf("June = %v, want 0", got[5].Total)
	}
}

func TestMemberTotals(t *testing.T) {
	contributions := []*models.Contribution{
		contribution("m1", 100, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		contribution("m1", 50, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)),
		contribution("m2", 10, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)),
	}
	got := MemberTotals(contributions)
	if got["m1"] != 150 || got["m2"] != 10 {
		t.Errorf("MemberTotals = %v", got)
	}
}

func TestBuildAndFilterLedger(t *testing.T) {
	members := []*models.Member{
		{ID: "m1", Name: "Alice Wanjiru"},
		{ID: "m2", Name: "Bob Otieno"},
	}
	contributions := []*models.Contribution{
		contribution("m1", 100, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
		contribution("m2", 150, time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC)),
	}
	loans := []*models.Loan{
		{ID: "l1", MemberID: "m2", ChamaID: "c1", Amount: 500, RequestDate: time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), Status: models.LoanPending},
	}

	ledger := BuildLedger(contributions, loans, members)
	if len(ledger) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ledger))
	}
	if ledger[0].Kind != KindLoan || ledger[0].LoanStatus != models.LoanPending {
		t.Errorf("expected newest entry to be the pending loan, got %+v", ledger[0])
	}
	if ledger[2].MemberName != "Alice Wanjiru" {
		t.Errorf("expected oldest entry by Alice, got %q", ledger[2].MemberName)
	}

	tests := []struct {
		name  string
		query string
		kind  string
		want  int
	}{
		{"no filter", "", "all", 3},
		{"name substring is case-insensitive", "BOB", "", 2},
		{"kind filter", "", "loan", 1},
		{"name and kind", "bob", "contribution", 1},
		{"no match", "zed", "all", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterLedger(ledger, tt.query, tt.kind); len(got) != tt.want {
				t.Errorf("FilterLedger(%q, %q) returned %d entries, want %d", tt.query, tt.kind, len(got), tt.want)
			}
		})
	}
}
