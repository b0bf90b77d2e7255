package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/gamification"
	"github.com/mmynk/chama/internal/loans"
	"github.com/mmynk/chama/internal/middleware"
	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage/sqlite"
	"github.com/mmynk/chama/internal/storage/storagetest"
	pb "github.com/mmynk/chama/pkg/proto"
	"github.com/mmynk/chama/pkg/proto/chamav1connect"
)

type testServer struct {
	chamas   chamav1connect.ChamaServiceClient
	loans    chamav1connect.LoanServiceClient
	insights chamav1connect.GamificationServiceClient
	auth     chamav1connect.AuthServiceClient
	fixture  *storagetest.Fixture
	store    *sqlite.SQLiteStore
	jwt      *auth.JWTManager
	scorer   *stubScorer
}

type stubScorer struct {
	mu  sync.Mutex
	err error
}

func (s *stubScorer) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubScorer) ScoreContributions(_ context.Context, req gamification.Request) (*gamification.Response, error) {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	resp := &gamification.Response{SuggestedRuleTweaks: "Reward streaks."}
	for i, h := range req.MemberContributionHistory {
		resp.MemberScores = append(resp.MemberScores, gamification.MemberScore{MemberID: h.MemberID, Score: float64(i * 10), Streak: 1})
	}
	return resp, nil
}

// setupTestServer serves every service over httptest against a seeded
// SQLite store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ts := &testServer{
		fixture: storagetest.Seed(t, store),
		store:   store,
		jwt:     auth.NewJWTManager("test-secret", time.Hour),
		scorer:  &stubScorer{},
	}

	adapter := gamification.NewAdapter(store, ts.scorer)
	workflow := loans.NewWorkflow(store)
	opts := connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.OptionalAuth(ts.jwt),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(chamav1connect.NewChamaServiceHandler(NewChamaService(store, adapter), opts))
	mux.Handle(chamav1connect.NewLoanServiceHandler(NewLoanService(store, workflow), opts))
	mux.Handle(chamav1connect.NewGamificationServiceHandler(NewGamificationService(store, adapter), opts))
	mux.Handle(chamav1connect.NewAuthServiceHandler(NewAuthService(auth.NewPasswordAuthenticator(store), store, ts.jwt, slog.Default()), opts))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	ts.chamas = chamav1connect.NewChamaServiceClient(http.DefaultClient, server.URL)
	ts.loans = chamav1connect.NewLoanServiceClient(http.DefaultClient, server.URL)
	ts.insights = chamav1connect.NewGamificationServiceClient(http.DefaultClient, server.URL)
	ts.auth = chamav1connect.NewAuthServiceClient(http.DefaultClient, server.URL)
	return ts
}

// tokenFor creates a user with the given role and returns a bearer token.
func (ts *testServer) tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	user := models.NewUser(string(role)+"@example.com", string(role), "", role)
	if err := ts.store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	token, err := ts.jwt.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}

func TestListChamas(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.chamas.ListChamas(context.Background(), connect.NewRequest(&pb.ListChamasRequest{}))
	if err != nil {
		t.Fatalf("ListChamas failed: %v", err)
	}
	if len(resp.Msg.Chamas) != 2 {
		t.Fatalf("expected 2 chamas, got %d", len(resp.Msg.Chamas))
	}
	if resp.Msg.Chamas[0].Name != "Uhuru Savings" || resp.Msg.Chamas[1].Name != "Maendeleo Women Group" {
		t.Errorf("unexpected order: %s, %s", resp.Msg.Chamas[0].Name, resp.Msg.Chamas[1].Name)
	}
}

func TestGetChama_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.chamas.GetChama(context.Background(), connect.NewRequest(&pb.GetChamaRequest{ChamaId: "nonexistent-id"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestCreateChama(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	admin := ts.tokenFor(t, models.RoleAdmin)
	member := ts.tokenFor(t, models.RoleMember)

	resp, err := ts.chamas.CreateChama(ctx, withToken(&pb.CreateChamaRequest{Name: "  Future Investors  "}, admin))
	if err != nil {
		t.Fatalf("CreateChama failed: %v", err)
	}
	if resp.Msg.Chama.Id == "" {
		t.Error("expected non-empty chama ID")
	}
	if resp.Msg.Chama.Name != "Future Investors" {
		t.Errorf("name: expected trimmed 'Future Investors', got %q", resp.Msg.Chama.Name)
	}

	list, err := ts.chamas.ListChamas(ctx, connect.NewRequest(&pb.ListChamasRequest{}))
	if err != nil {
		t.Fatalf("ListChamas failed: %v", err)
	}
	if len(list.Msg.Chamas) != 3 || list.Msg.Chamas[2].Id != resp.Msg.Chama.Id {
		t.Errorf("expected new chama appended, got %+v", list.Msg.Chamas)
	}

	tests := []struct {
		name  string
		chama string
		token string
		code  connect.Code
	}{
		{"anonymous", "Savers Club", "", connect.CodeUnauthenticated},
		{"member role", "Savers Club", member, connect.CodePermissionDenied},
		{"bad token", "Savers Club", "not-a-jwt", connect.CodeUnauthenticated},
		{"short name", "  ab ", admin, connect.CodeInvalidArgument},
		{"empty name", "", admin, connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.chamas.CreateChama(ctx, withToken(&pb.CreateChamaRequest{Name: tt.chama}, tt.token))
			assertCode(t, err, tt.code)
		})
	}
}

func TestScopedLists(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	f := ts.fixture

	members, err := ts.chamas.ListMembers(ctx, connect.NewRequest(&pb.ListMembersRequest{ChamaId: f.ChamaA.ID}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members.Msg.Members) != 2 {
		t.Errorf("expected 2 members in chama A, got %d", len(members.Msg.Members))
	}
	for _, m := range members.Msg.Members {
		if m.ChamaId != f.ChamaA.ID {
			t.Errorf("member %s belongs to %s", m.Name, m.ChamaId)
		}
	}

	all, err := ts.chamas.ListMembers(ctx, connect.NewRequest(&pb.ListMembersRequest{}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(all.Msg.Members) != 3 {
		t.Errorf("expected 3 members overall, got %d", len(all.Msg.Members))
	}

	contributions, err := ts.chamas.ListContributions(ctx, connect.NewRequest(&pb.ListContributionsRequest{ChamaId: f.ChamaB.ID}))
	if err != nil {
		t.Fatalf("ListContributions failed: %v", err)
	}
	if len(contributions.Msg.Contributions) != 1 || contributions.Msg.Contributions[0].Amount != 200 {
		t.Errorf("unexpected chama B contributions: %+v", contributions.Msg.Contributions)
	}
}

func TestRecordContribution(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	token := ts.tokenFor(t, models.RoleMember)
	bob := ts.fixture.Members[1]
	date := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)

	resp, err := ts.chamas.RecordContribution(ctx, withToken(&pb.RecordContributionRequest{
		MemberId: bob.ID,
		Amount:   250,
		Date:     timestamppb.New(date),
	}, token))
	if err != nil {
		t.Fatalf("RecordContribution failed: %v", err)
	}
	if resp.Msg.Contribution.ChamaId != ts.fixture.ChamaA.ID {
		t.Errorf("expected contribution in Bob's chama, got %s", resp.Msg.Contribution.ChamaId)
	}
	if !resp.Msg.Contribution.Date.AsTime().Equal(date) {
		t.Errorf("date: expected %v, got %v", date, resp.Msg.Contribution.Date.AsTime())
	}

	totals, err := ts.chamas.GetMonthlyTotals(ctx, connect.NewRequest(&pb.GetMonthlyTotalsRequest{ChamaId: ts.fixture.ChamaA.ID, Year: 2024}))
	if err != nil {
		t.Fatalf("GetMonthlyTotals failed: %v", err)
	}
	if got := totals.Msg.Totals[time.June-1]; got.Month != "June" || got.Total != 250 {
		t.Errorf("June total: expected 250, got %+v", got)
	}

	tests := []struct {
		name  string
		msg   *pb.RecordContributionRequest
		token string
		code  connect.Code
	}{
		{"anonymous", &pb.RecordContributionRequest{MemberId: bob.ID, Amount: 10}, "", connect.CodeUnauthenticated},
		{"unknown member", &pb.RecordContributionRequest{MemberId: "nobody", Amount: 10}, token, connect.CodeNotFound},
		{"zero amount", &pb.RecordContributionRequest{MemberId: bob.ID, Amount: 0}, token, connect.CodeInvalidArgument},
		{"negative amount", &pb.RecordContributionRequest{MemberId: bob.ID, Amount: -5}, token, connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.chamas.RecordContribution(ctx, withToken(tt.msg, tt.token))
			assertCode(t, err, tt.code)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	f := ts.fixture

	resp, err := ts.chamas.GetDashboard(ctx, connect.NewRequest(&pb.GetDashboardRequest{ChamaId: f.ChamaA.ID, Year: 2024}))
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	d := resp.Msg
	if d.TotalContributions != 350 {
		t.Errorf("total: expected 350, got %v", d.TotalContributions)
	}
	if d.MemberCount != 2 || d.ChamaCount != 1 {
		t.Errorf("counts: expected 2 members in 1 chama, got %d in %d", d.MemberCount, d.ChamaCount)
	}
	if d.PendingLoans != 1 {
		t.Errorf("pending loans: expected 1, got %d", d.PendingLoans)
	}
	if len(d.MonthlyTotals) != 12 || d.MonthlyTotals[time.May-1].Total != 350 {
		t.Errorf("unexpected monthly totals: %+v", d.MonthlyTotals)
	}
	if len(d.RecentContributions) != 3 || d.RecentContributions[0].Date.AsTime().Before(d.RecentContributions[2].Date.AsTime()) {
		t.Errorf("expected 3 recent contributions newest first, got %+v", d.RecentContributions)
	}

	all, err := ts.chamas.GetDashboard(ctx, connect.NewRequest(&pb.GetDashboardRequest{Year: 2024}))
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	if all.Msg.TotalContributions != 550 || all.Msg.ChamaCount != 2 || all.Msg.ActiveLoanAmount != 1000 {
		t.Errorf("unexpected all-chamas dashboard: %+v", all.Msg)
	}

	_, err = ts.chamas.GetDashboard(ctx, connect.NewRequest(&pb.GetDashboardRequest{ChamaId: "nonexistent-id"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetLedger(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	chamaA := ts.fixture.ChamaA.ID

	tests := []struct {
		name  string
		req   *pb.GetLedgerRequest
		count int
	}{
		{"everything in chama A", &pb.GetLedgerRequest{ChamaId: chamaA}, 5},
		{"member name filter", &pb.GetLedgerRequest{ChamaId: chamaA, Query: "BOB"}, 2},
		{"loans only", &pb.GetLedgerRequest{ChamaId: chamaA, Type: "loan"}, 2},
		{"contributions only", &pb.GetLedgerRequest{ChamaId: chamaA, Type: "contribution"}, 3},
		{"all chamas", &pb.GetLedgerRequest{}, 7},
		{"no match", &pb.GetLedgerRequest{ChamaId: chamaA, Query: "zelda"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ts.chamas.GetLedger(ctx, connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("GetLedger failed: %v", err)
			}
			if int(resp.Msg.TotalItems) != tt.count || len(resp.Msg.Entries) != tt.count {
				t.Errorf("expected %d entries, got %d (total %d)", tt.count, len(resp.Msg.Entries), resp.Msg.TotalItems)
			}
			for i := 1; i < len(resp.Msg.Entries); i++ {
				if resp.Msg.Entries[i].Date.AsTime().After(resp.Msg.Entries[i-1].Date.AsTime()) {
					t.Errorf("entries not sorted newest first at %d", i)
				}
			}
		})
	}

	_, err := ts.chamas.GetLedger(ctx, connect.NewRequest(&pb.GetLedgerRequest{Type: "transfer"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestDecideLoan(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	treasurer := ts.tokenFor(t, models.RoleTreasurer)
	member := ts.tokenFor(t, models.RoleMember)
	pending := ts.fixture.Loans[0]

	resp, err := ts.loans.DecideLoan(ctx, withToken(&pb.DecideLoanRequest{LoanId: pending.ID, Decision: "approve"}, treasurer))
	if err != nil {
		t.Fatalf("DecideLoan failed: %v", err)
	}
	if resp.Msg.Loan.Status != string(models.LoanApproved) {
		t.Errorf("status: expected Approved, got %s", resp.Msg.Loan.Status)
	}

	board, err := ts.loans.GetLoanBoard(ctx, connect.NewRequest(&pb.GetLoanBoardRequest{ChamaId: ts.fixture.ChamaA.ID}))
	if err != nil {
		t.Fatalf("GetLoanBoard failed: %v", err)
	}
	if len(board.Msg.Pending) != 0 {
		t.Errorf("expected empty pending column, got %d", len(board.Msg.Pending))
	}
	if len(board.Msg.Approved) != 1 || board.Msg.Approved[0].Id != pending.ID {
		t.Errorf("expected loan in approved column, got %+v", board.Msg.Approved)
	}

	tests := []struct {
		name  string
		msg   *pb.DecideLoanRequest
		token string
		code  connect.Code
	}{
		{"already decided", &pb.DecideLoanRequest{LoanId: pending.ID, Decision: "reject"}, treasurer, connect.CodeFailedPrecondition},
		{"rejected loan", &pb.DecideLoanRequest{LoanId: ts.fixture.Loans[2].ID, Decision: "approve"}, treasurer, connect.CodeFailedPrecondition},
		{"unknown loan", &pb.DecideLoanRequest{LoanId: "nonexistent-id", Decision: "approve"}, treasurer, connect.CodeNotFound},
		{"unknown decision", &pb.DecideLoanRequest{LoanId: pending.ID, Decision: "maybe"}, treasurer, connect.CodeInvalidArgument},
		{"member role", &pb.DecideLoanRequest{LoanId: pending.ID, Decision: "approve"}, member, connect.CodePermissionDenied},
		{"anonymous", &pb.DecideLoanRequest{LoanId: pending.ID, Decision: "approve"}, "", connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.loans.DecideLoan(ctx, withToken(tt.msg, tt.token))
			assertCode(t, err, tt.code)
		})
	}

	// Failed decisions leave the loan untouched.
	stored, err := ts.store.GetLoan(ctx, pending.ID)
	if err != nil {
		t.Fatalf("GetLoan failed: %v", err)
	}
	if stored.Status != models.LoanApproved {
		t.Errorf("expected loan to stay Approved, got %s", stored.Status)
	}
}

func TestRequestAndRepayLoan(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	admin := ts.tokenFor(t, models.RoleAdmin)
	diana := ts.fixture.Members[2]

	req, err := ts.loans.RequestLoan(ctx, withToken(&pb.RequestLoanRequest{MemberId: diana.ID, Amount: 400}, admin))
	if err != nil {
		t.Fatalf("RequestLoan failed: %v", err)
	}
	if req.Msg.Loan.Status != string(models.LoanPending) || req.Msg.Loan.ChamaId != ts.fixture.ChamaB.ID {
		t.Errorf("unexpected loan: %+v", req.Msg.Loan)
	}

	_, err = ts.loans.MarkLoanRepaid(ctx, withToken(&pb.MarkLoanRepaidRequest{LoanId: req.Msg.Loan.Id}, admin))
	assertCode(t, err, connect.CodeFailedPrecondition)

	repaidAt := time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)
	repaid, err := ts.loans.MarkLoanRepaid(ctx, withToken(&pb.MarkLoanRepaidRequest{
		LoanId:        ts.fixture.Loans[1].ID,
		RepaymentDate: timestamppb.New(repaidAt),
	}, admin))
	if err != nil {
		t.Fatalf("MarkLoanRepaid failed: %v", err)
	}
	if repaid.Msg.Loan.Status != string(models.LoanRepaid) {
		t.Errorf("status: expected Repaid, got %s", repaid.Msg.Loan.Status)
	}
	if repaid.Msg.Loan.RepaymentDate == nil || !repaid.Msg.Loan.RepaymentDate.AsTime().Equal(repaidAt) {
		t.Errorf("repayment date: expected %v, got %v", repaidAt, repaid.Msg.Loan.RepaymentDate.AsTime())
	}

	list, err := ts.loans.ListLoans(ctx, connect.NewRequest(&pb.ListLoansRequest{ChamaId: ts.fixture.ChamaB.ID, Status: string(models.LoanPending)}))
	if err != nil {
		t.Fatalf("ListLoans failed: %v", err)
	}
	if list.Msg.TotalItems != 1 || list.Msg.Loans[0].Id != req.Msg.Loan.Id {
		t.Errorf("expected the new loan as the only pending one, got %+v", list.Msg.Loans)
	}

	_, err = ts.loans.RequestLoan(ctx, withToken(&pb.RequestLoanRequest{MemberId: diana.ID, Amount: 400}, ""))
	assertCode(t, err, connect.CodeUnauthenticated)
	_, err = ts.loans.RequestLoan(ctx, withToken(&pb.RequestLoanRequest{MemberId: diana.ID, Amount: 0}, admin))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestLoanListings_UnknownChama(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	for _, status := range []string{"", string(models.LoanPending), string(models.LoanRepaid)} {
		_, err := ts.loans.ListLoans(ctx, connect.NewRequest(&pb.ListLoansRequest{ChamaId: "nonexistent-id", Status: status}))
		assertCode(t, err, connect.CodeNotFound)
	}
	_, err := ts.loans.GetLoanBoard(ctx, connect.NewRequest(&pb.GetLoanBoardRequest{ChamaId: "nonexistent-id"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = ts.loans.ListLoans(ctx, connect.NewRequest(&pb.ListLoansRequest{ChamaId: ts.fixture.ChamaA.ID, Status: "Lost"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestGetInsights(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	resp, err := ts.insights.GetInsights(ctx, connect.NewRequest(&pb.GetInsightsRequest{ChamaId: ts.fixture.ChamaA.ID}))
	if err != nil {
		t.Fatalf("GetInsights failed: %v", err)
	}
	if !resp.Msg.Available || resp.Msg.Insights == nil {
		t.Fatal("expected insights to be available")
	}
	scores := resp.Msg.Insights.MemberScores
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[i-1].Score {
			t.Errorf("scores not sorted descending: %+v", scores)
		}
	}

	ts.scorer.fail(errors.New("model unavailable"))
	resp, err = ts.insights.GetInsights(ctx, connect.NewRequest(&pb.GetInsightsRequest{ChamaId: ts.fixture.ChamaA.ID}))
	if err != nil {
		t.Fatalf("GetInsights should degrade, not fail: %v", err)
	}
	if resp.Msg.Available {
		t.Error("expected no insights when the scorer fails")
	}

	_, err = ts.insights.GetInsights(ctx, connect.NewRequest(&pb.GetInsightsRequest{ChamaId: "nonexistent-id"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestAuthFlow(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	reg, err := ts.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       "grace@example.com",
		DisplayName: "Grace Akinyi",
		Password:    "savings-2024",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.Msg.Token == "" || reg.Msg.User.Role != string(models.RoleMember) {
		t.Errorf("unexpected registration: %+v", reg.Msg)
	}

	_, err = ts.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Email: "grace@example.com", DisplayName: "Grace", Password: "savings-2024"}))
	assertCode(t, err, connect.CodeAlreadyExists)
	_, err = ts.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Email: "not-an-email", DisplayName: "X", Password: "savings-2024"}))
	assertCode(t, err, connect.CodeInvalidArgument)
	_, err = ts.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Email: "weak@example.com", DisplayName: "Weak", Password: "short"}))
	assertCode(t, err, connect.CodeInvalidArgument)

	login, err := ts.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "grace@example.com", Password: "savings-2024"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	_, err = ts.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "grace@example.com", Password: "wrong-password"}))
	assertCode(t, err, connect.CodeUnauthenticated)
	_, err = ts.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "grace@example.com"}))
	assertCode(t, err, connect.CodeInvalidArgument)
	if login.Msg.ExpiresAt.AsTime().Before(time.Now()) {
		t.Errorf("expected future expiry, got %v", login.Msg.ExpiresAt.AsTime())
	}

	me, err := ts.auth.GetCurrentUser(ctx, withToken(&pb.GetCurrentUserRequest{}, login.Msg.Token))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.User.DisplayName != "Grace Akinyi" || me.Msg.User.Id != reg.Msg.User.Id {
		t.Errorf("unexpected current user: %+v", me.Msg.User)
	}

	_, err = ts.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}
