package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/chama/internal/calculator"
	"github.com/mmynk/chama/internal/middleware"
	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/selection"
	"github.com/mmynk/chama/internal/storage"
	pb "github.com/mmynk/chama/pkg/proto"
	"github.com/mmynk/chama/pkg/proto/chamav1connect"
)

// recentContributions is how many contributions the dashboard lists.
const recentContributions = 5

// InsightInvalidator drops cached insights when a chama's contributions change.
type InsightInvalidator interface {
	Invalidate(ctx context.Context, chamaID string)
}

// ChamaService implements the Connect ChamaService.
type ChamaService struct {
	chamav1connect.UnimplementedChamaServiceHandler
	store    storage.Store
	insights InsightInvalidator
	now      func() time.Time
}

// NewChamaService creates a ChamaService. insights may be nil.
func NewChamaService(store storage.Store, insights InsightInvalidator) *ChamaService {
	return &ChamaService{store: store, insights: insights, now: time.Now}
}

// ListChamas returns every chama in creation order.
func (s *ChamaService) ListChamas(ctx context.Context, req *connect.Request[pb.ListChamasRequest]) (*connect.Response[pb.ListChamasResponse], error) {
	chamas, err := s.store.ListChamas(ctx)
	if err != nil {
		slog.Error("ListChamas failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListChamasResponse{Chamas: mapSlice(chamas, chamaToProto)}), nil
}

func (s *ChamaService) GetChama(ctx context.Context, req *connect.Request[pb.GetChamaRequest]) (*connect.Response[pb.GetChamaResponse], error) {
	chama, err := s.store.GetChama(ctx, req.Msg.ChamaId)
	if err != nil {
		slog.Warn("GetChama failed", "chama_id", req.Msg.ChamaId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetChamaResponse{Chama: chamaToProto(chama)}), nil
}

// CreateChama creates a chama from a trimmed name of at least 3 characters.
// Only admins may create chamas.
func (s *ChamaService) CreateChama(ctx context.Context, req *connect.Request[pb.CreateChamaRequest]) (*connect.Response[pb.CreateChamaResponse], error) {
	if err := middleware.RequireRole(ctx, models.RoleAdmin); err != nil {
		return nil, err
	}
	in := chamaInput{Name: strings.TrimSpace(req.Msg.Name)}
	slog.Info("CreateChama request received", "name", in.Name, "user_id", middleware.GetUserID(ctx))
	if err := validateRequest(&in); err != nil {
		return nil, toConnectError(err)
	}

	chama := &models.Chama{Name: in.Name}
	if err := s.store.CreateChama(ctx, chama); err != nil {
		slog.Error("CreateChama failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Chama created", "chama_id", chama.ID)
	return connect.NewResponse(&pb.CreateChamaResponse{Chama: chamaToProto(chama)}), nil
}

func (s *ChamaService) ListMembers(ctx context.Context, req *connect.Request[pb.ListMembersRequest]) (*connect.Response[pb.ListMembersResponse], error) {
	members, err := s.store.ListMembers(ctx, req.Msg.ChamaId)
	if err != nil {
		slog.Error("ListMembers failed", "chama_id", req.Msg.ChamaId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListMembersResponse{Members: mapSlice(members, memberToProto)}), nil
}

func (s *ChamaService) ListContributions(ctx context.Context, req *connect.Request[pb.ListContributionsRequest]) (*connect.Response[pb.ListContributionsResponse], error) {
	contributions, err := s.store.ListContributions(ctx, req.Msg.ChamaId)
	if err != nil {
		slog.Error("ListContributions failed", "chama_id", req.Msg.ChamaId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ListContributionsResponse{Contributions: mapSlice(contributions, contributionToProto)}), nil
}

// RecordContribution stores a contribution in the member's chama.
func (s *ChamaService) RecordContribution(ctx context.Context, req *connect.Request[pb.RecordContributionRequest]) (*connect.Response[pb.RecordContributionResponse], error) {
	if err := middleware.RequireUser(ctx); err != nil {
		return nil, err
	}
	slog.Info("RecordContribution request received", "member_id", req.Msg.MemberId, "amount", req.Msg.Amount)
	if err := validateRequest(&contributionInput{MemberID: req.Msg.MemberId, Amount: req.Msg.Amount}); err != nil {
		return nil, toConnectError(err)
	}

	member, err := s.store.GetMember(ctx, req.Msg.MemberId)
	if err != nil {
		slog.Warn("RecordContribution failed", "member_id", req.Msg.MemberId, "error", err)
		return nil, toConnectError(err)
	}

	date := s.now().UTC()
	if req.Msg.Date != nil {
		date = req.Msg.Date.AsTime()
	}
	contribution := &models.Contribution{
		MemberID: member.ID,
		ChamaID:  member.ChamaID,
		Amount:   req.Msg.Amount,
		Date:     date,
	}
	if err := s.store.CreateContribution(ctx, contribution); err != nil {
		slog.Error("RecordContribution failed", "error", err)
		return nil, toConnectError(err)
	}
	if s.insights != nil {
		s.insights.Invalidate(ctx, contribution.ChamaID)
	}

	slog.Info("Contribution recorded", "contribution_id", contribution.ID, "chama_id", contribution.ChamaID)
	return connect.NewResponse(&pb.RecordContributionResponse{Contribution: contributionToProto(contribution)}), nil
}

// GetDashboard returns the summary cards, monthly chart and recent
// contributions for a chama, or for every chama when ChamaId is empty.
func (s *ChamaService) GetDashboard(ctx context.Context, req *connect.Request[pb.GetDashboardRequest]) (*connect.Response[pb.GetDashboardResponse], error) {
	view, chamas, err := s.load(ctx, req.Msg.ChamaId)
	if err != nil {
		return nil, toConnectError(err)
	}
	year := int(req.Msg.Year)
	if year == 0 {
		year = s.now().Year()
	}

	scope := chamas
	if view.ChamaID != "" {
		scope = nil
		for _, c := range chamas {
			if c.ID == view.ChamaID {
				scope = append(scope, c)
			}
		}
	}
	summary := calculator.Summarize(scope, view.Members, view.Contributions)

	resp := &pb.GetDashboardResponse{
		TotalContributions: summary.TotalContributions,
		MemberCount:        int32(summary.MemberCount),
		ChamaCount:         int32(summary.ChamaCount),
		MonthlyTotals:      monthlyTotalsToProto(calculator.MonthlyTotals(view.Contributions, year)),
	}
	for _, l := range view.Loans {
		switch l.Status {
		case models.LoanPending:
			resp.PendingLoans++
		case models.LoanApproved:
			resp.ActiveLoanAmount += l.Amount
		}
	}

	ledger := calculator.FilterLedger(calculator.BuildLedger(view.Contributions, nil, view.Members), "", string(calculator.KindContribution))
	for _, e := range ledger[:min(len(ledger), recentContributions)] {
		resp.RecentContributions = append(resp.RecentContributions, ledgerEntryToProto(e))
	}
	return connect.NewResponse(resp), nil
}

// GetLedger returns one page of the merged contribution and loan history,
// newest first.
func (s *ChamaService) GetLedger(ctx context.Context, req *connect.Request[pb.GetLedgerRequest]) (*connect.Response[pb.GetLedgerResponse], error) {
	if err := validateRequest(&ledgerInput{Type: req.Msg.Type}); err != nil {
		return nil, toConnectError(err)
	}
	view, _, err := s.load(ctx, req.Msg.ChamaId)
	if err != nil {
		return nil, toConnectError(err)
	}

	entries := calculator.BuildLedger(view.Contributions, view.Loans, view.Members)
	entries = calculator.FilterLedger(entries, req.Msg.Query, req.Msg.Type)
	page := calculator.Paginate(entries, int(req.Msg.Page), calculator.LedgerPageSize)

	return connect.NewResponse(&pb.GetLedgerResponse{
		Entries:    mapSlice(page.Items, ledgerEntryToProto),
		Page:       int32(page.Page),
		TotalPages: int32(page.TotalPages),
		TotalItems: int32(page.TotalItems),
	}), nil
}

func (s *ChamaService) GetMonthlyTotals(ctx context.Context, req *connect.Request[pb.GetMonthlyTotalsRequest]) (*connect.Response[pb.GetMonthlyTotalsResponse], error) {
	if req.Msg.ChamaId != "" {
		if _, err := s.store.GetChama(ctx, req.Msg.ChamaId); err != nil {
			return nil, toConnectError(err)
		}
	}
	contributions, err := s.store.ListContributions(ctx, req.Msg.ChamaId)
	if err != nil {
		slog.Error("GetMonthlyTotals failed", "chama_id", req.Msg.ChamaId, "error", err)
		return nil, toConnectError(err)
	}
	year := int(req.Msg.Year)
	if year == 0 {
		year = s.now().Year()
	}
	return connect.NewResponse(&pb.GetMonthlyTotalsResponse{
		Year:   int32(year),
		Totals: monthlyTotalsToProto(calculator.MonthlyTotals(contributions, year)),
	}), nil
}

// load fetches the scoped members, contributions and loans through a
// request-scoped selection session, which runs the three lookups
// concurrently. Nothing supersedes a request's selection, so the session's
// stale-load handling never triggers here. An unknown chama ID yields
// storage.ErrNotFound.
func (s *ChamaService) load(ctx context.Context, chamaID string) (*selection.View, []*models.Chama, error) {
	sess := selection.NewSession(s.store)
	defer sess.Close()

	if err := sess.Init(ctx); err != nil {
		slog.Error("Failed to list chamas", "error", err)
		return nil, nil, err
	}
	if err := sess.Select(chamaID); err != nil {
		slog.Warn("Unknown chama", "chama_id", chamaID)
		return nil, nil, err
	}
	view, err := sess.Load(ctx)
	if err != nil {
		slog.Error("Failed to load chama data", "chama_id", chamaID, "error", err)
		return nil, nil, err
	}
	return view, sess.Available(), nil
}
