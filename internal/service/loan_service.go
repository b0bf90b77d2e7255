package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/chama/internal/loans"
	"github.com/mmynk/chama/internal/middleware"
	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
	pb "github.com/mmynk/chama/pkg/proto"
	"github.com/mmynk/chama/pkg/proto/chamav1connect"
)

// LoanService implements the Connect LoanService.
type LoanService struct {
	chamav1connect.UnimplementedLoanServiceHandler
	store    storage.Store
	workflow *loans.Workflow
}

// NewLoanService creates a LoanService backed by the given workflow.
func NewLoanService(store storage.Store, workflow *loans.Workflow) *LoanService {
	return &LoanService{store: store, workflow: workflow}
}

// ListLoans returns one page of loans, optionally restricted to one status.
// Unknown chamas are NotFound.
func (s *LoanService) ListLoans(ctx context.Context, req *connect.Request[pb.ListLoansRequest]) (*connect.Response[pb.ListLoansResponse], error) {
	if err := validateRequest(&loanListInput{Status: req.Msg.Status}); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.checkChama(ctx, req.Msg.ChamaId); err != nil {
		return nil, toConnectError(err)
	}

	var list []*models.Loan
	if req.Msg.Status == "" {
		all, err := s.store.ListLoans(ctx, req.Msg.ChamaId)
		if err != nil {
			slog.Error("ListLoans failed", "chama_id", req.Msg.ChamaId, "error", err)
			return nil, toConnectError(err)
		}
		list = all
	} else {
		board, err := s.workflow.Board(ctx, req.Msg.ChamaId)
		if err != nil {
			slog.Error("ListLoans failed", "chama_id", req.Msg.ChamaId, "error", err)
			return nil, toConnectError(err)
		}
		list = board.List(models.LoanStatus(req.Msg.Status))
	}

	page := loans.Page(list, int(req.Msg.Page))
	return connect.NewResponse(&pb.ListLoansResponse{
		Loans:      mapSlice(page.Items, loanToProto),
		Page:       int32(page.Page),
		TotalPages: int32(page.TotalPages),
		TotalItems: int32(page.TotalItems),
	}), nil
}

// GetLoanBoard returns loans grouped by status, newest request first.
func (s *LoanService) GetLoanBoard(ctx context.Context, req *connect.Request[pb.GetLoanBoardRequest]) (*connect.Response[pb.GetLoanBoardResponse], error) {
	board, err := s.workflow.Board(ctx, req.Msg.ChamaId)
	if err != nil {
		slog.Warn("GetLoanBoard failed", "chama_id", req.Msg.ChamaId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetLoanBoardResponse{
		Pending:  mapSlice(board.Pending, loanToProto),
		Approved: mapSlice(board.Approved, loanToProto),
		Rejected: mapSlice(board.Rejected, loanToProto),
		Repaid:   mapSlice(board.Repaid, loanToProto),
	}), nil
}

// RequestLoan files a pending loan for a member.
func (s *LoanService) RequestLoan(ctx context.Context, req *connect.Request[pb.RequestLoanRequest]) (*connect.Response[pb.RequestLoanResponse], error) {
	if err := middleware.RequireUser(ctx); err != nil {
		return nil, err
	}
	slog.Info("RequestLoan request received", "member_id", req.Msg.MemberId, "amount", req.Msg.Amount)
	if err := validateRequest(&loanRequestInput{MemberID: req.Msg.MemberId, Amount: req.Msg.Amount}); err != nil {
		return nil, toConnectError(err)
	}

	loan, err := s.workflow.RequestLoan(ctx, req.Msg.MemberId, req.Msg.Amount)
	if err != nil {
		slog.Warn("RequestLoan failed", "member_id", req.Msg.MemberId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.RequestLoanResponse{Loan: loanToProto(loan)}), nil
}

// DecideLoan approves or rejects a pending loan. Admins and treasurers only.
func (s *LoanService) DecideLoan(ctx context.Context, req *connect.Request[pb.DecideLoanRequest]) (*connect.Response[pb.DecideLoanResponse], error) {
	if err := middleware.RequireRole(ctx, models.RoleAdmin, models.RoleTreasurer); err != nil {
		return nil, err
	}
	slog.Info("DecideLoan request received",
		"loan_id", req.Msg.LoanId,
		"decision", req.Msg.Decision,
		"user_id", middleware.GetUserID(ctx),
	)
	if err := validateRequest(&decisionInput{LoanID: req.Msg.LoanId, Decision: req.Msg.Decision}); err != nil {
		return nil, toConnectError(err)
	}
	decision, err := loans.ParseDecision(req.Msg.Decision)
	if err != nil {
		return nil, toConnectError(newValidationError("Decision", err.Error()))
	}

	loan, err := s.workflow.Decide(ctx, req.Msg.LoanId, decision)
	if err != nil {
		slog.Warn("DecideLoan failed", "loan_id", req.Msg.LoanId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.DecideLoanResponse{Loan: loanToProto(loan)}), nil
}

// MarkLoanRepaid settles an approved loan. Admins and treasurers only.
func (s *LoanService) MarkLoanRepaid(ctx context.Context, req *connect.Request[pb.MarkLoanRepaidRequest]) (*connect.Response[pb.MarkLoanRepaidResponse], error) {
	if err := middleware.RequireRole(ctx, models.RoleAdmin, models.RoleTreasurer); err != nil {
		return nil, err
	}
	if err := validateRequest(&repaymentInput{LoanID: req.Msg.LoanId}); err != nil {
		return nil, toConnectError(err)
	}

	loan, err := s.workflow.MarkRepaid(ctx, req.Msg.LoanId, timeOrZero(req.Msg.RepaymentDate))
	if err != nil {
		slog.Warn("MarkLoanRepaid failed", "loan_id", req.Msg.LoanId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.MarkLoanRepaidResponse{Loan: loanToProto(loan)}), nil
}

// checkChama returns storage.ErrNotFound for an unknown non-empty chama ID.
func (s *LoanService) checkChama(ctx context.Context, chamaID string) error {
	if chamaID == "" {
		return nil
	}
	_, err := s.store.GetChama(ctx, chamaID)
	return err
}
