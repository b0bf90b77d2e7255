package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/chama/internal/calculator"
	"github.com/mmynk/chama/internal/gamification"
	"github.com/mmynk/chama/internal/models"
	pb "github.com/mmynk/chama/pkg/proto"
)

func chamaToProto(c *models.Chama) *pb.Chama {
	return &pb.Chama{Id: c.ID, Name: c.Name, CreatedAt: timestamppb.New(c.CreatedAt)}
}

func memberToProto(m *models.Member) *pb.Member {
	return &pb.Member{
		Id:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		ChamaId:    m.ChamaID,
		JoinedAt:   timestamppb.New(m.JoinedAt),
		AvatarSeed: int32(m.AvatarSeed),
	}
}

func contributionToProto(c *models.Contribution) *pb.Contribution {
	return &pb.Contribution{
		Id:       c.ID,
		MemberId: c.MemberID,
		ChamaId:  c.ChamaID,
		Amount:   c.Amount,
		Date:     timestamppb.New(c.Date),
	}
}

func loanToProto(l *models.Loan) *pb.Loan {
	loan := &pb.Loan{
		Id:          l.ID,
		MemberId:    l.MemberID,
		ChamaId:     l.ChamaID,
		Amount:      l.Amount,
		RequestDate: timestamppb.New(l.RequestDate),
		Status:      string(l.Status),
	}
	if l.RepaymentDate != nil {
		loan.RepaymentDate = timestamppb.New(*l.RepaymentDate)
	}
	return loan
}

func userToProto(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		AvatarSeed:  int32(u.AvatarSeed),
		CreatedAt:   timestamppb.New(time.Unix(u.CreatedAt, 0)),
	}
}

func ledgerEntryToProto(e calculator.LedgerEntry) *pb.LedgerEntry {
	return &pb.LedgerEntry{
		Type:       string(e.Kind),
		Id:         e.ID,
		MemberId:   e.MemberID,
		MemberName: e.MemberName,
		ChamaId:    e.ChamaID,
		Amount:     e.Amount,
		Date:       timestamppb.New(e.Date),
		LoanStatus: string(e.LoanStatus),
	}
}

func monthlyTotalsToProto(totals []calculator.MonthlyTotal) []*pb.MonthlyTotal {
	out := make([]*pb.MonthlyTotal, len(totals))
	for i, t := range totals {
		out[i] = &pb.MonthlyTotal{Month: t.Month.String(), Total: t.Total}
	}
	return out
}

func insightsToProto(r *gamification.Response) *pb.Insights {
	scores := make([]*pb.MemberScore, len(r.MemberScores))
	for i, s := range r.MemberScores {
		scores[i] = &pb.MemberScore{MemberId: s.MemberID, Score: s.Score, Streak: int32(s.Streak)}
	}
	return &pb.Insights{MemberScores: scores, SuggestedRuleTweaks: r.SuggestedRuleTweaks}
}

// timeOrZero converts an optional wire timestamp; nil yields the zero time.
func timeOrZero(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
