package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/chama/internal/gamification"
	"github.com/mmynk/chama/internal/storage"
	pb "github.com/mmynk/chama/pkg/proto"
	"github.com/mmynk/chama/pkg/proto/chamav1connect"
)

// GamificationService implements the Connect GamificationService.
type GamificationService struct {
	chamav1connect.UnimplementedGamificationServiceHandler
	store   storage.ChamaRepository
	adapter *gamification.Adapter
}

func NewGamificationService(store storage.ChamaRepository, adapter *gamification.Adapter) *GamificationService {
	return &GamificationService{store: store, adapter: adapter}
}

// GetInsights never fails because the scorer failed: unavailable insights
// come back with Available false.
func (s *GamificationService) GetInsights(ctx context.Context, req *connect.Request[pb.GetInsightsRequest]) (*connect.Response[pb.GetInsightsResponse], error) {
	if req.Msg.ChamaId != "" {
		if _, err := s.store.GetChama(ctx, req.Msg.ChamaId); err != nil {
			return nil, toConnectError(err)
		}
	}

	insights := s.adapter.Insights(ctx, req.Msg.ChamaId)
	if insights == nil {
		return connect.NewResponse(&pb.GetInsightsResponse{}), nil
	}
	return connect.NewResponse(&pb.GetInsightsResponse{
		Available: true,
		Insights:  insightsToProto(insights),
	}), nil
}
