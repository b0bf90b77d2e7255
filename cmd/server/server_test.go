package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/gamification"
	"github.com/mmynk/chama/internal/seed"
	"github.com/mmynk/chama/internal/storage/memory"
	pb "github.com/mmynk/chama/pkg/proto"
	"github.com/mmynk/chama/pkg/proto/chamav1connect"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.New()
	if _, err := seed.Demo(context.Background(), store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	adapter := gamification.NewAdapter(store, nil)
	server := httptest.NewServer(newHandler(store, adapter, auth.NewJWTManager("test-secret", time.Hour)))
	t.Cleanup(server.Close)
	return server
}

func TestHealthz(t *testing.T) {
	server := setupServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("expected 200 ok, got %d %q", resp.StatusCode, body)
	}
}

func TestDemoAdminCanDecideLoans(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	authClient := chamav1connect.NewAuthServiceClient(http.DefaultClient, server.URL)
	login, err := authClient.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: seed.AdminEmail, Password: seed.AdminPassword}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	loanClient := chamav1connect.NewLoanServiceClient(http.DefaultClient, server.URL)
	board, err := loanClient.GetLoanBoard(ctx, connect.NewRequest(&pb.GetLoanBoardRequest{}))
	if err != nil {
		t.Fatalf("GetLoanBoard failed: %v", err)
	}
	if len(board.Msg.Pending) != 2 {
		t.Fatalf("expected 2 pending demo loans, got %d", len(board.Msg.Pending))
	}

	req := connect.NewRequest(&pb.DecideLoanRequest{LoanId: board.Msg.Pending[0].Id, Decision: "approve"})
	req.Header().Set("Authorization", "Bearer "+login.Msg.Token)
	if _, err := loanClient.DecideLoan(ctx, req); err != nil {
		t.Fatalf("DecideLoan failed: %v", err)
	}

	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{
		`chama_loan_transitions_total{status="Approved"}`,
		`chama_rpc_total{code="ok",procedure="/chama.v1.LoanService/DecideLoan"}`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestInsightsDisabledWithoutScorer(t *testing.T) {
	server := setupServer(t)
	client := chamav1connect.NewGamificationServiceClient(http.DefaultClient, server.URL)

	resp, err := client.GetInsights(context.Background(), connect.NewRequest(&pb.GetInsightsRequest{}))
	if err != nil {
		t.Fatalf("GetInsights failed: %v", err)
	}
	if resp.Msg.Available {
		t.Error("expected no insights without a scorer")
	}
}
