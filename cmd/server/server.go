package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/config"
	"github.com/mmynk/chama/internal/gamification"
	"github.com/mmynk/chama/internal/loans"
	"github.com/mmynk/chama/internal/metrics"
	"github.com/mmynk/chama/internal/middleware"
	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/service"
	"github.com/mmynk/chama/internal/storage"
	"github.com/mmynk/chama/pkg/proto/chamav1connect"
)

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := seedIfEmpty(ctx, store); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	scorer, err := newScorer(ctx, cfg)
	if err != nil {
		return err
	}
	opts := []gamification.Option{
		gamification.WithTimeout(cfg.GamificationTimeout),
		gamification.WithRateLimit(cfg.GamificationRate, 1),
	}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis unavailable, insight cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			opts = append(opts, gamification.WithCache(gamification.NewRedisCache(client, cfg.InsightTTL)))
			slog.Info("Insight cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.InsightTTL)
		}
	}
	adapter := gamification.NewAdapter(store, scorer, opts...)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           newHandler(store, adapter, auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newScorer(ctx context.Context, cfg *config.Config) (gamification.Scorer, error) {
	switch cfg.Scorer {
	case config.ScorerOpenAI:
		return gamification.NewOpenAIScorer(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case config.ScorerGemini:
		return gamification.NewGeminiScorer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	slog.Info("No scorer configured, gamification insights disabled")
	return nil, nil
}

// newHandler mounts every Connect service plus /metrics and /healthz.
func newHandler(store storage.Store, adapter *gamification.Adapter, jwtManager *auth.JWTManager) http.Handler {
	workflow := loans.NewWorkflow(store)
	workflow.Subscribe(func(loan models.Loan) {
		metrics.LoanTransitions.WithLabelValues(string(loan.Status)).Inc()
	})

	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(chamav1connect.NewChamaServiceHandler(service.NewChamaService(store, adapter), interceptors))
	mux.Handle(chamav1connect.NewLoanServiceHandler(service.NewLoanService(store, workflow), interceptors))
	mux.Handle(chamav1connect.NewGamificationServiceHandler(service.NewGamificationService(store, adapter), interceptors))
	mux.Handle(chamav1connect.NewAuthServiceHandler(
		service.NewAuthService(auth.NewPasswordAuthenticator(store), store, jwtManager, slog.Default()),
		interceptors,
	))

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := store.ListChamas(r.Context()); err != nil {
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	return h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
