// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCTotal counts RPCs by procedure and Connect code.
	RPCTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chama_rpc_total",
		Help: "Total RPCs by procedure and result code",
	}, []string{"procedure", "code"})

	// RPCDuration tracks RPC latency.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chama_rpc_duration_seconds",
		Help:    "RPC duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	}, []string{"procedure"})

	// LoanTransitions counts loan status changes by target status.
	LoanTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chama_loan_transitions_total",
		Help: "Loan status transitions by resulting status",
	}, []string{"status"})

	// GamificationCalls counts insight requests by outcome
	// (no_data, cache_hit, scored, disabled, error).
	GamificationCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chama_gamification_calls_total",
		Help: "Gamification insight requests by outcome",
	}, []string{"outcome"})

	// ScorerDuration tracks the latency of external scoring calls.
	ScorerDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chama_scorer_duration_seconds",
		Help:    "External scorer call duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)

// Gamification outcomes.
const (
	OutcomeNoData   = "no_data"
	OutcomeCacheHit = "cache_hit"
	OutcomeScored   = "scored"
	OutcomeDisabled = "disabled"
	OutcomeError    = "error"
)
