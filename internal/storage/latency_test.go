package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmynk/chama/internal/storage"
	"github.com/mmynk/chama/internal/storage/memory"
)

func TestWithLatency_ZeroReturnsSameStore(t *testing.T) {
	inner := memory.New()
	if got := storage.WithLatency(inner, 0, 0); got != storage.Store(inner) {
		t.Error("expected zero latency to return the wrapped store unchanged")
	}
}

func TestWithLatency_Delays(t *testing.T) {
	store := storage.WithLatency(memory.New(), 20*time.Millisecond, 0)

	start := time.Now()
	if _, err := store.ListChamas(context.Background()); err != nil {
		t.Fatalf("ListChamas failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("expected at least 20ms delay, got %v", elapsed)
	}
}

func TestWithLatency_HonoursCancellation(t *testing.T) {
	store := storage.WithLatency(memory.New(), time.Hour, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := store.ListLoans(ctx, "")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
}
