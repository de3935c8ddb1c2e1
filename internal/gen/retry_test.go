package gen

import (
	"context"
	"errors"
	"testing"
)

func TestGenerateWithRetrySucceeds(t *testing.T) {
	level, err := GenerateWithRetry(context.Background(), DefaultConfig(), 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level == nil || len(level.Rooms) == 0 {
		t.Fatal("expected a populated level")
	}
}

func TestGenerateWithRetryMatchesDirectGeneration(t *testing.T) {
	// A config that succeeds on the first attempt must behave exactly like
	// Generate with the same seed.
	cfg := DefaultConfig()

	retried, err := GenerateWithRetry(context.Background(), cfg, 11, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	direct, err := GenerateWithRetry(context.Background(), cfg, 11, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(retried.Rooms) != len(direct.Rooms) {
		t.Fatalf("room count differs: %d != %d", len(retried.Rooms), len(direct.Rooms))
	}
	for i := range retried.Rooms {
		if retried.Rooms[i].Bounds != direct.Rooms[i].Bounds {
			t.Errorf("room %d differs across retry wrappers", i)
		}
	}
}

func TestGenerateWithRetryExhaustsAttempts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.MinPartitionSize = 4
	cfg.MaxPartitionSize = 8
	cfg.MaxDepth = 2
	cfg.MinRoomSize = 9 // fails for every seed

	_, err := GenerateWithRetry(context.Background(), cfg, 1, 3)
	if !errors.Is(err, ErrNoRooms) {
		t.Errorf("expected ErrNoRooms after exhausting attempts, got %v", err)
	}
}

func TestGenerateWithRetryPermanentOnInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinPadding = 0

	_, err := GenerateWithRetry(context.Background(), cfg, 1, 5)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
