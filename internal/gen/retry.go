package gen

import (
	"context"
	"errors"
	"math/rand"

	"github.com/cenkalti/backoff/v5"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// GenerateWithRetry regenerates with derived seeds (seed, seed+1, ...) until
// generation succeeds or maxAttempts runs out. Generation failures such as
// ErrNoRooms or ErrDisconnected are recoverable with a fresh seed;
// configuration errors are permanent and returned immediately.
func GenerateWithRetry(ctx context.Context, cfg Config, seed int64, maxAttempts uint) (*world.Level, error) {
	attempt := int64(0)

	operation := func() (*world.Level, error) {
		rng := rand.New(rand.NewSource(seed + attempt))
		attempt++

		level, err := Generate(ctx, cfg, rng)
		if err != nil {
			if errors.Is(err, ErrInvalidConfig) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return level, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(maxAttempts),
	)
}
