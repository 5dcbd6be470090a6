package db

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

var pingRetryDelay = 300 * time.Millisecond

// pingWithRetry calls ping up to attempts times, logging each failed attempt.
func pingWithRetry(ctx context.Context, name string, attempts uint, ping func(context.Context) error, logger *zap.SugaredLogger) error {
	if attempts == 0 {
		attempts = 1
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	err := retry.Do(
		func() error { return ping(ctx) },
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(pingRetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Warnw("failed ping to "+name, "attempt", attempt+1, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("ping %s: %w", name, err)
	}
	return nil
}
