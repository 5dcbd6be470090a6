package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	pingRetryDelay = time.Millisecond
}

func TestPingWithRetry_RecoversAfterFailures(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	calls := 0
	ping := func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}

	err := pingWithRetry(context.Background(), "mongo", 5, ping, zap.New(core).Sugar())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, logs.FilterMessage("failed ping to mongo").Len())
}

func TestPingWithRetry_GivesUp(t *testing.T) {
	refused := errors.New("connection refused")

	calls := 0
	ping := func(context.Context) error {
		calls++
		return refused
	}

	err := pingWithRetry(context.Background(), "postgres", 3, ping, nil)
	require.ErrorIs(t, err, refused)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "ping postgres")
}

func TestPingWithRetry_ZeroAttemptsPingsOnce(t *testing.T) {
	calls := 0
	err := pingWithRetry(context.Background(), "redis", 0, func(context.Context) error {
		calls++
		return nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
