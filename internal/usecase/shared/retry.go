package shared

import (
	"context"
	"log/slog"
	"time"

	"card-drop/internal/pkg/errs"
)

var ErrMaxRetriesExceeded = errs.New("operation failed after max retries")

const DefaultMaxRetries = 3

// RunWithRetry re-runs fn from scratch while it fails with a transient error.
func RunWithRetry[T any](ctx context.Context, maxRetries int, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		if !isRetryableError(err) {
			return result, err
		}

		if attempt == maxRetries {
			slog.Error("operation failed after max retries",
				"attempts", attempt+1,
				"error", err)
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := time.Duration(attempt+1) * 100 * time.Millisecond
		slog.Warn("retrying operation due to retryable error",
			"attempt", attempt+1,
			"wait_time", waitTime,
			"error", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return zero, ErrMaxRetriesExceeded
}

func isRetryableError(err error) bool {
	return errs.IsTransient(err)
}

func WithDefaultRetry[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	return RunWithRetry(ctx, DefaultMaxRetries, fn)
}
