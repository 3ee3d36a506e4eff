package service

import (
	"context"
	"time"
)

type RateLimiter interface {
	// Allow reports whether one more request under key fits in the window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
