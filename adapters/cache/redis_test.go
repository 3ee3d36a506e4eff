package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterScripter emulates the allow script with an in-memory counter per key.
type counterScripter struct {
	redis.Scripter
	counts map[string]int64
	ttls   map[string]any
	err    error
}

func (s *counterScripter) EvalSha(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	if s.err != nil {
		return redis.NewCmdResult(nil, s.err)
	}
	s.counts[keys[0]]++
	if s.counts[keys[0]] == 1 {
		s.ttls[keys[0]] = args[0]
	}
	return redis.NewCmdResult(s.counts[keys[0]], nil)
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	scripter := &counterScripter{counts: map[string]int64{}, ttls: map[string]any{}}
	limiter := NewRedisRateLimiter(scripter)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "1.2.3.4", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := limiter.Allow(ctx, "1.2.3.4", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "5.6.7.8", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "keys are counted separately")

	assert.Equal(t, int64(60000), scripter.ttls["rate:limit:1.2.3.4"])
}

func TestRedisRateLimiter_Error(t *testing.T) {
	limiter := NewRedisRateLimiter(&counterScripter{err: errors.New("connection refused")})

	ok, err := limiter.Allow(context.Background(), "k", 1, time.Second)

	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
}
