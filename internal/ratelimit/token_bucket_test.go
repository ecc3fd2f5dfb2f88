package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/rentcatalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptStub answers EVALSHA with a canned reply.
type scriptStub struct {
	redis.Scripter
	reply []interface{}
	err   error
	keys  []string
}

func (s *scriptStub) EvalSha(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	s.keys = keys
	return redis.NewCmdResult(s.reply, s.err)
}

func (s *scriptStub) Eval(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return s.EvalSha(ctx, "", keys, args...)
}

func TestAllowParsesScriptReply(t *testing.T) {
	stub := &scriptStub{reply: []interface{}{int64(1), "4.5", int64(1700000000000)}}
	res, err := NewTokenBucket(stub).Allow(context.Background(), "k", 1, 10)
	require.NoError(t, err)

	assert.True(t, res.Allowed)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 4, res.Remaining)
	assert.Zero(t, res.RetryAfter)
	assert.Equal(t, []string{"k"}, stub.keys)
}

func TestAllowDeniedComputesRetryAfter(t *testing.T) {
	stub := &scriptStub{reply: []interface{}{int64(0), "0.25", int64(1700000000000)}}
	res, err := NewTokenBucket(stub).Allow(context.Background(), "k", 0.5, 5)
	require.NoError(t, err)

	assert.False(t, res.Allowed)
	assert.Equal(t, 1500*time.Millisecond, res.RetryAfter)
}

func TestAllowErrors(t *testing.T) {
	var nilBucket *TokenBucket
	_, err := nilBucket.Allow(context.Background(), "k", 1, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)

	bucket := NewTokenBucket(&scriptStub{reply: []interface{}{int64(1)}})
	_, err = bucket.Allow(context.Background(), "k", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = bucket.Allow(context.Background(), "", 1, 1)
	assert.Error(t, err)
	_, err = bucket.Allow(context.Background(), "k", 0, 1)
	assert.Error(t, err)

	failing := NewTokenBucket(&scriptStub{err: errors.New("connection refused")})
	_, err = failing.Allow(context.Background(), "k", 1, 1)
	assert.EqualError(t, err, "connection refused")
}

func TestBucketTTL(t *testing.T) {
	assert.Equal(t, 20*time.Second, bucketTTL(1, 10))
	assert.Equal(t, time.Second, bucketTTL(100, 1))
	assert.Equal(t, time.Second, bucketTTL(0, 1))
}

func TestLoginLimiter(t *testing.T) {
	var disabled *LoginLimiter
	res, err := disabled.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	stub := &scriptStub{reply: []interface{}{int64(0), "0", int64(0)}}
	limiter := NewLoginLimiterWithClient(stub, 1, 3)
	res, err = limiter.Allow(context.Background(), " 10.0.0.1 ")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, []string{"rentcatalog:token:client:10.0.0.1"}, stub.keys)
}

func TestNewLoginLimiterConfig(t *testing.T) {
	limiter, err := NewLoginLimiter(nil, config.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, limiter)
	assert.False(t, limiter.Enabled())

	_, err = NewLoginLimiter(nil, config.Config{RateLimit: config.RateLimitConfig{Enabled: true}}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewLoginLimiter(nil, config.Config{RateLimit: config.RateLimitConfig{
		Enabled:   true,
		RedisAddr: "localhost:6379",
	}}, zap.NewNop())
	assert.Error(t, err)
}
