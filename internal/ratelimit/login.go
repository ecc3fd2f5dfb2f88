package ratelimit

import (
	"context"
	"errors"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/rentcatalog/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const keyTokenByClient = "rentcatalog:token:client:"

// LoginLimiter throttles credential exchanges per client address. A nil
// limiter allows everything.
type LoginLimiter struct {
	bucket *TokenBucket
	rate   float64
	burst  int
}

// NewLoginLimiter returns nil when rate limiting is disabled.
func NewLoginLimiter(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*LoginLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.TokenRate <= 0 || limitCfg.TokenBurst <= 0 {
		return nil, errors.New("token endpoint rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})
	if lc != nil {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					log.Warn("rate limit redis unreachable", zap.String("addr", addr), zap.Error(err))
				}
				return nil
			},
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
	}

	return NewLoginLimiterWithClient(client, limitCfg.TokenRate, limitCfg.TokenBurst), nil
}

// NewLoginLimiterWithClient builds a limiter over an existing script runner.
func NewLoginLimiterWithClient(client redis.Scripter, rate float64, burst int) *LoginLimiter {
	return &LoginLimiter{
		bucket: NewTokenBucket(client),
		rate:   rate,
		burst:  burst,
	}
}

func (l *LoginLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

func (l *LoginLimiter) Allow(ctx context.Context, clientIP string) (*Result, error) {
	if !l.Enabled() {
		return &Result{Allowed: true}, nil
	}
	return l.bucket.Allow(ctx, keyTokenByClient+strings.TrimSpace(clientIP), l.rate, l.burst)
}
