package server

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/rentcatalog/internal/observability/context"
	"github.com/smallbiznis/rentcatalog/internal/observability/logger"
	"go.uber.org/zap"
)

const (
	contextUserKey = "user"
	bearerPrefix   = "bearer "
)

// BearerAuthRequired resolves the Authorization header to a user and stores
// it on the gin context.
func (s *Server) BearerAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		user, err := s.authsvc.CurrentUser(c.Request.Context(), raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(obscontext.WithActor(c.Request.Context(), user.Username))
		c.Set(contextUserKey, user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// TokenRateLimit throttles credential exchanges per client address. Limiter
// outages fail open.
func (s *Server) TokenRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.loginLimiter.Enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		res, err := s.loginLimiter.Allow(ctx, c.ClientIP())
		if err != nil {
			logger.FromContext(ctx).Warn("token rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !res.Allowed {
			endpoint := normalizeRateLimitEndpoint(c)
			logger.FromContext(ctx).Warn("token rate limit exceeded", zap.String("endpoint", endpoint))
			s.obsMetrics.RecordRateLimitDenied(ctx, endpoint)

			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(res.RetryAfter.Seconds())))
			AbortWithError(c, ErrRateLimited)
			return
		}

		c.Next()
	}
}

func retryAfterSeconds(seconds float64) int {
	return max(int(math.Ceil(seconds)), 1)
}

func normalizeRateLimitEndpoint(c *gin.Context) string {
	if c == nil {
		return "unknown"
	}
	endpoint := strings.TrimSpace(c.FullPath())
	if endpoint == "" {
		endpoint = strings.TrimSpace(c.Request.URL.Path)
	}
	if endpoint == "" {
		endpoint = "unknown"
	}
	return endpoint
}
