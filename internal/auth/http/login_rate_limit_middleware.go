package http

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// LoginRateLimitMiddleware enforces per-IP rate limiting on the login endpoint.
//
// The client address comes from c.ClientIP. Forwarding headers only count when
// the engine trusts the peer through SetTrustedProxies; with no trusted proxies
// the peer address is used, so X-Forwarded-For cannot mint fresh buckets.
func LoginRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiter := store.getLimiter(clientIP)
		if !limiter.Allow() {
			retryAfter := reject(c, limiter, "Too many login attempts from this IP. Please retry after the specified delay.")
			logger.Debug("login rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))
			return
		}

		c.Next()
	}
}
