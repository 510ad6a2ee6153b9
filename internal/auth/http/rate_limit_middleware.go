package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/resumevault/internal/errors"
	"github.com/allisson/resumevault/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = time.Hour
)

// limiterStore holds one token bucket per key and evicts idle ones.
type limiterStore struct {
	limiters sync.Map // map[string]*limiterEntry
	rps      float64
	burst    int
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// newLimiterStore creates a store whose cleanup goroutine exits when ctx is done.
func newLimiterStore(ctx context.Context, rps float64, burst int) *limiterStore {
	s := &limiterStore{rps: rps, burst: burst}
	go s.cleanupStale(ctx, limiterCleanupInterval)
	return s
}

func (s *limiterStore) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	if actual, loaded := s.limiters.LoadOrStore(key, entry); loaded {
		entry = actual.(*limiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
	}
	return entry.limiter
}

func (s *limiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			threshold := time.Now().Add(-limiterIdleTTL)
			s.limiters.Range(func(key, value any) bool {
				entry := value.(*limiterEntry)
				entry.mu.Lock()
				stale := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if stale {
					s.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

// reject writes 429 with a Retry-After header computed from the bucket.
func reject(c *gin.Context, limiter *rate.Limiter, message string) int {
	reservation := limiter.Reserve()
	retryAfter := int(reservation.Delay().Seconds()) + 1
	reservation.Cancel()

	c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":   "rate_limit_exceeded",
		"message": message,
	})
	c.Abort()
	return retryAfter
}

// RateLimitMiddleware enforces per-subject rate limiting on authenticated routes.
//
// It must run after AuthenticationMiddleware. The limiter cleanup goroutine
// stops when ctx is cancelled.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		subject, ok := GetSubject(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no authenticated subject in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		limiter := store.getLimiter(subject)
		if !limiter.Allow() {
			retryAfter := reject(c, limiter, "Too many requests. Please retry after the specified delay.")
			logger.Debug("rate limit exceeded",
				slog.String("subject", subject),
				slog.Int("retry_after", retryAfter))
			return
		}

		c.Next()
	}
}
