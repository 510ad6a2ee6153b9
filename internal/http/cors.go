package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsPreflightMaxAge is how long browsers may cache a preflight answer.
const corsPreflightMaxAge = 12 * time.Hour

// createCORSMiddleware returns the CORS middleware for browser front ends, or nil
// when CORS is disabled or allowOrigins yields nothing usable.
//
// The API authenticates with bearer tokens, never cookies, so credentials are not
// allowed and "*" may be used to accept any origin.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := splitList(allowOrigins)
	if len(origins) == 0 {
		logger.Warn("cors enabled without origins, middleware not installed")
		return nil
	}

	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Retry-After", "X-Request-ID"},
		MaxAge:        corsPreflightMaxAge,
	}
	if slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	// cors.New panics on an invalid configuration.
	if err := corsConfig.Validate(); err != nil {
		logger.Error("invalid cors configuration, middleware not installed",
			slog.Any("error", err),
			slog.Any("origins", origins))
		return nil
	}

	logger.Info("cors enabled",
		slog.Bool("all_origins", corsConfig.AllowAllOrigins),
		slog.Any("origins", corsConfig.AllowOrigins))

	return cors.New(corsConfig)
}

// splitList splits a comma-separated setting, dropping blank entries.
func splitList(value string) []string {
	var items []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
