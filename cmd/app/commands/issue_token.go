package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	authService "github.com/allisson/resumevault/internal/auth/service"
)

// issuedToken is the JSON output of RunIssueToken.
type issuedToken struct {
	Subject   string    `json:"subject"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RunIssueToken signs a bearer token for subject without a login round trip.
// Output format is "text" or "json".
func RunIssueToken(
	tokenService authService.TokenService,
	logger *slog.Logger,
	writer io.Writer,
	subject string,
	format string,
) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return errors.New("subject is required")
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	plainToken, expiresAt, err := tokenService.Issue(subject)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("token issued", slog.String("subject", subject), slog.Time("expires_at", expiresAt))

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(issuedToken{Subject: subject, Token: plainToken, ExpiresAt: expiresAt.UTC()})
	}

	_, _ = fmt.Fprintf(writer, "Subject:    %s\n", subject)
	_, _ = fmt.Fprintf(writer, "Expires at: %s\n", expiresAt.UTC().Format(time.RFC3339))
	_, _ = fmt.Fprintf(writer, "Token:      %s\n", plainToken)
	return nil
}
