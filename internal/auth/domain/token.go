// Package domain defines the authentication models: bearer tokens and login input/output.
package domain

import (
	"time"
)

// Token is a verified bearer token. Tokens are stateless; nothing is persisted.
type Token struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssueTokenInput carries login credentials.
type IssueTokenInput struct {
	Username string
	Password string //nolint:gosec // compared against a hash, never stored
}

// IssueTokenOutput carries a freshly issued bearer token.
type IssueTokenOutput struct {
	PlainToken string
	ExpiresAt  time.Time
}
