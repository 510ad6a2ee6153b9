// Package http provides the authentication HTTP layer: the bearer token gate,
// the login handler and rate limiting.
package http

import (
	"context"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
)

// subjectKey is a context key type for storing the verified token.
type subjectKey struct{}

// WithToken stores a verified token in the context.
func WithToken(ctx context.Context, token *authDomain.Token) context.Context {
	return context.WithValue(ctx, subjectKey{}, token)
}

// GetToken retrieves the verified token from the context.
func GetToken(ctx context.Context) (*authDomain.Token, bool) {
	token, ok := ctx.Value(subjectKey{}).(*authDomain.Token)
	return token, ok && token != nil
}

// GetSubject returns the verified subject, or "" and false when the request
// did not pass through AuthenticationMiddleware.
func GetSubject(ctx context.Context) (string, bool) {
	token, ok := GetToken(ctx)
	if !ok {
		return "", false
	}
	return token.Subject, true
}
