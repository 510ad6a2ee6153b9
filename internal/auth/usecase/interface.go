// Package usecase defines business logic interfaces for authentication.
package usecase

import (
	"context"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
)

// TokenUseCase handles login and bearer token authentication.
type TokenUseCase interface {
	// Issue checks the login credentials and returns a signed bearer token.
	// Returns ErrInvalidCredentials on any mismatch.
	Issue(
		ctx context.Context,
		issueTokenInput *authDomain.IssueTokenInput,
	) (*authDomain.IssueTokenOutput, error)

	// Authenticate verifies a plain bearer token and returns its claims.
	Authenticate(ctx context.Context, plainToken string) (*authDomain.Token, error)
}
