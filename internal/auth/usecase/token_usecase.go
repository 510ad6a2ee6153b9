// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
	authService "github.com/allisson/resumevault/internal/auth/service"
)

// tokenUseCase implements TokenUseCase over the stateless token and credential services.
type tokenUseCase struct {
	credentialService authService.CredentialService
	tokenService      authService.TokenService
}

// Issue verifies the credentials and signs a token whose subject is the username.
// A wrong username and a wrong password return the same error.
func (t *tokenUseCase) Issue(
	ctx context.Context,
	issueTokenInput *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	if !t.credentialService.Matches(issueTokenInput.Username, issueTokenInput.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	plainToken, expiresAt, err := t.tokenService.Issue(issueTokenInput.Username)
	if err != nil {
		return nil, err
	}

	return &authDomain.IssueTokenOutput{
		PlainToken: plainToken,
		ExpiresAt:  expiresAt,
	}, nil
}

// Authenticate verifies the token signature and expiry.
func (t *tokenUseCase) Authenticate(ctx context.Context, plainToken string) (*authDomain.Token, error) {
	return t.tokenService.Verify(plainToken)
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	credentialService authService.CredentialService,
	tokenService authService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		credentialService: credentialService,
		tokenService:      tokenService,
	}
}
