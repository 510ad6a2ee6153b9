package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
	authService "github.com/allisson/resumevault/internal/auth/service"
	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
)

// mockTokenService is a mock implementation of TokenService for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(subject string) (string, time.Time, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Verify(plainToken string) (*authDomain.Token, error) {
	args := m.Called(plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Token), args.Error(1)
}

// mockCredentialService is a mock implementation of CredentialService for testing.
type mockCredentialService struct {
	mock.Mock
}

func (m *mockCredentialService) Matches(username, password string) bool {
	return m.Called(username, password).Bool(0)
}

func TestTokenUseCase_Issue(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Success_ValidCredentials", func(t *testing.T) {
		creds := &mockCredentialService{}
		tokens := &mockTokenService{}
		uc := NewTokenUseCase(creds, tokens)

		creds.On("Matches", "naval.ravikant", "05111974").Return(true).Once()
		tokens.On("Issue", "naval.ravikant").Return("signed", expiresAt, nil).Once()

		out, err := uc.Issue(ctx, &authDomain.IssueTokenInput{Username: "naval.ravikant", Password: "05111974"})
		require.NoError(t, err)
		assert.Equal(t, "signed", out.PlainToken)
		assert.Equal(t, expiresAt, out.ExpiresAt)
		creds.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		creds := &mockCredentialService{}
		tokens := &mockTokenService{}
		uc := NewTokenUseCase(creds, tokens)

		creds.On("Matches", "naval.ravikant", "nope").Return(false).Once()

		out, err := uc.Issue(ctx, &authDomain.IssueTokenInput{Username: "naval.ravikant", Password: "nope"})
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Nil(t, out)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestTokenUseCase_LoginThenAuthenticate(t *testing.T) {
	ctx := context.Background()
	km, err := cryptoDomain.NewKeyMaterial([]byte("0123456789abcdef0123456789abcdef"), []byte("jwt-secret"))
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	creds, err := authService.NewCredentialService("naval.ravikant", "05111974")
	require.NoError(t, err)
	uc := NewTokenUseCase(creds, authService.NewTokenService(km, 24*time.Hour, clock))

	out, err := uc.Issue(ctx, &authDomain.IssueTokenInput{Username: "naval.ravikant", Password: "05111974"})
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(24*time.Hour), out.ExpiresAt)

	token, err := uc.Authenticate(ctx, out.PlainToken)
	require.NoError(t, err)
	assert.Equal(t, "naval.ravikant", token.Subject)

	clock.Advance(24 * time.Hour)
	_, err = uc.Authenticate(ctx, out.PlainToken)
	assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
}
