package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
	apperrors "github.com/allisson/resumevault/internal/errors"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestKeyMaterial(t *testing.T, secret string) *cryptoDomain.KeyMaterial {
	t.Helper()
	km, err := cryptoDomain.NewKeyMaterial([]byte("0123456789abcdef0123456789abcdef"), []byte(secret))
	require.NoError(t, err)
	return km
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	svc := NewTokenService(newTestKeyMaterial(t, "signing-secret"), 24*time.Hour, clock)

	plain, expiresAt, err := svc.Issue("naval.ravikant")
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(24*time.Hour), expiresAt)
	assert.Len(t, strings.Split(plain, "."), 3)

	token, err := svc.Verify(plain)
	require.NoError(t, err)
	assert.Equal(t, "naval.ravikant", token.Subject)
	assert.Equal(t, expiresAt, token.ExpiresAt.UTC())
	assert.Equal(t, testNow, token.IssuedAt.UTC())
}

func TestTokenService_Expiry(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	svc := NewTokenService(newTestKeyMaterial(t, "signing-secret"), time.Hour, clock)

	plain, _, err := svc.Issue("raj")
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	_, err = svc.Verify(plain)
	assert.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = svc.Verify(plain)
	assert.ErrorIs(t, err, authDomain.ErrTokenExpired, "token is invalid at exactly its expiry")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	clock.Advance(24 * time.Hour)
	_, err = svc.Verify(plain)
	assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
}

func TestTokenService_Forged(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	svc := NewTokenService(newTestKeyMaterial(t, "signing-secret"), time.Hour, clock)
	other := NewTokenService(newTestKeyMaterial(t, "another-secret"), time.Hour, clock)

	forged, _, err := other.Issue("raj")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.Verify(forged)
		assert.ErrorIs(t, err, authDomain.ErrTokenInvalid)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, tok := range []string{"", "abc", "a.b.c", "Bearer x"} {
			_, err := svc.Verify(tok)
			assert.ErrorIs(t, err, authDomain.ErrTokenInvalid, tok)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		plain, _, err := svc.Issue("raj")
		require.NoError(t, err)
		parts := strings.Split(plain, ".")
		suffix := "AA"
		if strings.HasSuffix(parts[1], suffix) {
			suffix = "BB"
		}
		parts[1] = parts[1][:len(parts[1])-2] + suffix
		_, err = svc.Verify(strings.Join(parts, "."))
		assert.ErrorIs(t, err, authDomain.ErrTokenInvalid)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "raj",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Verify(unsigned)
		assert.ErrorIs(t, err, authDomain.ErrTokenInvalid)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "raj"}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("signing-secret"))
		require.NoError(t, err)
		_, err = svc.Verify(signed)
		assert.ErrorIs(t, err, authDomain.ErrTokenInvalid)
	})

	t.Run("expired and forged are distinguishable", func(t *testing.T) {
		_, errForged := svc.Verify(forged)
		assert.NotErrorIs(t, errForged, authDomain.ErrTokenExpired)
	})
}

func TestTokenService_EmptySubject(t *testing.T) {
	svc := NewTokenService(newTestKeyMaterial(t, "s"), time.Hour, clockwork.NewFakeClockAt(testNow))
	_, _, err := svc.Issue("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCredentialService_Matches(t *testing.T) {
	svc, err := NewCredentialService("naval.ravikant", "05111974")
	require.NoError(t, err)

	assert.True(t, svc.Matches("naval.ravikant", "05111974"))
	assert.False(t, svc.Matches("naval.ravikant", "wrong"))
	assert.False(t, svc.Matches("someone.else", "05111974"))
	assert.False(t, svc.Matches("", ""))
}
