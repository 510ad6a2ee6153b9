package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
	apperrors "github.com/allisson/resumevault/internal/errors"
)

var errEmptySubject = apperrors.Wrap(apperrors.ErrInvalidInput, "token subject is empty")

// tokenService implements TokenService with HS256 JWTs.
type tokenService struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
	parser *jwt.Parser
}

// NewTokenService creates a TokenService signing with the secret from km.
// Tokens live for ttl; clock is the time source for both issue and verify.
func NewTokenService(km *cryptoDomain.KeyMaterial, ttl time.Duration, clock clockwork.Clock) TokenService {
	return &tokenService{
		secret: km.SigningSecret(),
		ttl:    ttl,
		clock:  clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(clock.Now),
			jwt.WithExpirationRequired(),
		),
	}
}

// Issue signs a token for subject. The expiry is truncated to whole seconds,
// matching the precision of the exp claim.
func (t *tokenService) Issue(subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errEmptySubject
	}

	now := t.clock.Now().UTC().Truncate(time.Second)
	expiresAt := now.Add(t.ttl)

	claims := jwt.RegisteredClaims{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}
	return signed, expiresAt, nil
}

// Verify parses plainToken and validates signature, algorithm and expiry.
func (t *tokenService) Verify(plainToken string) (*authDomain.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := t.parser.ParseWithClaims(plainToken, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrTokenExpired
		}
		return nil, authDomain.ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return nil, authDomain.ErrTokenInvalid
	}

	out := &authDomain.Token{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
