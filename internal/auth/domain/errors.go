package domain

import (
	"github.com/allisson/resumevault/internal/errors"
)

// Authentication errors. All of them wrap ErrUnauthorized so that HTTP
// responses are identical; the distinct sentinels are for logs and tests.
var (
	// ErrInvalidCredentials indicates the username or password did not match.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrTokenExpired indicates a well-signed token past its expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenInvalid indicates a malformed, forged or wrongly signed token.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "token invalid")
)
