package dto

import (
	"time"
)

// LoginResponse contains a freshly issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
