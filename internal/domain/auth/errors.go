package auth

import "errors"

// Auth domain errors
var (
	// ErrInvalidCode deliberately covers both unknown and inactive accounts
	// so the login screen cannot distinguish them.
	ErrInvalidCode = errors.New("invalid employee code")

	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or missing token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrNoSession           = errors.New("no active session")
)
