package auth

import "context"

type AuthService interface {
	// LoginWithPIN authenticates a worker by their 5-digit employee code.
	LoginWithPIN(ctx context.Context, req PINLoginRequest) (TokenResponse, error)

	// Login authenticates reviewers (supervisor/admin) by email and password.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
