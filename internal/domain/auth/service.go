package auth

import "context"

type AuthService interface {
	RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	// LoginWithGoogle exchanges a Google OAuth code for a session of an
	// existing account matched by email.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
}
