package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	// Register creates an employee account and returns a token pair.
	Register(ctx context.Context, req RegisterRequest, session SessionTrackingRequest) (TokenResponse, error)

	// Login verifies credentials and returns a token pair.
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new pair.
	RefreshToken(ctx context.Context, refreshToken string, session SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// ChangePassword verifies the current password before storing a new hash.
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}
