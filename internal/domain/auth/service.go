package auth

import "context"

type AuthService interface {
	// SignIn authenticates a user. The configured bootstrap admin email is
	// provisioned as an admin account on its first sign-in.
	SignIn(ctx context.Context, req SignInRequest) (SignInResponse, error)

	// RegisterViewer self-registers a read-only account, gated by the shared
	// admin access code.
	RegisterViewer(ctx context.Context, req RegisterViewerRequest) (SignInResponse, error)

	Refresh(ctx context.Context, refreshToken string) (SignInResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// SSEToken issues a short-lived token for EventSource connections, which
	// cannot carry an Authorization header.
	SSEToken(ctx context.Context, userID string) (token string, expiresIn int, err error)
}
