package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteledger/siteledger-backend-go/internal/domain/auth"
	"github.com/siteledger/siteledger-backend-go/internal/domain/user"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/jwt"
	"github.com/siteledger/siteledger-backend-go/internal/repository/memory"
)

const (
	testAdminEmail = "owner@example.com"
	testAccessCode = "site-code-1"
)

func newTestService() auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(memory.NewUserRepository(), jwtService, testAdminEmail, testAccessCode)
}

func TestSignIn_BootstrapsAdminOnFirstSignIn(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.SignIn(ctx, auth.SignInRequest{Email: testAdminEmail, Password: "first-password"})
	require.NoError(t, err)

	assert.Equal(t, string(user.RoleAdmin), resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// The password from that first sign-in is now the admin password.
	_, err = svc.SignIn(ctx, auth.SignInRequest{Email: testAdminEmail, Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	again, err := svc.SignIn(ctx, auth.SignInRequest{Email: testAdminEmail, Password: "first-password"})
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, again.UserID)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.SignIn(context.Background(), auth.SignInRequest{
		Email:    "stranger@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterViewer_RequiresAccessCode(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterViewer(ctx, auth.RegisterViewerRequest{
		Email:           "viewer@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AccessCode:      "nope",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidAccessCode)

	resp, err := svc.RegisterViewer(ctx, auth.RegisterViewerRequest{
		Email:           "viewer@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AccessCode:      testAccessCode,
	})
	require.NoError(t, err)
	assert.Equal(t, string(user.RoleViewer), resp.Role)
}

func TestRegisterViewer_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := auth.RegisterViewerRequest{
		Email:           "viewer@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AccessCode:      testAccessCode,
	}

	_, err := svc.RegisterViewer(ctx, req)
	require.NoError(t, err)

	_, err = svc.RegisterViewer(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	signedIn, err := svc.SignIn(ctx, auth.SignInRequest{Email: testAdminEmail, Password: "first-password"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, signedIn.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, signedIn.UserID, refreshed.UserID)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token is revoked by the rotation.
	_, err = svc.Refresh(ctx, signedIn.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	signedIn, err := svc.SignIn(ctx, auth.SignInRequest{Email: testAdminEmail, Password: "first-password"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, signedIn.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	signedIn, err := svc.SignIn(ctx, auth.SignInRequest{Email: testAdminEmail, Password: "first-password"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, signedIn.RefreshToken))

	_, err = svc.Refresh(ctx, signedIn.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestSSEToken_UnknownUser(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.SSEToken(context.Background(), "missing")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
