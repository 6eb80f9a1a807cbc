package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/siteledger/siteledger-backend-go/internal/domain/auth"
	"github.com/siteledger/siteledger-backend-go/internal/domain/user"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo            user.UserRepository
	jwtService          jwt.Service
	bootstrapAdminEmail string
	adminAccessCode     string
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	bootstrapAdminEmail string,
	adminAccessCode string,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:            userRepo,
		jwtService:          jwtService,
		bootstrapAdminEmail: bootstrapAdminEmail,
		adminAccessCode:     adminAccessCode,
	}
}

// SignIn implements auth.AuthService.
func (s *AuthServiceImpl) SignIn(ctx context.Context, req auth.SignInRequest) (auth.SignInResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SignInResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) && s.isBootstrapAdmin(req.Email) {
			return s.bootstrapAdmin(ctx, req)
		}
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SignInResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SignInResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.SignInResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// isBootstrapAdmin reports whether the email is the configured first admin.
func (s *AuthServiceImpl) isBootstrapAdmin(email string) bool {
	return strings.EqualFold(email, s.bootstrapAdminEmail)
}

// bootstrapAdmin provisions the admin account on its very first sign-in. The
// password supplied on that sign-in becomes the admin password.
func (s *AuthServiceImpl) bootstrapAdmin(ctx context.Context, req auth.SignInRequest) (auth.SignInResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.SignInResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return auth.SignInResponse{}, fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	slog.Info("bootstrapped admin account", "email", created.Email)

	return s.issueTokens(created)
}

// RegisterViewer implements auth.AuthService.
func (s *AuthServiceImpl) RegisterViewer(ctx context.Context, req auth.RegisterViewerRequest) (auth.SignInResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SignInResponse{}, err
	}

	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(s.adminAccessCode)) != 1 {
		return auth.SignInResponse{}, auth.ErrInvalidAccessCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.SignInResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleViewer,
	})
	if err != nil {
		return auth.SignInResponse{}, err
	}

	return s.issueTokens(created)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.SignInResponse, error) {
	if refreshToken == "" {
		return auth.SignInResponse{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.SignInResponse{}, auth.ErrInvalidToken
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.SignInResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.SignInResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.SignInResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.SignInResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.SignInResponse{}, auth.ErrInvalidToken
	}

	// Rotate: the old refresh token dies with the new issue.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// SSEToken implements auth.AuthService.
func (s *AuthServiceImpl) SSEToken(ctx context.Context, userID string) (string, int, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", 0, auth.ErrInvalidToken
	}
	return s.jwtService.GenerateSSEToken(userID)
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.SignInResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.SignInResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.SignInResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.SignInResponse{
		UserID:                u.ID,
		Email:                 u.Email,
		Role:                  string(u.Role),
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
