package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Habib7442/apromax-admin/internal/apperrors"
	portsrepo "github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
	"github.com/Habib7442/apromax-admin/internal/middleware"
	"github.com/Habib7442/apromax-admin/internal/platform/config"
	"github.com/Habib7442/apromax-admin/internal/utils"
)

// authService verifies credentials against the backend's account API and
// issues this service's own JWT. The backend session opened during the check
// is closed before Login returns, so no server-side session state survives;
// the JWT is the only credential the panel holds afterwards.
type authService struct {
	cfg     *config.Config
	gateway portsrepo.AuthGateway
}

// NewAuthService creates the authentication service.
func NewAuthService(cfg *config.Config, gateway portsrepo.AuthGateway) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, gateway: gateway}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	secret, err := s.gateway.CreateEmailSession(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login rejected", slog.String("email", req.Email))
			return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}

	user, err := s.gateway.GetAccount(ctx, secret)
	// Close the verification session regardless of how the lookup went.
	if delErr := s.gateway.DeleteCurrentSession(ctx, secret); delErr != nil {
		logger.Warn("Failed to close verification session", slog.String("error", delErr.Error()))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	logger.Info("Admin logged in", slog.String("user_id", user.ID))
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.gateway.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}
