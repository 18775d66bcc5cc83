package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// AuthService fronts the backend's credential and account routes. The portal
// never sees password hashes; the backend is the only credential authority.
type AuthService struct {
	api    ports.AuthAPI
	logger zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, logger zerolog.Logger) *AuthService {
	return &AuthService{api: api, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	if username == "" {
		return nil, domain.MissingField("username")
	}
	if password == "" {
		return nil, domain.MissingField("password")
	}

	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", result.UserID).Str("role", result.Role).Msg("login accepted")
	return result, nil
}

func (s *AuthService) Signup(ctx context.Context, user domain.User) (string, error) {
	if user.Username == "" {
		return "", domain.MissingField("username")
	}
	if user.Password == "" {
		return "", domain.MissingField("password")
	}
	if user.Role == "" {
		return "", domain.MissingField("role")
	}

	status, err := s.api.Signup(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("signup accepted")
	return status, nil
}

func (s *AuthService) Agents(ctx context.Context) ([]domain.User, error) {
	return s.api.Agents(ctx)
}
