package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ijara-backend/internal/config"
	"ijara-backend/internal/logger"
	"ijara-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	adminUser    string
	passwordHash string
	tokens       security.TokenManager
}

func NewAuthService(cfg config.AuthConfig, tokens security.TokenManager) AuthService {
	return &authService{
		adminUser:    cfg.AdminUser,
		passwordHash: cfg.AdminPasswordHash,
		tokens:       tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.adminUser {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Admin logged in", "username", username)
	return token, nil
}
