package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/finance-service/internal/models"
)

// TokenSubject identifies the single account tokens are issued for
const TokenSubject = "admin"

// IssueToken checks password against the configured bcrypt hash and returns a signed JWT
func (s *Service) IssueToken(password string) (string, time.Time, error) {
	if !s.config.AuthEnabled {
		return "", time.Time{}, fmt.Errorf("authentication is disabled: %w", models.ErrNotFound)
	}
	if password == "" {
		return "", time.Time{}, models.NewFieldError("password", "is required")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(password)); err != nil {
		s.log.Warn("Rejected token request: invalid credentials")
		return "", time.Time{}, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
	}

	expiresAt := s.now().Add(s.config.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   TokenSubject,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info("Token issued")
	return tokenString, expiresAt, nil
}
