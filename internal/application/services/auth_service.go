package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

// ErrInvalidCredentials is returned for a wrong password and for any token
// that fails validation. Callers get no detail beyond that.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService gates the admin surface with a single shared password and
// short-lived signed tokens. There is one admin identity; this is a content
// management gate, not a user system.
type AuthService struct {
	passwordHash []byte
	secret       []byte
	lifetime     time.Duration
	logger       *logging.ChanneledLogger
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(passwordHash, secret string, lifetime time.Duration, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		lifetime:     lifetime,
		logger:       logger,
	}
}

// Enabled reports whether admin auth is configured. With no password hash the
// admin surface stays locked.
func (s *AuthService) Enabled() bool {
	return len(s.passwordHash) > 0 && len(s.secret) > 0
}

// Login checks the password and issues a signed token.
func (s *AuthService) Login(password string) (string, error) {
	if !s.Enabled() {
		s.logger.Auth().Warn("Login attempted with admin auth unconfigured")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Auth().Warn("Login rejected")
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := adminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	s.logger.Auth().Info("Admin login succeeded")
	return token, nil
}

// Validate checks a token's signature and expiry.
func (s *AuthService) Validate(tokenString string) error {
	if !s.Enabled() {
		return ErrInvalidCredentials
	}

	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Role != "admin" {
		return ErrInvalidCredentials
	}
	return nil
}
