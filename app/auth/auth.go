package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Beto2203/feedback-backend/app/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers every verification failure: bad signature,
	// malformed payload, wrong algorithm, expiry.
	ErrInvalidToken = errors.New("token missing or invalid")
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID   string
	Username string
}

type claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Service issues and verifies bearer tokens for the HTTP layer.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an auth service signing with the given secret.
func NewService(secret []byte, tokenTTL time.Duration) *Service {
	return &Service{secret: secret, tokenTTL: tokenTTL}
}

// IssueToken signs a token encoding the user's canonical id and username.
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		UserID:   user.ID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token. Any failure resolves to
// ErrInvalidToken; verification never surfaces an unhandled fault.
func (s *Service) Verify(token string) (Identity, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	if parsed.UserID == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: parsed.UserID, Username: parsed.Username}, nil
}

// ExtractBearer pulls the token out of the Authorization header. The
// "Bearer " prefix is matched case-insensitively; a missing or malformed
// header yields an empty token, not an error.
func ExtractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
