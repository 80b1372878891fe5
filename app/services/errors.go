package services

import (
	"errors"

	"github.com/Beto2203/feedback-backend/app/auth"
)

var (
	// ErrValidation marks a missing, short, or empty required field.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateUsername marks a registration against a taken username.
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so a caller cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated marks a request with missing or invalid credentials.
	ErrNotAuthenticated = errors.New("token missing or invalid")

	// ErrWrongUser marks a valid identity acting on a resource it does not own.
	ErrWrongUser = errors.New("wrong user")
)

// assertOwner enforces the only-the-creating-user-may-mutate rule. Ids are
// compared as canonical strings regardless of where they came from.
func assertOwner(authorID string, identity auth.Identity) error {
	if identity.UserID == "" {
		return ErrNotAuthenticated
	}
	if authorID != identity.UserID {
		return ErrWrongUser
	}
	return nil
}
