package services

import (
	"errors"
	"fmt"

	"github.com/Beto2203/feedback-backend/app/auth"
	"github.com/Beto2203/feedback-backend/app/models"
	"github.com/Beto2203/feedback-backend/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// UserService handles registration and login
type UserService struct {
	userRepo repositories.UserRepository
	auth     *auth.Service
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, authService *auth.Service) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     authService,
	}
}

// Register creates a new user. The username must be unique and at least 3
// characters, the plaintext password at least 4. The password is hashed
// before storage and never persisted in the clear.
func (s *UserService) Register(username, name, password string) (*models.User, error) {
	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", ErrValidation)
	}
	if len(password) < 4 {
		return nil, fmt.Errorf("%w: password must be at least 4 characters", ErrValidation)
	}

	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a token on success. An unknown
// username and a wrong password both yield ErrInvalidCredentials.
func (s *UserService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
