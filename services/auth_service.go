// Package services handles account creation and credential checks.
// File: services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hackathon-hub/logger"
	"hackathon-hub/models"
)

// AuthServiceInterface is the identity-store surface the controllers
// use for signup and login.
type AuthServiceInterface interface {
	SignUp(username, email, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
}

// AuthService stores accounts with bcrypt-hashed passwords.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates an AuthService.
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// SignUp creates a new account. Usernames are unique; a duplicate is
// reported as ErrUsernameTaken.
func (s *AuthService) SignUp(username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	logger.Info.Printf("SignUp: created account for %s", username)
	return &user, nil
}

// Authenticate verifies a username/password pair. Unknown users and
// wrong passwords both come back as ErrInvalidCredentials.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		logger.Warn.Printf("Authenticate: failed login attempt for %s", username)
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// UserByUsername looks up an account by its unique username.
func (s *AuthService) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return &user, nil
}
