package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/storage"
	"eventify/internal/token"
)

type AuthService struct {
	store  storage.Store
	tokens *token.Service
	log    *logger.Logger
}

func NewAuthService(store storage.Store, tokens *token.Service, log *logger.Logger) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		log:    log,
	}
}

// Register creates a new inactive account with the default role. Activation
// is an admin action.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	s.log.LogAuth("REGISTER", req.Email, "Registering new user")

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		s.log.Error("AUTH", fmt.Sprintf("Failed to hash password for %s: %v", req.Email, err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          req.Email,
		Name:           req.Name,
		HashedPassword: hash,
		Role:           models.RoleUser,
		IsActive:       false,
	}

	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			s.log.LogAuth("CONFLICT", req.Email, "Email already registered")
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.LogAuth("REGISTERED", req.Email, fmt.Sprintf("User %d created", user.ID))
	return user, nil
}

// Login exchanges credentials for a signed access token.
func (s *AuthService) Login(req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.Authenticate(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		s.log.Error("AUTH", fmt.Sprintf("Failed to issue token for %s: %v", user.Email, err))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.LogAuth("LOGIN", user.Email, fmt.Sprintf("Token issued for user %d", user.ID))
	return &models.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		UserID:      user.ID,
		Role:        user.Role,
		IsActive:    user.IsActive,
	}, nil
}

// Authenticate verifies an email/password pair. Both failure modes collapse
// into ErrInvalidCredentials; only the log distinguishes them.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.log.LogAuth("FAILED", email, "No account for email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		s.log.LogAuth("FAILED", email, "Password mismatch")
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// HashPassword produces a salted bcrypt hash; every call salts freshly, so
// two hashes of the same password differ.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
