package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "staybook/database/repository/user"
	"staybook/models"
	"staybook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of an issued auth token.
const TokenTTL = 24 * time.Hour

var (
	// ErrWrongCredentials covers both unknown email and bad password, so the
	// response cannot be used to probe which emails are registered.
	ErrWrongCredentials = errors.New("wrong credentials")

	// ErrUserExists signals a registration attempt with a taken email.
	ErrUserExists = errors.New("user already exists")
)

// UserService manages accounts and credential checks.
type UserService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// Register creates an account and returns it with a fresh auth token.
func (s *DefaultUserService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, string, error) {
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return nil, "", &models.ValidationError{Field: "email/password/firstName/lastName", Reason: "all fields are required"}
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrUserExists
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hash),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(usr.ID, TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.Logger.Info("user registered", zap.String("userId", usr.ID))
	return usr, token, nil
}

// Authenticate verifies credentials and returns the user with a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", &models.ValidationError{Field: "email/password", Reason: "all fields are required"}
	}

	usr, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, "", ErrWrongCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)) != nil {
		return nil, "", ErrWrongCredentials
	}

	token, err := utils.GenerateToken(usr.ID, TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return usr, token, nil
}

// GetByID fetches an account by id.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
