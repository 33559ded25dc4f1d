package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Kay-svg505/Philologic-platform/internal/auth"
	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
	"github.com/Kay-svg505/Philologic-platform/internal/model"
	"github.com/Kay-svg505/Philologic-platform/internal/repository"
)

const (
	bcryptCost = 10
	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72
)

// AuthService handles registration and login sessions.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
	// SessionTTL is the lifetime of sessions started by Login.
	SessionTTL() time.Duration
}

type authService struct {
	userRepo repository.UserRepository
	sessions auth.SessionManager
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessions auth.SessionManager, logger *zap.Logger) AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if len(password) > maxPasswordBytes {
		return nil, apperrors.ErrPasswordTooLong
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:         username,
		Email:            email,
		PasswordHash:     string(hashedPassword),
		SubscriptionType: model.SubscriptionFree,
	}
	// username uniqueness is left to the storage constraint
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and starts a session. Unknown email and wrong
// password yield the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Start(ctx, user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("start session: %w", err)
	}
	return token, user, nil
}

// Logout ends the session behind token, if any.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.End(ctx, token)
}

func (s *authService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}
