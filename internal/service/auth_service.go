package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/jwt"
	"task-manager-service/internal/my_errors"
)

type AuthService struct {
	repo      AuthRepository
	userRepo  UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo AuthRepository, userRepo UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username: %w", my_errors.ErrEmptyField)
	}
	if password == "" {
		return nil, fmt.Errorf("password: %w", my_errors.ErrEmptyField)
	}

	exists, err := s.userRepo.UserExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w", my_errors.ErrUserAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" {
		return "", nil, fmt.Errorf("username: %w", my_errors.ErrEmptyField)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("%w", my_errors.ErrBadCredentials)
	}

	if !user.IsActive {
		return "", nil, fmt.Errorf("%w", my_errors.ErrUserIsNotActive)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w", my_errors.ErrBadCredentials)
	}

	// reuse a live token if one exists
	existingToken, err := s.repo.GetTokenByUserID(ctx, user.UserID)
	if err == nil && existingToken.ExpiresAt.After(time.Now()) {
		return existingToken.Token, user, nil
	}

	token, err := jwt.GenerateToken(user.UserID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	if err := s.repo.SaveToken(ctx, user.UserID, token, expiresAt); err != nil {
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	return token, user, nil
}

// ValidateToken resolves a bearer token to the stable user id behind it.
// Every failure collapses into the same unauthenticated outcome.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := jwt.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	userID, err := s.repo.ValidateToken(ctx, tokenString)
	if err != nil {
		return "", fmt.Errorf("token not found in database: %w", err)
	}

	if userID != claims.UserID {
		return "", fmt.Errorf("%w", my_errors.ErrTokenMismatch)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w", my_errors.ErrUserNotFound)
	}

	if !user.IsActive {
		return "", fmt.Errorf("%w", my_errors.ErrUserIsNotActive)
	}

	return userID, nil
}
