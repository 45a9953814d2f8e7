package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymhub/internal/auth"
	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, name, requestedRole string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	jwt    *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, jwt *auth.JWTService) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user with a hashed password. A role may be present
// in the payload and is validated against the closed role set, but public
// registration always stores the member role; privilege is granted only
// through the admin role-update flow.
func (s *authService) Register(ctx context.Context, email, password, name, requestedRole string) (*model.User, error) {
	if requestedRole != "" {
		if _, ok := model.ParseRole(requestedRole); !ok {
			return nil, apperrors.ErrInvalidRole
		}
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         model.RoleMember,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent registration may win the unique index race
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed access token. An unknown
// email and a wrong password yield the same failure so callers cannot
// enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return token, nil
}
