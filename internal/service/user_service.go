package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gymhub/internal/cache"
	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// UserService exposes profile and role-administration operations.
type UserService interface {
	Profile(ctx context.Context, email string) (*model.User, error)
	UpdateRole(ctx context.Context, userID uint, newRole string) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) profileKey(email string) string {
	return fmt.Sprintf("user:profile:%s", email)
}

// Profile returns the user for the given email, read through the cache.
func (s *userService) Profile(ctx context.Context, email string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.profileKey(email)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.profileKey(email), payload, profileCacheTTL)
	}
	return user, nil
}

// UpdateRole changes the stored role of a user. This is the only role
// mutation after creation; the admin gate sits in front of it at the router.
func (s *userService) UpdateRole(ctx context.Context, userID uint, newRole string) (*model.User, error) {
	role, ok := model.ParseRole(newRole)
	if !ok {
		return nil, apperrors.ErrInvalidRole
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	_ = s.cache.Delete(ctx, s.profileKey(user.Email))
	return user, nil
}
