package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gatehouse/internal/cache"
	"gatehouse/internal/errors"
	"gatehouse/internal/model"
	"gatehouse/internal/repository"
)

// userListCacheKey caches the full listing. Every mutation in this package
// (and registration/login in auth_service.go) invalidates it, so the cached
// copy never outlives a change to any record.
const userListCacheKey = "users:all"

const userListCacheTTL = 5 * time.Minute

// UserService exposes the user-resource operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

// ListUsers returns every record, unfiltered and unprojected.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	if data, _ := s.cache.Get(ctx, userListCacheKey); data != nil {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	if payload, err := json.Marshal(users); err == nil {
		_ = s.cache.Set(ctx, userListCacheKey, payload, userListCacheTTL)
	}
	return users, nil
}

// UpdateUsername overwrites the username and returns the updated record.
func (s *userService) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*model.User, error) {
	user, err := s.users.UpdateByID(ctx, id, map[string]any{"username": username})
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, userListCacheKey)
	return user, nil
}

// DeleteUser removes the record and returns its prior state.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.DeleteByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, userListCacheKey)
	return user, nil
}
