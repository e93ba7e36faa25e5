package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"gatehouse/internal/auth"
	"gatehouse/internal/cache"
	"gatehouse/internal/errors"
	"gatehouse/internal/model"
	"gatehouse/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, username string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.Hasher
	issuer *auth.SessionIssuer
	cache  *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher auth.Hasher, issuer *auth.SessionIssuer, cache *cache.Client) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		cache:  cache,
	}
}

// Register creates a new user with a hashed password and no session token.
// Email uniqueness is enforced here: an existing record with the same email
// makes the whole call fail with ErrEmailTaken and leaves that record alone.
func (s *authService) Register(ctx context.Context, email, password, username string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:    email,
		Password: digest,
		Username: username,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	_ = s.cache.Delete(ctx, userListCacheKey)
	return user, nil
}

// Login verifies the credentials and mints a fresh session token. An unknown
// email and a wrong password both come back as ErrInvalidCredentials so the
// caller cannot enumerate accounts. Returns the record carrying the new
// token.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.Password) {
		return nil, errors.ErrInvalidCredentials
	}

	updated, err := s.issuer.Issue(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	_ = s.cache.Delete(ctx, userListCacheKey)
	return updated, nil
}
