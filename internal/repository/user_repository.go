package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gatehouse/internal/model"
)

// UserRepository is the credential store. It exposes whole-record operations
// only: lookups return the full row, mutations return the row as it stands
// after (or, for Delete, immediately before) the change.
//
// Lookups that find nothing and mutations that target a missing id return
// gorm.ErrRecordNotFound; callers decide what that means for their protocol.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindBySessionToken(ctx context.Context, token string) (*model.User, error)
	UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindBySessionToken matches the stored token by exact equality. There is at
// most one live token per user, so First is sufficient.
func (r *userRepository) FindBySessionToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateByID applies fields (column name -> value) to the record and returns
// the updated row. Fails with gorm.ErrRecordNotFound if the id has no record.
func (r *userRepository) UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&user).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteByID removes the record and returns its prior state. Fails with
// gorm.ErrRecordNotFound if the id has no record.
func (r *userRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
