package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gatehouse/internal/auth"
	"gatehouse/internal/errors"
	"gatehouse/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindBySessionToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newAuthService(repo *MockUserRepository) AuthService {
	hasher := auth.NewBcryptHasher()
	issuer := auth.NewSessionIssuer(repo, hasher)
	return NewAuthService(repo, hasher, issuer, nil)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		username      string
		setupMock     func(*MockUserRepository)
		expectedError error
		wantErr       bool
	}{
		{
			name:     "successful registration",
			email:    "test@example.com",
			password: "password123",
			username: "tester",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			email:    "existing@example.com",
			password: "password123",
			username: "other",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:     "storage fault on lookup",
			email:    "test@example.com",
			password: "password123",
			username: "tester",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, stderrors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := newAuthService(repo)

			user, err := svc.Register(context.Background(), tt.email, tt.password, tt.username)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			case tt.wantErr:
				assert.Error(t, err)
				assert.Nil(t, user)
				// a storage fault is not a conflict
				assert.NotErrorIs(t, err, errors.ErrEmailTaken)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.username, user.Username)
				assert.Empty(t, user.SessionToken)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RegisterStoresHashNotPlaintext(t *testing.T) {
	repo := new(MockUserRepository)
	var created *model.User
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.User)
	}).Return(nil)

	hasher := auth.NewBcryptHasher()
	svc := NewAuthService(repo, hasher, auth.NewSessionIssuer(repo, hasher), nil)

	_, err := svc.Register(context.Background(), "a@x.com", "p", "a")

	assert.NoError(t, err)
	assert.NotEqual(t, "p", created.Password)
	assert.True(t, hasher.Verify("p", created.Password))
}

func TestAuthService_Login(t *testing.T) {
	hasher := auth.NewBcryptHasher()
	digest, err := hasher.Hash("correct-password")
	assert.NoError(t, err)

	userID := uuid.New()
	stored := &model.User{
		ID:           userID,
		Email:        "a@x.com",
		Username:     "a",
		Password:     digest,
		SessionToken: "old-token",
	}

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)
		svc := NewAuthService(repo, hasher, auth.NewSessionIssuer(repo, hasher), nil)

		user, err := svc.Login(context.Background(), "ghost@x.com", "whatever")
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)
		svc := NewAuthService(repo, hasher, auth.NewSessionIssuer(repo, hasher), nil)

		user, err := svc.Login(context.Background(), "a@x.com", "wrong-password")
		// indistinguishable from an unknown email
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
		assert.Nil(t, user)
		repo.AssertNotCalled(t, "UpdateByID")
	})

	t.Run("success replaces token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)
		updated := &model.User{ID: userID, Email: "a@x.com", Username: "a", Password: digest}
		repo.On("UpdateByID", mock.Anything, userID, mock.Anything).Run(func(args mock.Arguments) {
			fields := args.Get(2).(map[string]any)
			updated.SessionToken = fields["session_token"].(string)
		}).Return(updated, nil)

		svc := NewAuthService(repo, hasher, auth.NewSessionIssuer(repo, hasher), nil)

		user, err := svc.Login(context.Background(), "a@x.com", "correct-password")
		assert.NoError(t, err)
		assert.NotEmpty(t, user.SessionToken)
		assert.NotEqual(t, "old-token", user.SessionToken)
		repo.AssertExpectations(t)
	})
}
