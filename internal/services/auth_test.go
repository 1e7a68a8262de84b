package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-manager/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-manager/internal/lib/password"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	admin := &models.User{
		ID:           1,
		Name:         "Administrador",
		Email:        "admin@gympoint.com",
		PasswordHash: hash,
	}
	maker := jwt.NewJWTMaker("test-secret", time.Hour)

	tests := []struct {
		name       string
		email      string
		rawPass    string
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name:    "success login",
			email:   "admin@gympoint.com",
			rawPass: "secret123",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "admin@gympoint.com").
					Return(admin, nil).Once()
			},
		},
		{
			name:    "user not found",
			email:   "ghost@gympoint.com",
			rawPass: "secret123",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "ghost@gympoint.com").
					Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:    "password mismatch",
			email:   "admin@gympoint.com",
			rawPass: "wrong-password",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "admin@gympoint.com").
					Return(admin, nil).Once()
			},
			wantErr: ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			tt.setupMocks(repo)

			svc := NewAuthService(repo, maker)
			token, user, err := svc.Login(context.Background(), tt.email, tt.rawPass)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, admin.Email, user.Email)

				// токен должен проходить обратную проверку
				email, err := svc.ValidateToken(context.Background(), token)
				assert.NoError(t, err)
				assert.Equal(t, admin.Email, email)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	svc := NewAuthService(new(UserRepoMock), jwt.NewJWTMaker("test-secret", time.Hour))

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
