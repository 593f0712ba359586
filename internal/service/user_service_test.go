package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/domain/mocks"
)

var testSecret = []byte("test-secret")

func TestUserService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewUserService(mockRepo, testSecret, testLogger(ctrl))

	ctx := context.Background()

	t.Run("successful signup", func(t *testing.T) {
		var created *domain.User
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.User) error {
				created = user
				return nil
			})

		resp, err := service.Signup(ctx, &domain.SignupRequest{
			Email:    "Jane@Example.com",
			Name:     "Jane",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.Equal(t, domain.UserRoleUser, resp.User.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))
	})

	t.Run("duplicate email passes validation error through", func(t *testing.T) {
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
			Return(domain.NewValidationError("email is already registered"))

		_, err := service.Signup(ctx, &domain.SignupRequest{
			Email:    "jane@example.com",
			Name:     "Jane",
			Password: "hunter22",
		})
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := service.Signup(ctx, &domain.SignupRequest{Name: "Jane", Password: "hunter22"})
		assert.Error(t, err)
	})
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewUserService(mockRepo, testSecret, testLogger(ctrl))

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:           "user123",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail(ctx, "jane@example.com").Return(user, nil)

		resp, err := service.Login(ctx, &domain.LoginRequest{
			Email:    "Jane@Example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user, resp.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail(ctx, "jane@example.com").Return(user, nil)

		_, err := service.Login(ctx, &domain.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		var verr domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "invalid email or password", verr.Message)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").
			Return(nil, &domain.ErrNotFound{Entity: "user", ID: "nobody@example.com"})

		_, err := service.Login(ctx, &domain.LoginRequest{
			Email:    "nobody@example.com",
			Password: "hunter22",
		})
		var verr domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "invalid email or password", verr.Message)
	})
}

func TestUserService_VerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewUserService(mockRepo, testSecret, testLogger(ctrl))

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:           "user123",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
	}

	t.Run("round trip", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail(ctx, "jane@example.com").Return(user, nil)
		resp, err := service.Login(ctx, &domain.LoginRequest{
			Email:    "jane@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)

		mockRepo.EXPECT().GetUserByID(ctx, "user123").Return(user, nil)
		verified, err := service.VerifyToken(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user, verified)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.VerifyToken(ctx, "not.a.token")
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := NewUserService(mockRepo, []byte("other-secret"), testLogger(ctrl))
		mockRepo.EXPECT().GetUserByEmail(ctx, "jane@example.com").Return(user, nil)
		resp, err := other.Login(ctx, &domain.LoginRequest{
			Email:    "jane@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)

		_, err = service.VerifyToken(ctx, resp.Token)
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewUserService(mockRepo, testSecret, testLogger(ctrl))

	ctx := context.Background()

	mockRepo.EXPECT().DeleteUser(ctx, "user123").Return(nil)
	assert.NoError(t, service.DeleteUser(ctx, "user123"))
}
