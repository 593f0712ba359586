package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/domain/mocks"
	"github.com/mailkite/mailkite/internal/http/middleware"
)

func setupUserHandlerTest(t *testing.T) (*gomock.Controller, *mocks.MockUserService, *UserHandler) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockUserService(ctrl)
	auth := middleware.NewAuthMiddleware(mockService)
	handler := NewUserHandler(mockService, auth, testLogger(ctrl))
	return ctrl, mockService, handler
}

func TestUserHandler_HandleSignup(t *testing.T) {
	ctrl, mockService, handler := setupUserHandlerTest(t)
	defer ctrl.Finish()

	t.Run("account created", func(t *testing.T) {
		mockService.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(&domain.AuthResponse{
				Token: "token123",
				User:  &domain.User{ID: "user1", Email: "owner@acme.test", Name: "Acme"},
			}, nil)

		rec := httptest.NewRecorder()
		handler.handleSignup(rec, httptest.NewRequest(http.MethodPost, "/api/users.signup",
			jsonBody(t, domain.SignupRequest{Email: "owner@acme.test", Name: "Acme", Password: "secret12"})))

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "token123", body["token"])
		assert.Equal(t, "owner@acme.test", body["user"].(map[string]interface{})["email"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockService.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("email is already registered"))

		rec := httptest.NewRecorder()
		handler.handleSignup(rec, httptest.NewRequest(http.MethodPost, "/api/users.signup",
			jsonBody(t, domain.SignupRequest{Email: "owner@acme.test", Name: "Acme", Password: "secret12"})))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "already registered")
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.handleSignup(rec, httptest.NewRequest(http.MethodGet, "/api/users.signup", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestUserHandler_HandleLogin(t *testing.T) {
	ctrl, mockService, handler := setupUserHandlerTest(t)
	defer ctrl.Finish()

	t.Run("authenticated", func(t *testing.T) {
		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&domain.AuthResponse{
				Token: "token456",
				User:  &domain.User{ID: "user1", Email: "owner@acme.test"},
			}, nil)

		rec := httptest.NewRecorder()
		handler.handleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/users.login",
			jsonBody(t, domain.LoginRequest{Email: "owner@acme.test", Password: "secret12"})))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "token456", decodeBody(t, rec)["token"])
	})

	t.Run("bad credentials map to unauthorized", func(t *testing.T) {
		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("invalid email or password"))

		rec := httptest.NewRecorder()
		handler.handleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/users.login",
			jsonBody(t, domain.LoginRequest{Email: "owner@acme.test", Password: "wrong"})))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.handleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/users.login",
			strings.NewReader(`{not json`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeBody(t, rec)["error"])
	})
}

func TestUserHandler_HandleMe(t *testing.T) {
	ctrl, mockService, handler := setupUserHandlerTest(t)
	defer ctrl.Finish()

	t.Run("current user", func(t *testing.T) {
		mockService.EXPECT().GetUserByID(gomock.Any(), "tenant123").
			Return(&domain.User{ID: "tenant123", Email: "owner@acme.test"}, nil)

		rec := httptest.NewRecorder()
		handler.handleMe(rec, authedRequest(http.MethodGet, "/api/users.me", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tenant123", decodeBody(t, rec)["user"].(map[string]interface{})["id"])
	})

	t.Run("account gone", func(t *testing.T) {
		mockService.EXPECT().GetUserByID(gomock.Any(), "tenant123").
			Return(nil, &domain.ErrNotFound{Entity: "user", ID: "tenant123"})

		rec := httptest.NewRecorder()
		handler.handleMe(rec, authedRequest(http.MethodGet, "/api/users.me", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandler_HandleDelete(t *testing.T) {
	ctrl, mockService, handler := setupUserHandlerTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().DeleteUser(gomock.Any(), "tenant123").Return(nil)

	rec := httptest.NewRecorder()
	handler.handleDelete(rec, authedRequest(http.MethodPost, "/api/users.delete", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
}
