package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/domain/mocks"
	"github.com/mailkite/mailkite/internal/http/middleware"
)

func setupSubscriberHandlerTest(t *testing.T) (*gomock.Controller, *mocks.MockSubscriberService, *SubscriberHandler) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSubscriberService(ctrl)
	auth := middleware.NewAuthMiddleware(mocks.NewMockUserService(ctrl))
	handler := NewSubscriberHandler(mockService, auth, testLogger(ctrl))
	return ctrl, mockService, handler
}

func TestSubscriberHandler_HandleList(t *testing.T) {
	ctrl, mockService, handler := setupSubscriberHandlerTest(t)
	defer ctrl.Finish()

	t.Run("all subscribers", func(t *testing.T) {
		mockService.EXPECT().GetSubscribers(gomock.Any(), "tenant123", "").
			Return([]*domain.Subscriber{
				{ID: "sub1", Email: "a@acme.test", Status: domain.SubscriberStatusActive},
				{ID: "sub2", Email: "b@acme.test", Status: domain.SubscriberStatusUnsubscribed},
			}, nil)

		rec := httptest.NewRecorder()
		handler.handleList(rec, authedRequest(http.MethodGet, "/api/subscribers.list", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["subscribers"].([]interface{}), 2)
	})

	t.Run("filtered by list", func(t *testing.T) {
		mockService.EXPECT().GetSubscribers(gomock.Any(), "tenant123", "list1").
			Return([]*domain.Subscriber{{ID: "sub1"}}, nil)

		rec := httptest.NewRecorder()
		handler.handleList(rec, authedRequest(http.MethodGet, "/api/subscribers.list?list_id=list1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["subscribers"].([]interface{}), 1)
	})
}

func TestSubscriberHandler_HandleCreate(t *testing.T) {
	ctrl, mockService, handler := setupSubscriberHandlerTest(t)
	defer ctrl.Finish()

	t.Run("created", func(t *testing.T) {
		mockService.EXPECT().CreateSubscriber(gomock.Any(), "tenant123", gomock.Any()).
			DoAndReturn(func(ctx context.Context, tenantID string, req *domain.CreateSubscriberRequest) (*domain.Subscriber, error) {
				assert.Equal(t, "new@acme.test", req.Email)
				assert.Equal(t, []string{"list1"}, req.ListIDs)
				return &domain.Subscriber{ID: "sub1", Email: req.Email, Status: domain.SubscriberStatusActive}, nil
			})

		rec := httptest.NewRecorder()
		handler.handleCreate(rec, authedRequest(http.MethodPost, "/api/subscribers.create",
			jsonBody(t, domain.CreateSubscriberRequest{Email: "new@acme.test", ListIDs: []string{"list1"}})))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "new@acme.test", decodeBody(t, rec)["subscriber"].(map[string]interface{})["email"])
	})

	t.Run("invalid email", func(t *testing.T) {
		mockService.EXPECT().CreateSubscriber(gomock.Any(), "tenant123", gomock.Any()).
			Return(nil, domain.NewValidationError("email is not valid"))

		rec := httptest.NewRecorder()
		handler.handleCreate(rec, authedRequest(http.MethodPost, "/api/subscribers.create",
			jsonBody(t, domain.CreateSubscriberRequest{Email: "nope"})))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown list", func(t *testing.T) {
		mockService.EXPECT().CreateSubscriber(gomock.Any(), "tenant123", gomock.Any()).
			Return(nil, &domain.ErrNotFound{Entity: "list", ID: "ghost"})

		rec := httptest.NewRecorder()
		handler.handleCreate(rec, authedRequest(http.MethodPost, "/api/subscribers.create",
			jsonBody(t, domain.CreateSubscriberRequest{Email: "new@acme.test", ListIDs: []string{"ghost"}})))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "List not found", decodeBody(t, rec)["error"])
	})
}

func TestSubscriberHandler_HandleImport(t *testing.T) {
	ctrl, mockService, handler := setupSubscriberHandlerTest(t)
	defer ctrl.Finish()

	t.Run("batch upsert", func(t *testing.T) {
		mockService.EXPECT().ImportSubscribers(gomock.Any(), "tenant123", gomock.Any()).
			Return(&domain.ImportSubscribersResult{Created: 2, Updated: 1, Skipped: 1}, nil)

		rec := httptest.NewRecorder()
		handler.handleImport(rec, authedRequest(http.MethodPost, "/api/subscribers.import",
			jsonBody(t, domain.ImportSubscribersRequest{
				Subscribers: []domain.CreateSubscriberRequest{
					{Email: "a@acme.test"}, {Email: "b@acme.test"},
					{Email: "c@acme.test"}, {Email: "d@acme.test"},
				},
				ListIDs: []string{"list1"},
			})))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(2), body["created"])
		assert.Equal(t, float64(1), body["updated"])
		assert.Equal(t, float64(1), body["skipped"])
	})

	t.Run("empty batch", func(t *testing.T) {
		mockService.EXPECT().ImportSubscribers(gomock.Any(), "tenant123", gomock.Any()).
			Return(nil, domain.NewValidationError("subscribers is required"))

		rec := httptest.NewRecorder()
		handler.handleImport(rec, authedRequest(http.MethodPost, "/api/subscribers.import",
			jsonBody(t, domain.ImportSubscribersRequest{})))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubscriberHandler_HandleAddToLists(t *testing.T) {
	ctrl, mockService, handler := setupSubscriberHandlerTest(t)
	defer ctrl.Finish()

	t.Run("added", func(t *testing.T) {
		mockService.EXPECT().AddToLists(gomock.Any(), "tenant123", "sub1", []string{"list1", "list2"}).
			Return(nil)

		rec := httptest.NewRecorder()
		handler.handleAddToLists(rec, authedRequest(http.MethodPost, "/api/subscribers.addToLists",
			jsonBody(t, subscriberListsRequest{SubscriberID: "sub1", ListIDs: []string{"list1", "list2"}})))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
	})

	t.Run("cross-tenant list reads as missing", func(t *testing.T) {
		mockService.EXPECT().AddToLists(gomock.Any(), "tenant123", "sub1", []string{"foreign"}).
			Return(&domain.ErrTenantMismatch{Entity: "list", ID: "foreign"})

		rec := httptest.NewRecorder()
		handler.handleAddToLists(rec, authedRequest(http.MethodPost, "/api/subscribers.addToLists",
			jsonBody(t, subscriberListsRequest{SubscriberID: "sub1", ListIDs: []string{"foreign"}})))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Subscriber or list not found", decodeBody(t, rec)["error"])
	})

	t.Run("missing subscriber id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.handleAddToLists(rec, authedRequest(http.MethodPost, "/api/subscribers.addToLists",
			jsonBody(t, subscriberListsRequest{ListIDs: []string{"list1"}})))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubscriberHandler_HandleRemoveFromList(t *testing.T) {
	ctrl, mockService, handler := setupSubscriberHandlerTest(t)
	defer ctrl.Finish()

	t.Run("removed", func(t *testing.T) {
		mockService.EXPECT().RemoveFromList(gomock.Any(), "tenant123", "sub1", "list1").Return(nil)

		rec := httptest.NewRecorder()
		handler.handleRemoveFromList(rec, authedRequest(http.MethodPost, "/api/subscribers.removeFromList",
			jsonBody(t, subscriberListsRequest{SubscriberID: "sub1", ListID: "list1"})))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("membership absent", func(t *testing.T) {
		mockService.EXPECT().RemoveFromList(gomock.Any(), "tenant123", "sub1", "list1").
			Return(&domain.ErrNotFound{Entity: "membership", ID: "sub1/list1"})

		rec := httptest.NewRecorder()
		handler.handleRemoveFromList(rec, authedRequest(http.MethodPost, "/api/subscribers.removeFromList",
			jsonBody(t, subscriberListsRequest{SubscriberID: "sub1", ListID: "list1"})))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing list id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.handleRemoveFromList(rec, authedRequest(http.MethodPost, "/api/subscribers.removeFromList",
			jsonBody(t, subscriberListsRequest{SubscriberID: "sub1"})))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubscriberHandler_HandleConfirm(t *testing.T) {
	ctrl, mockService, handler := setupSubscriberHandlerTest(t)
	defer ctrl.Finish()

	t.Run("token confirms the subscription", func(t *testing.T) {
		mockService.EXPECT().ConfirmSubscriber(gomock.Any(), "tok-abc").
			Return(&domain.Subscriber{
				ID:          "sub1",
				Email:       "jane@acme.test",
				IsConfirmed: true,
			}, nil)

		// The endpoint is public: no bearer token on the request
		rec := httptest.NewRecorder()
		handler.handleConfirm(rec, httptest.NewRequest(http.MethodGet, "/subscribe.confirm?token=tok-abc", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "jane@acme.test", body["email"])
	})

	t.Run("unknown token", func(t *testing.T) {
		mockService.EXPECT().ConfirmSubscriber(gomock.Any(), "tok-stale").
			Return(nil, &domain.ErrNotFound{Entity: "subscriber", ID: "tok-stale"})

		rec := httptest.NewRecorder()
		handler.handleConfirm(rec, httptest.NewRequest(http.MethodGet, "/subscribe.confirm?token=tok-stale", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid confirmation token", decodeBody(t, rec)["error"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.handleConfirm(rec, httptest.NewRequest(http.MethodGet, "/subscribe.confirm", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubscriberHandler_HandleUnsubscribe(t *testing.T) {
	ctrl, mockService, handler := setupSubscriberHandlerTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().Unsubscribe(gomock.Any(), "tenant123", "sub1").Return(nil)

	rec := httptest.NewRecorder()
	handler.handleUnsubscribe(rec, authedRequest(http.MethodPost, "/api/subscribers.unsubscribe",
		jsonBody(t, subscriberIDRequest{ID: "sub1"})))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
}

func TestSubscriberHandler_HandleDelete(t *testing.T) {
	ctrl, mockService, handler := setupSubscriberHandlerTest(t)
	defer ctrl.Finish()

	t.Run("deleted", func(t *testing.T) {
		mockService.EXPECT().DeleteSubscriber(gomock.Any(), "tenant123", "sub1").Return(nil)

		rec := httptest.NewRecorder()
		handler.handleDelete(rec, authedRequest(http.MethodPost, "/api/subscribers.delete",
			jsonBody(t, subscriberIDRequest{ID: "sub1"})))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().DeleteSubscriber(gomock.Any(), "tenant123", "ghost").
			Return(&domain.ErrNotFound{Entity: "subscriber", ID: "ghost"})

		rec := httptest.NewRecorder()
		handler.handleDelete(rec, authedRequest(http.MethodPost, "/api/subscribers.delete",
			jsonBody(t, subscriberIDRequest{ID: "ghost"})))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
