package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/domain/mocks"
	pkgmocks "github.com/mailkite/mailkite/pkg/mocks"
)

func TestSubscriberService_CreateSubscriber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriberRepository(ctrl)
	mockListRepo := mocks.NewMockListRepository(ctrl)
	mockAutomation := mocks.NewMockAutomationService(ctrl)
	mockMailer := pkgmocks.NewMockMailer(ctrl)
	service := NewSubscriberService(mockRepo, mockListRepo, mockAutomation, mockMailer, "https://mail.acme.test", testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("create with list memberships", func(t *testing.T) {
		var created *domain.Subscriber
		mockRepo.EXPECT().CreateSubscriber(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, sub *domain.Subscriber) error {
				created = sub
				return nil
			})
		mockRepo.EXPECT().AddToLists(ctx, tenantID, gomock.Any(), []string{"list1", "list2"}).Return(nil)
		mockListRepo.EXPECT().RefreshSubscriberCount(ctx, tenantID, "list1").Return(nil)
		mockListRepo.EXPECT().RefreshSubscriberCount(ctx, tenantID, "list2").Return(nil)
		mockAutomation.EXPECT().HandleEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, event *domain.AutomationEvent) error {
				assert.Equal(t, domain.TriggerSubscriberCreated, event.Trigger)
				return nil
			}).Times(2)
		mockMailer.EXPECT().SendConfirmation("jane@example.com", gomock.Any()).DoAndReturn(
			func(_, confirmURL string) error {
				assert.Equal(t, "https://mail.acme.test/subscribe.confirm?token="+created.ConfirmationToken, confirmURL)
				return nil
			})

		sub, err := service.CreateSubscriber(ctx, tenantID, &domain.CreateSubscriberRequest{
			Email:     "Jane@Example.com",
			FirstName: "Jane",
			ListIDs:   []string{"list1", "list2"},
		})
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", sub.Email)
		assert.Equal(t, domain.SubscriberStatusActive, sub.Status)
		assert.NotEmpty(t, created.ConfirmationToken)
		assert.NotNil(t, created.OptInAt)
		assert.False(t, created.IsConfirmed)
	})

	t.Run("create without lists dispatches one event", func(t *testing.T) {
		mockRepo.EXPECT().CreateSubscriber(ctx, gomock.Any()).Return(nil)
		mockAutomation.EXPECT().HandleEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, event *domain.AutomationEvent) error {
				assert.Empty(t, event.ListID)
				return nil
			})
		mockMailer.EXPECT().SendConfirmation("solo@example.com", gomock.Any()).Return(nil)

		_, err := service.CreateSubscriber(ctx, tenantID, &domain.CreateSubscriberRequest{
			Email: "solo@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("failed confirmation send does not fail the create", func(t *testing.T) {
		mockRepo.EXPECT().CreateSubscriber(ctx, gomock.Any()).Return(nil)
		mockAutomation.EXPECT().HandleEvent(ctx, gomock.Any()).Return(nil)
		mockMailer.EXPECT().SendConfirmation("bounce@example.com", gomock.Any()).Return(assert.AnError)

		_, err := service.CreateSubscriber(ctx, tenantID, &domain.CreateSubscriberRequest{
			Email: "bounce@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := service.CreateSubscriber(ctx, tenantID, &domain.CreateSubscriberRequest{
			Email: "not-an-email",
		})
		assert.Error(t, err)
	})

	t.Run("cross-tenant list is surfaced", func(t *testing.T) {
		mockRepo.EXPECT().CreateSubscriber(ctx, gomock.Any()).Return(nil)
		mockRepo.EXPECT().AddToLists(ctx, tenantID, gomock.Any(), []string{"foreign"}).
			Return(&domain.ErrTenantMismatch{Entity: "list"})

		_, err := service.CreateSubscriber(ctx, tenantID, &domain.CreateSubscriberRequest{
			Email:   "jane2@example.com",
			ListIDs: []string{"foreign"},
		})
		var mismatch *domain.ErrTenantMismatch
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestSubscriberService_ImportSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriberRepository(ctrl)
	mockListRepo := mocks.NewMockListRepository(ctrl)
	mockAutomation := mocks.NewMockAutomationService(ctrl)
	// No SendConfirmation expectation: imported subscribers are never sent
	// the opt-in email
	mockMailer := pkgmocks.NewMockMailer(ctrl)
	service := NewSubscriberService(mockRepo, mockListRepo, mockAutomation, mockMailer, "https://mail.acme.test", testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	existing := &domain.Subscriber{
		ID:       "sub-existing",
		TenantID: tenantID,
		Email:    "known@example.com",
		Status:   domain.SubscriberStatusActive,
	}

	// known@example.com exists, new@example.com does not, and the last
	// entry duplicates the first within the batch.
	mockRepo.EXPECT().GetSubscriberByEmail(ctx, tenantID, "known@example.com").Return(existing, nil)
	mockRepo.EXPECT().UpdateSubscriber(ctx, existing).Return(nil)
	mockRepo.EXPECT().AddToLists(ctx, tenantID, "sub-existing", []string{"list1"}).Return(nil)
	mockListRepo.EXPECT().RefreshSubscriberCount(ctx, tenantID, "list1").Return(nil).Times(2)

	mockRepo.EXPECT().GetSubscriberByEmail(ctx, tenantID, "new@example.com").
		Return(nil, &domain.ErrNotFound{Entity: "subscriber", ID: "new@example.com"})
	mockRepo.EXPECT().CreateSubscriber(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().AddToLists(ctx, tenantID, gomock.Any(), []string{"list1"}).Return(nil)
	mockAutomation.EXPECT().HandleEvent(ctx, gomock.Any()).Return(nil)

	result, err := service.ImportSubscribers(ctx, tenantID, &domain.ImportSubscribersRequest{
		ListIDs: []string{"list1"},
		Subscribers: []domain.CreateSubscriberRequest{
			{Email: "Known@example.com", FirstName: "Known"},
			{Email: "new@example.com", FirstName: "New"},
			{Email: "known@example.com"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "Known", existing.FirstName)
}

func TestSubscriberService_GetSubscriberByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriberRepository(ctrl)
	mockListRepo := mocks.NewMockListRepository(ctrl)
	service := NewSubscriberService(mockRepo, mockListRepo, nil, nil, "", testLogger(ctrl))

	ctx := context.Background()
	sub := &domain.Subscriber{ID: "sub123", TenantID: "tenant123", Email: "jane@example.com"}

	mockRepo.EXPECT().GetSubscriberByID(ctx, "tenant123", "sub123").Return(sub, nil)
	mockRepo.EXPECT().GetListIDs(ctx, "tenant123", "sub123").Return([]string{"list1"}, nil)

	got, err := service.GetSubscriberByID(ctx, "tenant123", "sub123")
	require.NoError(t, err)
	assert.Equal(t, []string{"list1"}, got.ListIDs)
}

func TestSubscriberService_AddToLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriberRepository(ctrl)
	mockListRepo := mocks.NewMockListRepository(ctrl)
	service := NewSubscriberService(mockRepo, mockListRepo, nil, nil, "", testLogger(ctrl))

	ctx := context.Background()

	t.Run("empty list set rejected", func(t *testing.T) {
		err := service.AddToLists(ctx, "tenant123", "sub123", nil)
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("memberships added and counts refreshed", func(t *testing.T) {
		mockRepo.EXPECT().AddToLists(ctx, "tenant123", "sub123", []string{"list1"}).Return(nil)
		mockListRepo.EXPECT().RefreshSubscriberCount(ctx, "tenant123", "list1").Return(nil)

		assert.NoError(t, service.AddToLists(ctx, "tenant123", "sub123", []string{"list1"}))
	})
}

func TestSubscriberService_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriberRepository(ctrl)
	mockListRepo := mocks.NewMockListRepository(ctrl)
	mockAutomation := mocks.NewMockAutomationService(ctrl)
	service := NewSubscriberService(mockRepo, mockListRepo, mockAutomation, nil, "", testLogger(ctrl))

	ctx := context.Background()
	sub := &domain.Subscriber{ID: "sub123", TenantID: "tenant123", Email: "jane@example.com"}

	mockRepo.EXPECT().GetSubscriberByID(ctx, "tenant123", "sub123").Return(sub, nil)
	mockRepo.EXPECT().UpdateSubscriberStatus(ctx, "tenant123", "sub123", domain.SubscriberStatusUnsubscribed).Return(nil)
	mockAutomation.EXPECT().HandleEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.AutomationEvent) error {
			assert.Equal(t, domain.TriggerSubscriberUnsubscribed, event.Trigger)
			assert.Equal(t, "jane@example.com", event.Email)
			return nil
		})

	assert.NoError(t, service.Unsubscribe(ctx, "tenant123", "sub123"))
}

func TestSubscriberService_ConfirmSubscriber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriberRepository(ctrl)
	mockListRepo := mocks.NewMockListRepository(ctrl)
	service := NewSubscriberService(mockRepo, mockListRepo, nil, nil, "", testLogger(ctrl))

	ctx := context.Background()

	t.Run("token completes the opt-in", func(t *testing.T) {
		mockRepo.EXPECT().ConfirmByToken(ctx, "tok-abc").Return(&domain.Subscriber{
			ID:          "sub123",
			TenantID:    "tenant123",
			Email:       "jane@example.com",
			IsConfirmed: true,
		}, nil)

		sub, err := service.ConfirmSubscriber(ctx, "tok-abc")
		require.NoError(t, err)
		assert.True(t, sub.IsConfirmed)
		assert.Equal(t, "jane@example.com", sub.Email)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		_, err := service.ConfirmSubscriber(ctx, "")
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("unknown token", func(t *testing.T) {
		mockRepo.EXPECT().ConfirmByToken(ctx, "tok-stale").
			Return(nil, &domain.ErrNotFound{Entity: "subscriber", ID: "tok-stale"})

		_, err := service.ConfirmSubscriber(ctx, "tok-stale")
		assert.True(t, domain.IsNotFound(err))
	})
}
