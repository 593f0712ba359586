package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/domain/mocks"
)

func TestCampaignService_CreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	mockDelivery := mocks.NewMockDeliveryRepository(ctrl)
	mockTemplates := mocks.NewMockTemplateRepository(ctrl)
	service := NewCampaignService(mockRepo, mockDelivery, mockTemplates, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("new campaign starts as draft", func(t *testing.T) {
		var created *domain.Campaign
		mockRepo.EXPECT().CreateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				created = c
				return nil
			})

		campaign, err := service.CreateCampaign(ctx, tenantID, &domain.CreateCampaignRequest{
			Name:        "Spring launch",
			Subject:     "It's here",
			SenderName:  "Acme",
			SenderEmail: "news@acme.test",
			ListIDs:     []string{"list1", "list2"},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
		assert.Equal(t, tenantID, campaign.TenantID)
		assert.Equal(t, []string{"list1", "list2"}, []string(created.ListIDs))
	})

	t.Run("unknown template rejected", func(t *testing.T) {
		templateID := "missing"
		mockTemplates.EXPECT().GetTemplateByID(ctx, tenantID, "missing").
			Return(nil, &domain.ErrNotFound{Entity: "template", ID: "missing"})

		_, err := service.CreateCampaign(ctx, tenantID, &domain.CreateCampaignRequest{
			Name:        "Spring launch",
			Subject:     "It's here",
			SenderEmail: "news@acme.test",
			TemplateID:  &templateID,
		})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := service.CreateCampaign(ctx, tenantID, &domain.CreateCampaignRequest{
			Subject:     "It's here",
			SenderEmail: "news@acme.test",
		})
		assert.Error(t, err)
	})
}

func TestCampaignService_UpdateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	mockDelivery := mocks.NewMockDeliveryRepository(ctrl)
	mockTemplates := mocks.NewMockTemplateRepository(ctrl)
	service := NewCampaignService(mockRepo, mockDelivery, mockTemplates, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("draft campaign is editable", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Name:     "Old name",
			Status:   domain.CampaignStatusDraft,
		}, nil)
		mockRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				assert.Equal(t, "New name", c.Name)
				return nil
			})

		campaign, err := service.UpdateCampaign(ctx, tenantID, &domain.UpdateCampaignRequest{
			ID:          "camp123",
			Name:        "New name",
			Subject:     "Updated",
			SenderEmail: "news@acme.test",
			ListIDs:     []string{"list1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "New name", campaign.Name)
	})

	t.Run("sending campaign is frozen", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Status:   domain.CampaignStatusSending,
		}, nil)

		_, err := service.UpdateCampaign(ctx, tenantID, &domain.UpdateCampaignRequest{
			ID:          "camp123",
			Name:        "New name",
			Subject:     "Updated",
			SenderEmail: "news@acme.test",
		})
		var verr domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "cannot be edited")
	})
}

func TestCampaignService_ScheduleCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	mockDelivery := mocks.NewMockDeliveryRepository(ctrl)
	mockTemplates := mocks.NewMockTemplateRepository(ctrl)
	service := NewCampaignService(mockRepo, mockDelivery, mockTemplates, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	readyDraft := func() *domain.Campaign {
		return &domain.Campaign{
			ID:          "camp123",
			TenantID:    tenantID,
			Name:        "Spring launch",
			Subject:     "It's here",
			SenderEmail: "news@acme.test",
			ListIDs:     []string{"list1"},
			Status:      domain.CampaignStatusDraft,
		}
	}

	t.Run("schedule for later", func(t *testing.T) {
		sendAt := time.Now().UTC().Add(2 * time.Hour)
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(readyDraft(), nil)
		mockRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				assert.Equal(t, domain.CampaignStatusScheduled, c.Status)
				require.NotNil(t, c.ScheduledAt)
				assert.Equal(t, sendAt, *c.ScheduledAt)
				return nil
			})

		err := service.ScheduleCampaign(ctx, tenantID, &domain.ScheduleCampaignRequest{
			ID:          "camp123",
			ScheduledAt: sendAt,
		})
		assert.NoError(t, err)
	})

	t.Run("send now stamps the current time", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(readyDraft(), nil)
		mockRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				require.NotNil(t, c.ScheduledAt)
				assert.WithinDuration(t, time.Now().UTC(), *c.ScheduledAt, time.Minute)
				return nil
			})

		err := service.ScheduleCampaign(ctx, tenantID, &domain.ScheduleCampaignRequest{
			ID:      "camp123",
			SendNow: true,
		})
		assert.NoError(t, err)
	})

	t.Run("campaign without recipients rejected", func(t *testing.T) {
		campaign := readyDraft()
		campaign.ListIDs = nil
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(campaign, nil)

		err := service.ScheduleCampaign(ctx, tenantID, &domain.ScheduleCampaignRequest{
			ID:      "camp123",
			SendNow: true,
		})
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("sent campaign cannot be rescheduled", func(t *testing.T) {
		campaign := readyDraft()
		campaign.Status = domain.CampaignStatusSent
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(campaign, nil)

		err := service.ScheduleCampaign(ctx, tenantID, &domain.ScheduleCampaignRequest{
			ID:      "camp123",
			SendNow: true,
		})
		var terr *domain.ErrInvalidTransition
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, domain.CampaignStatusSent, terr.From)
		assert.Equal(t, domain.CampaignStatusScheduled, terr.To)
	})
}

func TestCampaignService_StartSending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	mockDelivery := mocks.NewMockDeliveryRepository(ctrl)
	mockTemplates := mocks.NewMockTemplateRepository(ctrl)
	service := NewCampaignService(mockRepo, mockDelivery, mockTemplates, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("scheduled campaign fans out", func(t *testing.T) {
		campaign := &domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Status:   domain.CampaignStatusScheduled,
		}
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(campaign, nil)
		mockRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				assert.Equal(t, domain.CampaignStatusSending, c.Status)
				return nil
			})
		mockDelivery.EXPECT().FanOut(ctx, campaign).
			Return(&domain.FanOutResult{Eligible: 10, Enrolled: 9, Suppressed: 1}, nil)

		result, err := service.StartSending(ctx, tenantID, "camp123")
		require.NoError(t, err)
		assert.Equal(t, 9, result.Enrolled)
		assert.Equal(t, 1, result.Suppressed)
	})

	t.Run("rerun on a sending campaign skips the transition", func(t *testing.T) {
		campaign := &domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Status:   domain.CampaignStatusSending,
		}
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(campaign, nil)
		mockDelivery.EXPECT().FanOut(ctx, campaign).
			Return(&domain.FanOutResult{Eligible: 10, Enrolled: 0, Suppressed: 1}, nil)

		_, err := service.StartSending(ctx, tenantID, "camp123")
		assert.NoError(t, err)
	})

	t.Run("draft cannot start sending", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Status:   domain.CampaignStatusDraft,
		}, nil)

		_, err := service.StartSending(ctx, tenantID, "camp123")
		var terr *domain.ErrInvalidTransition
		assert.ErrorAs(t, err, &terr)
	})
}

func TestCampaignService_CompleteSending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	mockDelivery := mocks.NewMockDeliveryRepository(ctrl)
	mockTemplates := mocks.NewMockTemplateRepository(ctrl)
	service := NewCampaignService(mockRepo, mockDelivery, mockTemplates, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("all deliveries settled", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Status:   domain.CampaignStatusSending,
		}, nil)
		mockDelivery.EXPECT().CountPending(ctx, tenantID, "camp123").Return(0, nil)
		mockRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				assert.Equal(t, domain.CampaignStatusSent, c.Status)
				assert.NotNil(t, c.SentAt)
				return nil
			})

		assert.NoError(t, service.CompleteSending(ctx, tenantID, "camp123"))
	})

	t.Run("pending deliveries block completion", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Status:   domain.CampaignStatusSending,
		}, nil)
		mockDelivery.EXPECT().CountPending(ctx, tenantID, "camp123").Return(3, nil)

		err := service.CompleteSending(ctx, tenantID, "camp123")
		var verr domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "3 pending")
	})
}

func TestCampaignService_PauseResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	mockDelivery := mocks.NewMockDeliveryRepository(ctrl)
	mockTemplates := mocks.NewMockTemplateRepository(ctrl)
	service := NewCampaignService(mockRepo, mockDelivery, mockTemplates, testLogger(ctrl))

	ctx := context.Background()
	tenantID := "tenant123"

	t.Run("pause a sending campaign", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Status:   domain.CampaignStatusSending,
		}, nil)
		mockRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				assert.Equal(t, domain.CampaignStatusPaused, c.Status)
				return nil
			})

		assert.NoError(t, service.PauseCampaign(ctx, tenantID, "camp123"))
	})

	t.Run("pause a draft is invalid", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:       "camp123",
			TenantID: tenantID,
			Status:   domain.CampaignStatusDraft,
		}, nil)

		var terr *domain.ErrInvalidTransition
		assert.ErrorAs(t, service.PauseCampaign(ctx, tenantID, "camp123"), &terr)
	})

	t.Run("resume with a future send time goes back to scheduled", func(t *testing.T) {
		sendAt := time.Now().UTC().Add(time.Hour)
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:          "camp123",
			TenantID:    tenantID,
			Status:      domain.CampaignStatusPaused,
			ScheduledAt: &sendAt,
		}, nil)
		mockRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				assert.Equal(t, domain.CampaignStatusScheduled, c.Status)
				return nil
			})

		assert.NoError(t, service.ResumeCampaign(ctx, tenantID, "camp123"))
	})

	t.Run("resume with an elapsed send time goes straight to sending", func(t *testing.T) {
		sendAt := time.Now().UTC().Add(-time.Hour)
		mockRepo.EXPECT().GetCampaign(ctx, tenantID, "camp123").Return(&domain.Campaign{
			ID:          "camp123",
			TenantID:    tenantID,
			Status:      domain.CampaignStatusPaused,
			ScheduledAt: &sendAt,
		}, nil)
		mockRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				assert.Equal(t, domain.CampaignStatusSending, c.Status)
				return nil
			})

		assert.NoError(t, service.ResumeCampaign(ctx, tenantID, "camp123"))
	})
}
