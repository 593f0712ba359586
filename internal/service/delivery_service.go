package service

import (
	"context"
	"fmt"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
)

type DeliveryService struct {
	repo       domain.DeliveryRepository
	engagement domain.EngagementRepository
	automation domain.AutomationService
	logger     logger.Logger
}

func NewDeliveryService(repo domain.DeliveryRepository, engagement domain.EngagementRepository,
	automation domain.AutomationService, logger logger.Logger) *DeliveryService {
	return &DeliveryService{
		repo:       repo,
		engagement: engagement,
		automation: automation,
		logger:     logger,
	}
}

// ApplyEvent applies one delivery-outcome event and, when it changed
// anything, dispatches the matching automation trigger. Automation
// failures are logged and do not fail the event application.
func (s *DeliveryService) ApplyEvent(ctx context.Context, tenantID string, event *domain.DeliveryEvent) (*domain.ApplyEventResult, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	result, err := s.repo.ApplyEvent(ctx, tenantID, event)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithFields(map[string]interface{}{
			"campaign_id":   event.CampaignID,
			"subscriber_id": event.SubscriberID,
			"event_type":    string(event.Type),
		}).Error(fmt.Sprintf("Failed to apply delivery event: %v", err))
		return nil, fmt.Errorf("failed to apply delivery event: %w", err)
	}

	if result.Applied {
		s.dispatch(ctx, tenantID, event)
	}
	return result, nil
}

func (s *DeliveryService) GetRecord(ctx context.Context, tenantID, campaignID, subscriberID string) (*domain.DeliveryRecord, error) {
	record, err := s.repo.GetRecord(ctx, tenantID, campaignID, subscriberID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("campaign_id", campaignID).Error(fmt.Sprintf("Failed to get delivery record: %v", err))
		return nil, fmt.Errorf("failed to get delivery record: %w", err)
	}
	return record, nil
}

func (s *DeliveryService) ListRecords(ctx context.Context, tenantID, campaignID string) ([]*domain.DeliveryRecord, error) {
	records, err := s.repo.ListRecords(ctx, tenantID, campaignID)
	if err != nil {
		s.logger.WithField("campaign_id", campaignID).Error(fmt.Sprintf("Failed to list delivery records: %v", err))
		return nil, fmt.Errorf("failed to list delivery records: %w", err)
	}
	return records, nil
}

func (s *DeliveryService) GetClicks(ctx context.Context, tenantID, campaignID string) ([]*domain.LinkClickEvent, error) {
	clicks, err := s.engagement.GetClicks(ctx, tenantID, campaignID)
	if err != nil {
		s.logger.WithField("campaign_id", campaignID).Error(fmt.Sprintf("Failed to get click log: %v", err))
		return nil, fmt.Errorf("failed to get click log: %w", err)
	}
	return clicks, nil
}

func (s *DeliveryService) GetViews(ctx context.Context, tenantID, campaignID string) ([]*domain.WebViewEvent, error) {
	views, err := s.engagement.GetViews(ctx, tenantID, campaignID)
	if err != nil {
		s.logger.WithField("campaign_id", campaignID).Error(fmt.Sprintf("Failed to get view log: %v", err))
		return nil, fmt.Errorf("failed to get view log: %w", err)
	}
	return views, nil
}

func (s *DeliveryService) dispatch(ctx context.Context, tenantID string, event *domain.DeliveryEvent) {
	if s.automation == nil {
		return
	}

	var trigger domain.AutomationTrigger
	switch event.Type {
	case domain.EventTypeClicked:
		trigger = domain.TriggerLinkClicked
	case domain.EventTypeOpened:
		trigger = domain.TriggerCampaignOpened
	default:
		return
	}

	err := s.automation.HandleEvent(ctx, &domain.AutomationEvent{
		Trigger:      trigger,
		TenantID:     tenantID,
		SubscriberID: event.SubscriberID,
		CampaignID:   event.CampaignID,
		URL:          event.URL,
	})
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"campaign_id":   event.CampaignID,
			"subscriber_id": event.SubscriberID,
			"trigger":       string(trigger),
		}).Error(fmt.Sprintf("Failed to dispatch automation event: %v", err))
	}
}
