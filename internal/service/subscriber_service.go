package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
	"github.com/mailkite/mailkite/pkg/mailer"
)

type SubscriberService struct {
	repo       domain.SubscriberRepository
	listRepo   domain.ListRepository
	automation domain.AutomationService
	mailer     mailer.Mailer
	baseURL    string
	logger     logger.Logger
}

func NewSubscriberService(repo domain.SubscriberRepository, listRepo domain.ListRepository,
	automation domain.AutomationService, m mailer.Mailer, baseURL string, logger logger.Logger) *SubscriberService {
	return &SubscriberService{
		repo:       repo,
		listRepo:   listRepo,
		automation: automation,
		mailer:     m,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// CreateSubscriber creates the subscriber and emails the double opt-in
// confirmation link. The subscriber starts unconfirmed; following the link
// flips is_confirmed.
func (s *SubscriberService) CreateSubscriber(ctx context.Context, tenantID string, req *domain.CreateSubscriberRequest) (*domain.Subscriber, error) {
	subscriber, err := s.create(ctx, tenantID, req)
	if err != nil {
		return nil, err
	}
	s.sendConfirmation(subscriber)
	return subscriber, nil
}

func (s *SubscriberService) create(ctx context.Context, tenantID string, req *domain.CreateSubscriberRequest) (*domain.Subscriber, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	subscriber := &domain.Subscriber{
		ID:                uuid.New().String(),
		TenantID:          tenantID,
		Email:             strings.ToLower(req.Email),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Status:            domain.SubscriberStatusActive,
		OptInIP:           req.OptInIP,
		OptInAt:           &now,
		ConfirmationToken: newConfirmationToken(),
	}

	if err := s.repo.CreateSubscriber(ctx, subscriber); err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			return nil, err
		}
		s.logger.WithField("email", subscriber.Email).Error(fmt.Sprintf("Failed to create subscriber: %v", err))
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	if len(req.ListIDs) > 0 {
		if err := s.attachToLists(ctx, tenantID, subscriber.ID, req.ListIDs); err != nil {
			return nil, err
		}
		subscriber.ListIDs = req.ListIDs
	}

	s.dispatchCreated(ctx, subscriber, req.ListIDs)
	return subscriber, nil
}

// ImportSubscribers upserts a batch of subscribers. Existing subscribers
// get their name fields updated and their memberships extended; duplicates
// within the batch are skipped.
func (s *SubscriberService) ImportSubscribers(ctx context.Context, tenantID string, req *domain.ImportSubscribersRequest) (*domain.ImportSubscribersResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &domain.ImportSubscribersResult{}
	seen := make(map[string]bool, len(req.Subscribers))

	for i := range req.Subscribers {
		entry := &req.Subscribers[i]
		email := strings.ToLower(entry.Email)
		if seen[email] {
			result.Skipped++
			continue
		}
		seen[email] = true

		listIDs := req.ListIDs
		if len(entry.ListIDs) > 0 {
			listIDs = entry.ListIDs
		}

		existing, err := s.repo.GetSubscriberByEmail(ctx, tenantID, email)
		if err != nil && !domain.IsNotFound(err) {
			s.logger.WithField("email", email).Error(fmt.Sprintf("Failed to look up subscriber: %v", err))
			return nil, fmt.Errorf("failed to look up subscriber: %w", err)
		}

		if existing != nil {
			existing.FirstName = entry.FirstName
			existing.LastName = entry.LastName
			if err := s.repo.UpdateSubscriber(ctx, existing); err != nil {
				s.logger.WithField("email", email).Error(fmt.Sprintf("Failed to update subscriber: %v", err))
				return nil, fmt.Errorf("failed to update subscriber: %w", err)
			}
			if len(listIDs) > 0 {
				if err := s.attachToLists(ctx, tenantID, existing.ID, listIDs); err != nil {
					return nil, err
				}
			}
			result.Updated++
			continue
		}

		// Imported subscribers carry their own consent record; no
		// confirmation email is sent
		if _, err := s.create(ctx, tenantID, &domain.CreateSubscriberRequest{
			Email:     email,
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			ListIDs:   listIDs,
			OptInIP:   entry.OptInIP,
		}); err != nil {
			return nil, err
		}
		result.Created++
	}

	return result, nil
}

func (s *SubscriberService) GetSubscriberByID(ctx context.Context, tenantID, id string) (*domain.Subscriber, error) {
	subscriber, err := s.repo.GetSubscriberByID(ctx, tenantID, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("subscriber_id", id).Error(fmt.Sprintf("Failed to get subscriber: %v", err))
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}

	listIDs, err := s.repo.GetListIDs(ctx, tenantID, id)
	if err != nil {
		s.logger.WithField("subscriber_id", id).Error(fmt.Sprintf("Failed to get list memberships: %v", err))
		return nil, fmt.Errorf("failed to get list memberships: %w", err)
	}
	subscriber.ListIDs = listIDs
	return subscriber, nil
}

func (s *SubscriberService) GetSubscribers(ctx context.Context, tenantID string, listID string) ([]*domain.Subscriber, error) {
	subscribers, err := s.repo.GetSubscribers(ctx, tenantID, listID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get subscribers: %v", err))
		return nil, fmt.Errorf("failed to get subscribers: %w", err)
	}
	return subscribers, nil
}

func (s *SubscriberService) UpdateSubscriber(ctx context.Context, tenantID string, req *domain.UpdateSubscriberRequest) (*domain.Subscriber, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	subscriber, err := s.repo.GetSubscriberByID(ctx, tenantID, req.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("subscriber_id", req.ID).Error(fmt.Sprintf("Failed to get subscriber: %v", err))
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}

	subscriber.FirstName = req.FirstName
	subscriber.LastName = req.LastName

	if err := s.repo.UpdateSubscriber(ctx, subscriber); err != nil {
		s.logger.WithField("subscriber_id", subscriber.ID).Error(fmt.Sprintf("Failed to update subscriber: %v", err))
		return nil, fmt.Errorf("failed to update subscriber: %w", err)
	}
	return subscriber, nil
}

func (s *SubscriberService) AddToLists(ctx context.Context, tenantID, subscriberID string, listIDs []string) error {
	if len(listIDs) == 0 {
		return domain.NewValidationError("list_ids is required")
	}
	return s.attachToLists(ctx, tenantID, subscriberID, listIDs)
}

func (s *SubscriberService) RemoveFromList(ctx context.Context, tenantID, subscriberID, listID string) error {
	if err := s.repo.RemoveFromList(ctx, tenantID, subscriberID, listID); err != nil {
		s.logger.WithField("subscriber_id", subscriberID).Error(fmt.Sprintf("Failed to remove subscriber from list: %v", err))
		return fmt.Errorf("failed to remove subscriber from list: %w", err)
	}
	if err := s.listRepo.RefreshSubscriberCount(ctx, tenantID, listID); err != nil && !domain.IsNotFound(err) {
		s.logger.WithField("list_id", listID).Error(fmt.Sprintf("Failed to refresh subscriber count: %v", err))
	}
	return nil
}

// ConfirmSubscriber completes double opt-in for the subscriber holding the
// token. The token is the only credential; confirming twice is a no-op.
func (s *SubscriberService) ConfirmSubscriber(ctx context.Context, token string) (*domain.Subscriber, error) {
	if token == "" {
		return nil, domain.NewValidationError("token is required")
	}

	subscriber, err := s.repo.ConfirmByToken(ctx, token)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error(fmt.Sprintf("Failed to confirm subscriber: %v", err))
		return nil, fmt.Errorf("failed to confirm subscriber: %w", err)
	}
	return subscriber, nil
}

// Unsubscribe marks the subscriber unsubscribed tenant-wide. Memberships
// are kept; fan-out filters on status.
func (s *SubscriberService) Unsubscribe(ctx context.Context, tenantID, subscriberID string) error {
	subscriber, err := s.repo.GetSubscriberByID(ctx, tenantID, subscriberID)
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("subscriber_id", subscriberID).Error(fmt.Sprintf("Failed to get subscriber: %v", err))
		return fmt.Errorf("failed to get subscriber: %w", err)
	}

	if err := s.repo.UpdateSubscriberStatus(ctx, tenantID, subscriberID, domain.SubscriberStatusUnsubscribed); err != nil {
		s.logger.WithField("subscriber_id", subscriberID).Error(fmt.Sprintf("Failed to unsubscribe: %v", err))
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	if s.automation != nil {
		event := &domain.AutomationEvent{
			Trigger:      domain.TriggerSubscriberUnsubscribed,
			TenantID:     tenantID,
			SubscriberID: subscriberID,
			Email:        subscriber.Email,
		}
		if err := s.automation.HandleEvent(ctx, event); err != nil {
			s.logger.WithField("subscriber_id", subscriberID).Error(fmt.Sprintf("Failed to dispatch unsubscribe event: %v", err))
		}
	}
	return nil
}

func (s *SubscriberService) DeleteSubscriber(ctx context.Context, tenantID, id string) error {
	if err := s.repo.DeleteSubscriber(ctx, tenantID, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("subscriber_id", id).Error(fmt.Sprintf("Failed to delete subscriber: %v", err))
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}

func (s *SubscriberService) attachToLists(ctx context.Context, tenantID, subscriberID string, listIDs []string) error {
	if err := s.repo.AddToLists(ctx, tenantID, subscriberID, listIDs); err != nil {
		s.logger.WithField("subscriber_id", subscriberID).Error(fmt.Sprintf("Failed to add subscriber to lists: %v", err))
		if _, ok := err.(*domain.ErrTenantMismatch); ok {
			return err
		}
		return fmt.Errorf("failed to add subscriber to lists: %w", err)
	}

	for _, listID := range listIDs {
		if err := s.listRepo.RefreshSubscriberCount(ctx, tenantID, listID); err != nil && !domain.IsNotFound(err) {
			s.logger.WithField("list_id", listID).Error(fmt.Sprintf("Failed to refresh subscriber count: %v", err))
		}
	}
	return nil
}

// dispatchCreated fires one subscriber_created event per joined list, or a
// single event without a list when the subscriber joined none.
func (s *SubscriberService) dispatchCreated(ctx context.Context, subscriber *domain.Subscriber, listIDs []string) {
	if s.automation == nil {
		return
	}

	events := []*domain.AutomationEvent{}
	if len(listIDs) == 0 {
		events = append(events, &domain.AutomationEvent{
			Trigger:      domain.TriggerSubscriberCreated,
			TenantID:     subscriber.TenantID,
			SubscriberID: subscriber.ID,
			Email:        subscriber.Email,
		})
	}
	for _, listID := range listIDs {
		events = append(events, &domain.AutomationEvent{
			Trigger:      domain.TriggerSubscriberCreated,
			TenantID:     subscriber.TenantID,
			SubscriberID: subscriber.ID,
			Email:        subscriber.Email,
			ListID:       listID,
		})
	}

	for _, event := range events {
		if err := s.automation.HandleEvent(ctx, event); err != nil {
			s.logger.WithField("subscriber_id", subscriber.ID).Error(fmt.Sprintf("Failed to dispatch created event: %v", err))
		}
	}
}

// sendConfirmation emails the double opt-in link. A send failure is logged;
// the subscriber simply stays unconfirmed until a later confirm.
func (s *SubscriberService) sendConfirmation(subscriber *domain.Subscriber) {
	if s.mailer == nil || subscriber.ConfirmationToken == "" {
		return
	}

	confirmURL := fmt.Sprintf("%s/subscribe.confirm?token=%s",
		strings.TrimRight(s.baseURL, "/"), subscriber.ConfirmationToken)
	if err := s.mailer.SendConfirmation(subscriber.Email, confirmURL); err != nil {
		s.logger.WithField("email", subscriber.Email).Error(fmt.Sprintf("Failed to send confirmation email: %v", err))
	}
}

func newConfirmationToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}
