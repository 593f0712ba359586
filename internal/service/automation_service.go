package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
	"github.com/mailkite/mailkite/pkg/mailer"
)

type AutomationService struct {
	repo           domain.AutomationRepository
	subscriberRepo domain.SubscriberRepository
	listRepo       domain.ListRepository
	templates      domain.TemplateService
	mailer         mailer.Mailer
	logger         logger.Logger
}

func NewAutomationService(repo domain.AutomationRepository, subscriberRepo domain.SubscriberRepository,
	listRepo domain.ListRepository, templates domain.TemplateService, mailer mailer.Mailer, logger logger.Logger) *AutomationService {
	return &AutomationService{
		repo:           repo,
		subscriberRepo: subscriberRepo,
		listRepo:       listRepo,
		templates:      templates,
		mailer:         mailer,
		logger:         logger,
	}
}

func (s *AutomationService) CreateRule(ctx context.Context, tenantID string, req *domain.CreateAutomationRuleRequest) (*domain.AutomationRule, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rule := &domain.AutomationRule{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      req.Name,
		Trigger:   req.Trigger,
		Condition: req.Condition,
		Action:    req.Action,
		Config:    req.Config,
		IsActive:  req.IsActive,
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateRule(ctx, rule); err != nil {
		s.logger.WithField("rule_id", rule.ID).Error(fmt.Sprintf("Failed to create automation rule: %v", err))
		return nil, fmt.Errorf("failed to create automation rule: %w", err)
	}
	return rule, nil
}

func (s *AutomationService) GetRules(ctx context.Context, tenantID string) ([]*domain.AutomationRule, error) {
	rules, err := s.repo.GetRules(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get automation rules: %v", err))
		return nil, fmt.Errorf("failed to get automation rules: %w", err)
	}
	return rules, nil
}

func (s *AutomationService) SetRuleActive(ctx context.Context, tenantID, id string, active bool) error {
	if err := s.repo.SetRuleActive(ctx, tenantID, id, active); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("rule_id", id).Error(fmt.Sprintf("Failed to update automation rule: %v", err))
		return fmt.Errorf("failed to update automation rule: %w", err)
	}
	return nil
}

func (s *AutomationService) DeleteRule(ctx context.Context, tenantID, id string) error {
	if err := s.repo.DeleteRule(ctx, tenantID, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("rule_id", id).Error(fmt.Sprintf("Failed to delete automation rule: %v", err))
		return fmt.Errorf("failed to delete automation rule: %w", err)
	}
	return nil
}

// HandleEvent runs every matching active rule for the event. A failing
// rule is logged and does not stop the remaining rules; delivery of the
// triggering event is never blocked by automation.
func (s *AutomationService) HandleEvent(ctx context.Context, event *domain.AutomationEvent) error {
	if !event.Trigger.IsValid() {
		return domain.NewValidationError(fmt.Sprintf("unknown trigger: %s", event.Trigger))
	}

	rules, err := s.repo.GetActiveRulesByTrigger(ctx, event.TenantID, event.Trigger)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get automation rules for trigger %s: %v", event.Trigger, err))
		return fmt.Errorf("failed to get automation rules: %w", err)
	}

	for _, rule := range rules {
		if !rule.Matches(event) {
			continue
		}
		if err := s.execute(ctx, rule, event); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"rule_id":       rule.ID,
				"subscriber_id": event.SubscriberID,
			}).Error(fmt.Sprintf("Failed to execute automation rule: %v", err))
		}
	}
	return nil
}

func (s *AutomationService) execute(ctx context.Context, rule *domain.AutomationRule, event *domain.AutomationEvent) error {
	switch rule.Action {
	case domain.ActionAddToList:
		listID := rule.Config.AddToList.ListID
		if err := s.subscriberRepo.AddToLists(ctx, event.TenantID, event.SubscriberID, []string{listID}); err != nil {
			return err
		}
		s.refreshListCount(ctx, event.TenantID, listID)
		return nil
	case domain.ActionRemoveFromList:
		listID := rule.Config.RemoveFromList.ListID
		err := s.subscriberRepo.RemoveFromList(ctx, event.TenantID, event.SubscriberID, listID)
		if err != nil && !domain.IsNotFound(err) {
			return err
		}
		s.refreshListCount(ctx, event.TenantID, listID)
		return nil
	case domain.ActionUpdateField:
		return s.updateField(ctx, event, rule.Config.UpdateField)
	case domain.ActionSendEmail:
		return s.sendEmail(ctx, event, rule.Config.SendEmail)
	}
	return fmt.Errorf("unknown action: %s", rule.Action)
}

// refreshListCount keeps the cached list counter in step with membership
// mutations made by actions. Refresh failures are logged, not returned.
func (s *AutomationService) refreshListCount(ctx context.Context, tenantID, listID string) {
	if err := s.listRepo.RefreshSubscriberCount(ctx, tenantID, listID); err != nil && !domain.IsNotFound(err) {
		s.logger.WithField("list_id", listID).Error(fmt.Sprintf("Failed to refresh subscriber count: %v", err))
	}
}

func (s *AutomationService) updateField(ctx context.Context, event *domain.AutomationEvent, cfg *domain.UpdateFieldAction) error {
	subscriber, err := s.subscriberRepo.GetSubscriberByID(ctx, event.TenantID, event.SubscriberID)
	if err != nil {
		return err
	}

	switch cfg.Field {
	case "first_name":
		subscriber.FirstName = cfg.Value
	case "last_name":
		subscriber.LastName = cfg.Value
	default:
		return fmt.Errorf("field %s is not updatable", cfg.Field)
	}
	return s.subscriberRepo.UpdateSubscriber(ctx, subscriber)
}

func (s *AutomationService) sendEmail(ctx context.Context, event *domain.AutomationEvent, cfg *domain.SendEmailAction) error {
	subscriber, err := s.subscriberRepo.GetSubscriberByID(ctx, event.TenantID, event.SubscriberID)
	if err != nil {
		return err
	}
	if subscriber.Status != domain.SubscriberStatusActive {
		return nil
	}

	rendered, err := s.templates.RenderTemplate(ctx, event.TenantID, &domain.RenderTemplateRequest{
		ID: cfg.TemplateID,
		Variables: map[string]interface{}{
			"email":      subscriber.Email,
			"first_name": subscriber.FirstName,
			"last_name":  subscriber.LastName,
		},
	})
	if err != nil {
		return err
	}

	return s.mailer.SendMessage(&mailer.Message{
		To:       subscriber.Email,
		ToName:   strings.TrimSpace(subscriber.FirstName + " " + subscriber.LastName),
		Subject:  rendered.Subject,
		BodyHTML: rendered.BodyHTML,
		BodyText: rendered.BodyText,
	})
}
