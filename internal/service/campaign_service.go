package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
)

type CampaignService struct {
	repo         domain.CampaignRepository
	deliveryRepo domain.DeliveryRepository
	templateRepo domain.TemplateRepository
	logger       logger.Logger
}

func NewCampaignService(repo domain.CampaignRepository, deliveryRepo domain.DeliveryRepository,
	templateRepo domain.TemplateRepository, logger logger.Logger) *CampaignService {
	return &CampaignService{
		repo:         repo,
		deliveryRepo: deliveryRepo,
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, tenantID string, req *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.TemplateID != nil {
		if _, err := s.templateRepo.GetTemplateByID(ctx, tenantID, *req.TemplateID); err != nil {
			return nil, err
		}
	}

	campaign := &domain.Campaign{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        req.Name,
		Subject:     req.Subject,
		TemplateID:  req.TemplateID,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		ListIDs:     pq.StringArray(req.ListIDs),
		Status:      domain.CampaignStatusDraft,
	}

	if err := s.repo.CreateCampaign(ctx, campaign); err != nil {
		s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to create campaign: %v", err))
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, tenantID, id string) (*domain.Campaign, error) {
	campaign, err := s.repo.GetCampaign(ctx, tenantID, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to get campaign: %v", err))
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// UpdateCampaign edits content and targeting. Only draft, scheduled and
// paused campaigns are editable; a campaign that started sending is frozen.
func (s *CampaignService) UpdateCampaign(ctx context.Context, tenantID string, req *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	campaign, err := s.GetCampaign(ctx, tenantID, req.ID)
	if err != nil {
		return nil, err
	}

	switch campaign.Status {
	case domain.CampaignStatusDraft, domain.CampaignStatusScheduled, domain.CampaignStatusPaused:
	default:
		return nil, domain.NewValidationError(fmt.Sprintf("campaign in status %s cannot be edited", campaign.Status))
	}

	if req.TemplateID != nil && (campaign.TemplateID == nil || *campaign.TemplateID != *req.TemplateID) {
		if _, err := s.templateRepo.GetTemplateByID(ctx, tenantID, *req.TemplateID); err != nil {
			return nil, err
		}
	}

	campaign.Name = req.Name
	campaign.Subject = req.Subject
	campaign.TemplateID = req.TemplateID
	campaign.SenderName = req.SenderName
	campaign.SenderEmail = req.SenderEmail
	campaign.ListIDs = pq.StringArray(req.ListIDs)

	if err := s.repo.UpdateCampaign(ctx, campaign); err != nil {
		s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to update campaign: %v", err))
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context, params domain.ListCampaignsParams) (*domain.CampaignListResponse, error) {
	if params.TenantID == "" {
		return nil, domain.NewValidationError("tenant_id is required")
	}
	if params.Status != "" && !params.Status.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown status: %s", params.Status))
	}

	resp, err := s.repo.ListCampaigns(ctx, params)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list campaigns: %v", err))
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return resp, nil
}

func (s *CampaignService) ScheduleCampaign(ctx context.Context, tenantID string, req *domain.ScheduleCampaignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	campaign, err := s.GetCampaign(ctx, tenantID, req.ID)
	if err != nil {
		return err
	}

	if !campaign.Status.CanTransitionTo(domain.CampaignStatusScheduled) {
		return &domain.ErrInvalidTransition{From: campaign.Status, To: domain.CampaignStatusScheduled}
	}
	if err := campaign.ReadyToSchedule(); err != nil {
		return err
	}

	scheduledAt := req.ScheduledAt
	if req.SendNow {
		scheduledAt = time.Now().UTC()
	}
	campaign.Status = domain.CampaignStatusScheduled
	campaign.ScheduledAt = &scheduledAt

	if err := s.repo.UpdateCampaign(ctx, campaign); err != nil {
		s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to schedule campaign: %v", err))
		return fmt.Errorf("failed to schedule campaign: %w", err)
	}
	return nil
}

// StartSending transitions scheduled -> sending and enrolls the audience.
// Fan-out is idempotent, so a crash between the transition and the
// enrollment is repaired by running it again.
func (s *CampaignService) StartSending(ctx context.Context, tenantID, id string) (*domain.FanOutResult, error) {
	campaign, err := s.GetCampaign(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if campaign.Status != domain.CampaignStatusSending {
		if !campaign.Status.CanTransitionTo(domain.CampaignStatusSending) {
			return nil, &domain.ErrInvalidTransition{From: campaign.Status, To: domain.CampaignStatusSending}
		}
		campaign.Status = domain.CampaignStatusSending
		if err := s.repo.UpdateCampaign(ctx, campaign); err != nil {
			s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to start campaign: %v", err))
			return nil, fmt.Errorf("failed to start campaign: %w", err)
		}
	}

	result, err := s.deliveryRepo.FanOut(ctx, campaign)
	if err != nil {
		s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to fan out campaign: %v", err))
		return nil, fmt.Errorf("failed to fan out campaign: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"campaign_id": campaign.ID,
		"eligible":    result.Eligible,
		"enrolled":    result.Enrolled,
		"suppressed":  result.Suppressed,
	}).Info("Campaign fan-out complete")
	return result, nil
}

// CompleteSending transitions sending -> sent once every delivery record
// has reached a terminal state.
func (s *CampaignService) CompleteSending(ctx context.Context, tenantID, id string) error {
	campaign, err := s.GetCampaign(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if !campaign.Status.CanTransitionTo(domain.CampaignStatusSent) {
		return &domain.ErrInvalidTransition{From: campaign.Status, To: domain.CampaignStatusSent}
	}

	pending, err := s.deliveryRepo.CountPending(ctx, tenantID, id)
	if err != nil {
		s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to count pending records: %v", err))
		return fmt.Errorf("failed to count pending records: %w", err)
	}
	if pending > 0 {
		return domain.NewValidationError(fmt.Sprintf("campaign has %d pending deliveries", pending))
	}

	now := time.Now().UTC()
	campaign.Status = domain.CampaignStatusSent
	campaign.SentAt = &now

	if err := s.repo.UpdateCampaign(ctx, campaign); err != nil {
		s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to complete campaign: %v", err))
		return fmt.Errorf("failed to complete campaign: %w", err)
	}
	return nil
}

func (s *CampaignService) PauseCampaign(ctx context.Context, tenantID, id string) error {
	return s.transition(ctx, tenantID, id, domain.CampaignStatusPaused)
}

// ResumeCampaign moves a paused campaign back to scheduled when its send
// time is still in the future, otherwise straight back to sending.
func (s *CampaignService) ResumeCampaign(ctx context.Context, tenantID, id string) error {
	campaign, err := s.GetCampaign(ctx, tenantID, id)
	if err != nil {
		return err
	}

	next := domain.CampaignStatusSending
	if campaign.ScheduledAt != nil && campaign.ScheduledAt.After(time.Now().UTC()) {
		next = domain.CampaignStatusScheduled
	}
	if !campaign.Status.CanTransitionTo(next) {
		return &domain.ErrInvalidTransition{From: campaign.Status, To: next}
	}

	campaign.Status = next
	if err := s.repo.UpdateCampaign(ctx, campaign); err != nil {
		s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to resume campaign: %v", err))
		return fmt.Errorf("failed to resume campaign: %w", err)
	}
	return nil
}

func (s *CampaignService) FailCampaign(ctx context.Context, tenantID, id string) error {
	return s.transition(ctx, tenantID, id, domain.CampaignStatusFailed)
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, tenantID, id string) error {
	if err := s.repo.DeleteCampaign(ctx, tenantID, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to delete campaign: %v", err))
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

func (s *CampaignService) transition(ctx context.Context, tenantID, id string, next domain.CampaignStatus) error {
	campaign, err := s.GetCampaign(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if !campaign.Status.CanTransitionTo(next) {
		return &domain.ErrInvalidTransition{From: campaign.Status, To: next}
	}

	campaign.Status = next
	if err := s.repo.UpdateCampaign(ctx, campaign); err != nil {
		s.logger.WithField("campaign_id", campaign.ID).Error(fmt.Sprintf("Failed to transition campaign: %v", err))
		return fmt.Errorf("failed to transition campaign: %w", err)
	}
	return nil
}
