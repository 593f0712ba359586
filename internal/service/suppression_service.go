package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
)

type SuppressionService struct {
	repo   domain.SuppressionRepository
	logger logger.Logger
}

func NewSuppressionService(repo domain.SuppressionRepository, logger logger.Logger) *SuppressionService {
	return &SuppressionService{
		repo:   repo,
		logger: logger,
	}
}

func (s *SuppressionService) AddEntry(ctx context.Context, tenantID string, req *domain.CreateSuppressionRequest) (*domain.SuppressionEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.SuppressionEntry{
		ID:       uuid.New().String(),
		TenantID: tenantID,
		Email:    strings.ToLower(req.Email),
		Domain:   strings.ToLower(req.Domain),
		Reason:   req.Reason,
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		s.logger.WithField("email", entry.Email).Error(fmt.Sprintf("Failed to create suppression entry: %v", err))
		return nil, fmt.Errorf("failed to create suppression entry: %w", err)
	}
	return entry, nil
}

func (s *SuppressionService) GetEntries(ctx context.Context, tenantID string) ([]*domain.SuppressionEntry, error) {
	entries, err := s.repo.GetEntries(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get suppression entries: %v", err))
		return nil, fmt.Errorf("failed to get suppression entries: %w", err)
	}
	return entries, nil
}

func (s *SuppressionService) IsSuppressed(ctx context.Context, tenantID, email string) (bool, error) {
	if email == "" {
		return false, domain.NewValidationError("email is required")
	}

	suppressed, err := s.repo.IsSuppressed(ctx, tenantID, email)
	if err != nil {
		s.logger.WithField("email", email).Error(fmt.Sprintf("Failed to check suppression: %v", err))
		return false, fmt.Errorf("failed to check suppression: %w", err)
	}
	return suppressed, nil
}
