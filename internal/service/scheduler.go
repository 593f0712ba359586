package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
)

const (
	defaultPollInterval    = 30 * time.Second
	defaultSendConcurrency = 4
)

// CampaignScheduler drives campaign lifecycle transitions in the
// background: it starts scheduled campaigns whose send time has passed
// and promotes sending campaigns to sent once their delivery ledger is
// fully terminal.
type CampaignScheduler struct {
	campaigns    domain.CampaignService
	campaignRepo domain.CampaignRepository
	logger       logger.Logger
	interval     time.Duration
	concurrency  int
}

// NewCampaignScheduler creates a scheduler with the default poll interval
func NewCampaignScheduler(campaigns domain.CampaignService, campaignRepo domain.CampaignRepository, logger logger.Logger) *CampaignScheduler {
	return &CampaignScheduler{
		campaigns:    campaigns,
		campaignRepo: campaignRepo,
		logger:       logger,
		interval:     defaultPollInterval,
		concurrency:  defaultSendConcurrency,
	}
}

// Start runs the polling loop in a goroutine until ctx is cancelled
func (s *CampaignScheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.runOnce(ctx); err != nil {
					s.logger.WithField("error", err.Error()).Error("Campaign scheduler run failed")
				}
			}
		}
	}()
}

// runOnce performs a single scheduler pass. Failures on individual
// campaigns are logged and do not block the rest of the batch; only the
// first error is returned.
func (s *CampaignScheduler) runOnce(ctx context.Context) error {
	due, err := s.campaignRepo.GetDueCampaigns(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to get due campaigns: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, campaign := range due {
		campaign := campaign
		g.Go(func() error {
			result, err := s.campaigns.StartSending(ctx, campaign.TenantID, campaign.ID)
			if err != nil {
				s.logger.WithField("campaign_id", campaign.ID).
					WithField("error", err.Error()).
					Error("Failed to start sending campaign")
				return err
			}
			s.logger.WithField("campaign_id", campaign.ID).
				WithField("enrolled", result.Enrolled).
				WithField("suppressed", result.Suppressed).
				Info("Campaign fan-out completed")
			return nil
		})
	}
	startErr := g.Wait()

	if err := s.completeFinished(ctx); err != nil {
		if startErr == nil {
			startErr = err
		}
	}
	return startErr
}

// completeFinished promotes sending campaigns whose delivery records
// have all reached a terminal state.
func (s *CampaignScheduler) completeFinished(ctx context.Context) error {
	sending, err := s.campaignRepo.GetSendingCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sending campaigns: %w", err)
	}

	var firstErr error
	for _, campaign := range sending {
		err := s.campaigns.CompleteSending(ctx, campaign.TenantID, campaign.ID)
		if err == nil {
			s.logger.WithField("campaign_id", campaign.ID).Info("Campaign completed")
			continue
		}
		// Records still pending; try again on the next pass
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			continue
		}
		s.logger.WithField("campaign_id", campaign.ID).
			WithField("error", err.Error()).
			Error("Failed to complete campaign")
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
