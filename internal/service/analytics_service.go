package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/pkg/logger"
)

// kpiWindow is the span of the dashboard reporting window. KPI change is
// computed against the window immediately before it.
const kpiWindow = 30 * 24 * time.Hour

type AnalyticsService struct {
	repo   domain.AnalyticsRepository
	logger logger.Logger
}

func NewAnalyticsService(repo domain.AnalyticsRepository, logger logger.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:   repo,
		logger: logger,
	}
}

func (s *AnalyticsService) GetCampaignAnalytics(ctx context.Context, tenantID, campaignID string) (*domain.CampaignAnalytics, error) {
	analytics, err := s.repo.GetCampaignAnalytics(ctx, tenantID, campaignID)
	if err != nil {
		s.logger.WithField("campaign_id", campaignID).Error(fmt.Sprintf("Failed to get campaign analytics: %v", err))
		return nil, fmt.Errorf("failed to get campaign analytics: %w", err)
	}
	return analytics, nil
}

func (s *AnalyticsService) RecomputeAnalytics(ctx context.Context, tenantID, campaignID string) (*domain.CampaignAnalytics, error) {
	analytics, err := s.repo.RecomputeAnalytics(ctx, tenantID, campaignID)
	if err != nil {
		s.logger.WithField("campaign_id", campaignID).Error(fmt.Sprintf("Failed to recompute campaign analytics: %v", err))
		return nil, fmt.Errorf("failed to recompute campaign analytics: %w", err)
	}
	return analytics, nil
}

func (s *AnalyticsService) GetKPIs(ctx context.Context, tenantID string) ([]domain.KPI, error) {
	now := time.Now().UTC()
	current, err := s.repo.GetRateWindow(ctx, tenantID, now.Add(-kpiWindow), now)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get current rate window: %v", err))
		return nil, fmt.Errorf("failed to get current rate window: %w", err)
	}
	previous, err := s.repo.GetRateWindow(ctx, tenantID, now.Add(-2*kpiWindow), now.Add(-kpiWindow))
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get previous rate window: %v", err))
		return nil, fmt.Errorf("failed to get previous rate window: %w", err)
	}

	kpis := []domain.KPI{
		countKPI("Emails Sent", current.Sent, previous.Sent),
		rateKPI("Delivery Rate", current.Delivered, current.Sent, previous.Delivered, previous.Sent),
		rateKPI("Open Rate", current.Opened, current.Delivered, previous.Opened, previous.Delivered),
		rateKPI("Click Rate", current.Clicked, current.Delivered, previous.Clicked, previous.Delivered),
	}
	return kpis, nil
}

// GetSpamRate returns the complaint rate over the reporting window as a
// fraction of sent mail.
func (s *AnalyticsService) GetSpamRate(ctx context.Context, tenantID string) (float64, error) {
	now := time.Now().UTC()
	window, err := s.repo.GetRateWindow(ctx, tenantID, now.Add(-kpiWindow), now)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get rate window: %v", err))
		return 0, fmt.Errorf("failed to get rate window: %w", err)
	}
	if window.Sent == 0 {
		return 0, nil
	}
	return float64(window.Complained) / float64(window.Sent), nil
}

func (s *AnalyticsService) GetDomainPerformance(ctx context.Context, tenantID string) ([]domain.DomainPerformance, error) {
	performance, err := s.repo.GetDomainPerformance(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get domain performance: %v", err))
		return nil, fmt.Errorf("failed to get domain performance: %w", err)
	}
	return performance, nil
}

func (s *AnalyticsService) GetComplianceChecklist(ctx context.Context, tenantID string) ([]domain.ComplianceItem, error) {
	confirmed, total, err := s.repo.CountConfirmedSubscribers(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to count confirmed subscribers: %v", err))
		return nil, fmt.Errorf("failed to count confirmed subscribers: %w", err)
	}
	suppressed, err := s.repo.CountSuppressionEntries(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to count suppression entries: %v", err))
		return nil, fmt.Errorf("failed to count suppression entries: %w", err)
	}
	now := time.Now().UTC()
	window, err := s.repo.GetRateWindow(ctx, tenantID, now.Add(-kpiWindow), now)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get rate window: %v", err))
		return nil, fmt.Errorf("failed to get rate window: %w", err)
	}

	items := []domain.ComplianceItem{
		doubleOptInItem(confirmed, total),
		suppressionItem(suppressed),
		bounceRateItem(window),
		complaintRateItem(window),
	}
	return items, nil
}

func doubleOptInItem(confirmed, total int) domain.ComplianceItem {
	item := domain.ComplianceItem{
		ID:   "double-opt-in",
		Name: "Double opt-in coverage",
	}
	if total == 0 {
		item.Status = domain.ComplianceStatusWarn
		item.Details = "No subscribers yet"
		return item
	}
	coverage := float64(confirmed) / float64(total) * 100
	item.Details = fmt.Sprintf("%.1f%% of subscribers confirmed their address", coverage)
	switch {
	case coverage >= 95:
		item.Status = domain.ComplianceStatusPass
	case coverage >= 60:
		item.Status = domain.ComplianceStatusWarn
		item.FixLink = "/subscribers?filter=unconfirmed"
	default:
		item.Status = domain.ComplianceStatusFail
		item.FixLink = "/subscribers?filter=unconfirmed"
	}
	return item
}

func suppressionItem(suppressed int) domain.ComplianceItem {
	item := domain.ComplianceItem{
		ID:      "suppression-list",
		Name:    "Suppression list in use",
		Details: fmt.Sprintf("%d addresses and domains suppressed", suppressed),
	}
	if suppressed > 0 {
		item.Status = domain.ComplianceStatusPass
	} else {
		item.Status = domain.ComplianceStatusWarn
		item.FixLink = "/suppression"
	}
	return item
}

func bounceRateItem(window *domain.RateWindow) domain.ComplianceItem {
	item := domain.ComplianceItem{
		ID:   "bounce-rate",
		Name: "Bounce rate under 2%",
	}
	if window.Sent == 0 {
		item.Status = domain.ComplianceStatusPass
		item.Details = "No mail sent in the last 30 days"
		return item
	}
	rate := float64(window.Bounced) / float64(window.Sent) * 100
	item.Details = fmt.Sprintf("%.2f%% of sent mail bounced", rate)
	switch {
	case rate < 2:
		item.Status = domain.ComplianceStatusPass
	case rate < 5:
		item.Status = domain.ComplianceStatusWarn
	default:
		item.Status = domain.ComplianceStatusFail
	}
	return item
}

func complaintRateItem(window *domain.RateWindow) domain.ComplianceItem {
	item := domain.ComplianceItem{
		ID:   "complaint-rate",
		Name: "Complaint rate under 0.1%",
	}
	if window.Sent == 0 {
		item.Status = domain.ComplianceStatusPass
		item.Details = "No mail sent in the last 30 days"
		return item
	}
	rate := float64(window.Complained) / float64(window.Sent) * 100
	item.Details = fmt.Sprintf("%.3f%% of sent mail was reported as spam", rate)
	switch {
	case rate < 0.1:
		item.Status = domain.ComplianceStatusPass
	case rate < 0.3:
		item.Status = domain.ComplianceStatusWarn
	default:
		item.Status = domain.ComplianceStatusFail
	}
	return item
}

func countKPI(title string, current, previous int) domain.KPI {
	kpi := domain.KPI{
		Title: title,
		Value: fmt.Sprintf("%d", current),
	}
	switch {
	case previous == 0 && current == 0:
		kpi.Change = "0%"
		kpi.Trend = domain.KPITrendFlat
	case previous == 0:
		kpi.Change = "new"
		kpi.Trend = domain.KPITrendUp
	default:
		change := (float64(current) - float64(previous)) / float64(previous) * 100
		kpi.Change = fmt.Sprintf("%+.1f%%", change)
		kpi.Trend = trendOf(change)
	}
	return kpi
}

func rateKPI(title string, num, den, prevNum, prevDen int) domain.KPI {
	rate := ratio(num, den)
	prev := ratio(prevNum, prevDen)
	change := rate - prev
	return domain.KPI{
		Title:  title,
		Value:  fmt.Sprintf("%.1f%%", rate),
		Change: fmt.Sprintf("%+.1fpt", change),
		Trend:  trendOf(change),
	}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

func trendOf(change float64) domain.KPITrend {
	switch {
	case change > 0.05:
		return domain.KPITrendUp
	case change < -0.05:
		return domain.KPITrendDown
	}
	return domain.KPITrendFlat
}
