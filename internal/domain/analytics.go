package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_analytics_service.go -package mocks github.com/mailkite/mailkite/internal/domain AnalyticsService
//go:generate mockgen -destination mocks/mock_analytics_repository.go -package mocks github.com/mailkite/mailkite/internal/domain AnalyticsRepository

// CampaignAnalytics is the denormalized counter row for one campaign. It is
// a cached projection of the delivery ledger and engagement logs, never the
// source of truth: the incremental path increments each counter at most
// once per record transition, and RecomputeAnalytics must reproduce it
// exactly from a full re-scan.
type CampaignAnalytics struct {
	CampaignID       string    `json:"campaign_id" db:"campaign_id"`
	TenantID         string    `json:"tenant_id" db:"tenant_id"`
	TotalSubscribers int       `json:"total_subscribers" db:"total_subscribers"`
	Sent             int       `json:"sent"`
	Delivered        int       `json:"delivered"`
	Opened           int       `json:"opened"`
	Clicked          int       `json:"clicked"`
	Bounced          int       `json:"bounced"`
	Complained       int       `json:"complained"`
	Unsubscribed     int       `json:"unsubscribed"`
	Failed           int       `json:"failed"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CounterColumn maps an event type to its analytics counter column
func CounterColumn(t DeliveryEventType) (string, bool) {
	switch t {
	case EventTypeSent:
		return "sent", true
	case EventTypeDelivered:
		return "delivered", true
	case EventTypeOpened:
		return "opened", true
	case EventTypeClicked:
		return "clicked", true
	case EventTypeBounced:
		return "bounced", true
	case EventTypeComplained:
		return "complained", true
	case EventTypeUnsubscribed:
		return "unsubscribed", true
	case EventTypeFailed:
		return "failed", true
	}
	return "", false
}

// ScanCampaignAnalytics scans an analytics row from the database
func ScanCampaignAnalytics(scanner interface {
	Scan(dest ...interface{}) error
}) (*CampaignAnalytics, error) {
	var a CampaignAnalytics
	if err := scanner.Scan(
		&a.CampaignID,
		&a.TenantID,
		&a.TotalSubscribers,
		&a.Sent,
		&a.Delivered,
		&a.Opened,
		&a.Clicked,
		&a.Bounced,
		&a.Complained,
		&a.Unsubscribed,
		&a.Failed,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// KPITrend is the direction shown next to a dashboard KPI
type KPITrend string

const (
	KPITrendUp   KPITrend = "up"
	KPITrendDown KPITrend = "down"
	KPITrendFlat KPITrend = "flat"
)

// KPI is one dashboard stat card: current value plus change against the
// previous window
type KPI struct {
	Title  string   `json:"title"`
	Value  string   `json:"value"`
	Change string   `json:"change"`
	Trend  KPITrend `json:"trend"`
}

// DomainPerformance aggregates per destination domain, rates in 0-100
type DomainPerformance struct {
	Domain        string  `json:"domain"`
	DeliveryRate  float64 `json:"deliveryRate"`
	ComplaintRate float64 `json:"complaintRate"`
	SpamRate      float64 `json:"spamRate"`
}

// ComplianceStatus is the verdict on one compliance checklist item
type ComplianceStatus string

const (
	ComplianceStatusPass ComplianceStatus = "pass"
	ComplianceStatusWarn ComplianceStatus = "warn"
	ComplianceStatusFail ComplianceStatus = "fail"
)

// ComplianceItem is one row of the deliverability compliance checklist
type ComplianceItem struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Status  ComplianceStatus `json:"status"`
	Details string           `json:"details"`
	FixLink string           `json:"fixLink,omitempty"`
}

// AnalyticsService exposes campaign aggregates and dashboard queries
type AnalyticsService interface {
	// GetCampaignAnalytics returns the counter row for a campaign
	GetCampaignAnalytics(ctx context.Context, tenantID, campaignID string) (*CampaignAnalytics, error)

	// RecomputeAnalytics rebuilds the counters from a full re-scan of the
	// delivery ledger; the repair path must match the incremental path
	RecomputeAnalytics(ctx context.Context, tenantID, campaignID string) (*CampaignAnalytics, error)

	// GetKPIs returns dashboard stat cards over the tenant's recent campaigns
	GetKPIs(ctx context.Context, tenantID string) ([]KPI, error)

	// GetSpamRate returns the complaint rate over the recent window, 0-1
	GetSpamRate(ctx context.Context, tenantID string) (float64, error)

	// GetDomainPerformance aggregates rates per destination domain, 0-100
	GetDomainPerformance(ctx context.Context, tenantID string) ([]DomainPerformance, error)

	// GetComplianceChecklist derives checklist items from live data
	GetComplianceChecklist(ctx context.Context, tenantID string) ([]ComplianceItem, error)
}

// RateWindow aggregates delivery totals for a time window
type RateWindow struct {
	Sent       int
	Delivered  int
	Opened     int
	Clicked    int
	Bounced    int
	Complained int
}

// AnalyticsRepository defines persistence for campaign aggregates
type AnalyticsRepository interface {
	GetCampaignAnalytics(ctx context.Context, tenantID, campaignID string) (*CampaignAnalytics, error)

	// RecomputeAnalytics rebuilds and stores the counter row from the
	// delivery ledger within one transaction
	RecomputeAnalytics(ctx context.Context, tenantID, campaignID string) (*CampaignAnalytics, error)

	// GetRateWindow aggregates ledger totals between two instants
	GetRateWindow(ctx context.Context, tenantID string, from, to time.Time) (*RateWindow, error)

	// GetDomainPerformance aggregates ledger outcomes per destination domain
	GetDomainPerformance(ctx context.Context, tenantID string) ([]DomainPerformance, error)

	// CountConfirmedSubscribers returns (confirmed, total) subscriber counts
	CountConfirmedSubscribers(ctx context.Context, tenantID string) (int, int, error)

	// CountSuppressionEntries returns the tenant's blacklist size
	CountSuppressionEntries(ctx context.Context, tenantID string) (int, error)
}
