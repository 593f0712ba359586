package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_engagement_repository.go -package mocks github.com/mailkite/mailkite/internal/domain EngagementRepository

// LinkClickEvent is an append-only log row bound to a delivery record via
// (campaign_id, subscriber_id, tenant_id)
type LinkClickEvent struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id" db:"tenant_id"`
	CampaignID   string    `json:"campaign_id" db:"campaign_id"`
	SubscriberID string    `json:"subscriber_id" db:"subscriber_id"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}

// WebViewEvent is an append-only log row for a web view of the campaign,
// bound to a delivery record via (campaign_id, subscriber_id, tenant_id)
type WebViewEvent struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id" db:"tenant_id"`
	CampaignID   string    `json:"campaign_id" db:"campaign_id"`
	SubscriberID string    `json:"subscriber_id" db:"subscriber_id"`
	UserAgent    string    `json:"user_agent,omitempty" db:"user_agent"`
	IP           string    `json:"ip,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// EngagementRepository reads the append-only engagement logs. Writes happen
// inside DeliveryRepository.ApplyEvent so they share the outcome
// transaction.
type EngagementRepository interface {
	GetClicks(ctx context.Context, tenantID, campaignID string) ([]*LinkClickEvent, error)
	GetViews(ctx context.Context, tenantID, campaignID string) ([]*WebViewEvent, error)
}
