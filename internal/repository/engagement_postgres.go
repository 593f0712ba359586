package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mailkite/mailkite/internal/domain"
)

type engagementRepository struct {
	db *sql.DB
}

// NewEngagementRepository creates a new PostgreSQL engagement log repository
func NewEngagementRepository(db *sql.DB) domain.EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) GetClicks(ctx context.Context, tenantID, campaignID string) ([]*domain.LinkClickEvent, error) {
	query := `
		SELECT id, tenant_id, campaign_id, subscriber_id, url, created_at
		FROM link_click_events
		WHERE campaign_id = $1 AND tenant_id = $2
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, campaignID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get link clicks: %w", err)
	}
	defer rows.Close()

	var clicks []*domain.LinkClickEvent
	for rows.Next() {
		var c domain.LinkClickEvent
		if err := rows.Scan(&c.ID, &c.TenantID, &c.CampaignID, &c.SubscriberID, &c.URL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan link click: %w", err)
		}
		clicks = append(clicks, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate link clicks: %w", err)
	}
	return clicks, nil
}

func (r *engagementRepository) GetViews(ctx context.Context, tenantID, campaignID string) ([]*domain.WebViewEvent, error) {
	query := `
		SELECT id, tenant_id, campaign_id, subscriber_id, user_agent, ip, created_at
		FROM web_view_events
		WHERE campaign_id = $1 AND tenant_id = $2
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, campaignID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get web views: %w", err)
	}
	defer rows.Close()

	var views []*domain.WebViewEvent
	for rows.Next() {
		var v domain.WebViewEvent
		if err := rows.Scan(&v.ID, &v.TenantID, &v.CampaignID, &v.SubscriberID, &v.UserAgent, &v.IP, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan web view: %w", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate web views: %w", err)
	}
	return views, nil
}
