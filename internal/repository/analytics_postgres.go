package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mailkite/mailkite/internal/domain"
)

type analyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository creates a new PostgreSQL analytics repository
func NewAnalyticsRepository(db *sql.DB) domain.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

const analyticsSelectFields = `campaign_id, tenant_id, total_subscribers, sent, delivered,
	opened, clicked, bounced, complained, unsubscribed, failed, updated_at`

func (r *analyticsRepository) GetCampaignAnalytics(ctx context.Context, tenantID, campaignID string) (*domain.CampaignAnalytics, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM campaign_analytics
		WHERE campaign_id = $1 AND tenant_id = $2`, analyticsSelectFields)

	analytics, err := domain.ScanCampaignAnalytics(r.db.QueryRowContext(ctx, query, campaignID, tenantID))
	if err == sql.ErrNoRows {
		// No events yet: an empty counter row, not an error
		return &domain.CampaignAnalytics{CampaignID: campaignID, TenantID: tenantID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign analytics: %w", err)
	}
	return analytics, nil
}

// RecomputeAnalytics rebuilds the counter row from a full re-scan of the
// delivery ledger. Each counter is the number of records whose stamp column
// is set, which is exactly what the incremental path maintains: one
// increment per first stamp.
func (r *analyticsRepository) RecomputeAnalytics(ctx context.Context, tenantID, campaignID string) (*domain.CampaignAnalytics, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	a := &domain.CampaignAnalytics{CampaignID: campaignID, TenantID: tenantID}

	aggregateQuery := `
		SELECT
			COUNT(*),
			COUNT(sent_at),
			COUNT(delivered_at),
			COUNT(opened_at),
			COUNT(clicked_at),
			COUNT(bounced_at),
			COUNT(complained_at),
			COUNT(unsubscribed_at),
			COUNT(failed_at)
		FROM delivery_records
		WHERE campaign_id = $1 AND tenant_id = $2
	`
	if err := tx.QueryRowContext(ctx, aggregateQuery, campaignID, tenantID).Scan(
		&a.TotalSubscribers,
		&a.Sent,
		&a.Delivered,
		&a.Opened,
		&a.Clicked,
		&a.Bounced,
		&a.Complained,
		&a.Unsubscribed,
		&a.Failed,
	); err != nil {
		return nil, fmt.Errorf("failed to aggregate delivery records: %w", err)
	}

	a.UpdatedAt = time.Now().UTC()

	upsertQuery := `
		INSERT INTO campaign_analytics (campaign_id, tenant_id, total_subscribers, sent, delivered,
			opened, clicked, bounced, complained, unsubscribed, failed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (campaign_id) DO UPDATE
		SET total_subscribers = EXCLUDED.total_subscribers,
			sent = EXCLUDED.sent,
			delivered = EXCLUDED.delivered,
			opened = EXCLUDED.opened,
			clicked = EXCLUDED.clicked,
			bounced = EXCLUDED.bounced,
			complained = EXCLUDED.complained,
			unsubscribed = EXCLUDED.unsubscribed,
			failed = EXCLUDED.failed,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := tx.ExecContext(ctx, upsertQuery,
		a.CampaignID, a.TenantID, a.TotalSubscribers, a.Sent, a.Delivered,
		a.Opened, a.Clicked, a.Bounced, a.Complained, a.Unsubscribed, a.Failed, a.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to store campaign analytics: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return a, nil
}

func (r *analyticsRepository) GetRateWindow(ctx context.Context, tenantID string, from, to time.Time) (*domain.RateWindow, error) {
	query := `
		SELECT
			COUNT(sent_at) FILTER (WHERE sent_at >= $2 AND sent_at < $3),
			COUNT(delivered_at) FILTER (WHERE delivered_at >= $2 AND delivered_at < $3),
			COUNT(opened_at) FILTER (WHERE opened_at >= $2 AND opened_at < $3),
			COUNT(clicked_at) FILTER (WHERE clicked_at >= $2 AND clicked_at < $3),
			COUNT(bounced_at) FILTER (WHERE bounced_at >= $2 AND bounced_at < $3),
			COUNT(complained_at) FILTER (WHERE complained_at >= $2 AND complained_at < $3)
		FROM delivery_records
		WHERE tenant_id = $1
	`
	var w domain.RateWindow
	if err := r.db.QueryRowContext(ctx, query, tenantID, from, to).Scan(
		&w.Sent, &w.Delivered, &w.Opened, &w.Clicked, &w.Bounced, &w.Complained,
	); err != nil {
		return nil, fmt.Errorf("failed to aggregate rate window: %w", err)
	}
	return &w, nil
}

// GetDomainPerformance aggregates ledger outcomes per destination domain of
// the subscriber email. Rates are percentages of sent volume.
func (r *analyticsRepository) GetDomainPerformance(ctx context.Context, tenantID string) ([]domain.DomainPerformance, error) {
	query := `
		SELECT
			LOWER(split_part(s.email, '@', 2)) AS email_domain,
			COUNT(d.sent_at),
			COUNT(d.delivered_at),
			COUNT(d.bounced_at),
			COUNT(d.complained_at)
		FROM delivery_records d
		JOIN subscribers s ON s.id = d.subscriber_id AND s.tenant_id = d.tenant_id
		WHERE d.tenant_id = $1 AND d.sent_at IS NOT NULL
		GROUP BY email_domain
		ORDER BY COUNT(d.sent_at) DESC
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate domain performance: %w", err)
	}
	defer rows.Close()

	var results []domain.DomainPerformance
	for rows.Next() {
		var emailDomain string
		var sent, delivered, bounced, complained int
		if err := rows.Scan(&emailDomain, &sent, &delivered, &bounced, &complained); err != nil {
			return nil, fmt.Errorf("failed to scan domain performance: %w", err)
		}
		if sent == 0 {
			continue
		}
		results = append(results, domain.DomainPerformance{
			Domain:        emailDomain,
			DeliveryRate:  float64(delivered) / float64(sent) * 100,
			ComplaintRate: float64(complained) / float64(sent) * 100,
			SpamRate:      float64(bounced+complained) / float64(sent) * 100,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate domain performance: %w", err)
	}
	return results, nil
}

func (r *analyticsRepository) CountConfirmedSubscribers(ctx context.Context, tenantID string) (int, int, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE is_confirmed), COUNT(*)
		FROM subscribers
		WHERE tenant_id = $1
	`
	var confirmed, total int
	if err := r.db.QueryRowContext(ctx, query, tenantID).Scan(&confirmed, &total); err != nil {
		return 0, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return confirmed, total, nil
}

func (r *analyticsRepository) CountSuppressionEntries(ctx context.Context, tenantID string) (int, error) {
	query := `SELECT COUNT(*) FROM suppression_entries WHERE tenant_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, tenantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count suppression entries: %w", err)
	}
	return count, nil
}
