package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mailkite/mailkite/internal/domain"
)

type campaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new PostgreSQL campaign repository
func NewCampaignRepository(db *sql.DB) domain.CampaignRepository {
	return &campaignRepository{db: db}
}

var campaignSelectColumns = []string{
	"id", "tenant_id", "name", "subject", "template_id", "sender_name", "sender_email",
	"list_ids", "status", "scheduled_at", "sent_at", "created_at", "updated_at",
}

const campaignSelectFields = `id, tenant_id, name, subject, template_id, sender_name, sender_email,
	list_ids, status, scheduled_at, sent_at, created_at, updated_at`

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	now := time.Now().UTC()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}
	if campaign.ListIDs == nil {
		campaign.ListIDs = pq.StringArray{}
	}

	query := `
		INSERT INTO campaigns (id, tenant_id, name, subject, template_id, sender_name, sender_email,
			list_ids, status, scheduled_at, sent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		campaign.ID,
		campaign.TenantID,
		campaign.Name,
		campaign.Subject,
		campaign.TemplateID,
		campaign.SenderName,
		campaign.SenderEmail,
		campaign.ListIDs,
		campaign.Status,
		campaign.ScheduledAt,
		campaign.SentAt,
		campaign.CreatedAt,
		campaign.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ErrTenantMismatch{Entity: "template", ID: stringValue(campaign.TemplateID)}
		}
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) GetCampaign(ctx context.Context, tenantID, id string) (*domain.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1 AND tenant_id = $2`, campaignSelectFields)

	campaign, err := domain.ScanCampaign(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "campaign", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

func (r *campaignRepository) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	campaign.UpdatedAt = time.Now().UTC()
	if campaign.ListIDs == nil {
		campaign.ListIDs = pq.StringArray{}
	}

	query := `
		UPDATE campaigns
		SET name = $3, subject = $4, template_id = $5, sender_name = $6, sender_email = $7,
			list_ids = $8, status = $9, scheduled_at = $10, sent_at = $11, updated_at = $12
		WHERE id = $1 AND tenant_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		campaign.ID,
		campaign.TenantID,
		campaign.Name,
		campaign.Subject,
		campaign.TemplateID,
		campaign.SenderName,
		campaign.SenderEmail,
		campaign.ListIDs,
		campaign.Status,
		campaign.ScheduledAt,
		campaign.SentAt,
		campaign.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ErrTenantMismatch{Entity: "template", ID: stringValue(campaign.TemplateID)}
		}
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "campaign", ID: campaign.ID}
	}
	return nil
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, params domain.ListCampaignsParams) (*domain.CampaignListResponse, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := psql.Select("COUNT(*)").
		From("campaigns").
		Where(sq.Eq{"tenant_id": params.TenantID})
	if params.Status != "" {
		countBuilder = countBuilder.Where(sq.Eq{"status": params.Status})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	queryBuilder := psql.Select(campaignSelectColumns...).
		From("campaigns").
		Where(sq.Eq{"tenant_id": params.TenantID}).
		OrderBy("created_at DESC")
	if params.Status != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"status": params.Status})
	}
	if params.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		queryBuilder = queryBuilder.Offset(uint64(params.Offset))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*domain.Campaign{}
	for rows.Next() {
		campaign, err := domain.ScanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate campaigns: %w", err)
	}

	return &domain.CampaignListResponse{
		Campaigns:  campaigns,
		TotalCount: total,
	}, nil
}

// DeleteCampaign removes a campaign and, via cascades, its delivery records,
// engagement rows and analytics.
func (r *campaignRepository) DeleteCampaign(ctx context.Context, tenantID, id string) error {
	query := `DELETE FROM campaigns WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "campaign", ID: id}
	}
	return nil
}

func (r *campaignRepository) GetDueCampaigns(ctx context.Context, now time.Time) ([]*domain.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM campaigns
		WHERE status = $1 AND scheduled_at IS NOT NULL AND scheduled_at <= $2
		ORDER BY scheduled_at`, campaignSelectFields)

	rows, err := r.db.QueryContext(ctx, query, domain.CampaignStatusScheduled, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*domain.Campaign
	for rows.Next() {
		campaign, err := domain.ScanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *campaignRepository) GetSendingCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM campaigns
		WHERE status = $1
		ORDER BY created_at`, campaignSelectFields)

	rows, err := r.db.QueryContext(ctx, query, domain.CampaignStatusSending)
	if err != nil {
		return nil, fmt.Errorf("failed to get sending campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*domain.Campaign
	for rows.Next() {
		campaign, err := domain.ScanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate campaigns: %w", err)
	}
	return campaigns, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
