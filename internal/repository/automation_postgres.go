package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mailkite/mailkite/internal/domain"
)

type automationRepository struct {
	db *sql.DB
}

// NewAutomationRepository creates a new PostgreSQL automation rule repository
func NewAutomationRepository(db *sql.DB) domain.AutomationRepository {
	return &automationRepository{db: db}
}

const automationSelectFields = `id, tenant_id, name, trigger_type, condition, action, config, is_active, created_at, updated_at`

func (r *automationRepository) CreateRule(ctx context.Context, rule *domain.AutomationRule) error {
	now := time.Now().UTC()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	query := `
		INSERT INTO automation_rules (id, tenant_id, name, trigger_type, condition, action, config, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		rule.ID,
		rule.TenantID,
		rule.Name,
		rule.Trigger,
		rule.Condition,
		rule.Action,
		rule.Config,
		rule.IsActive,
		rule.CreatedAt,
		rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create automation rule: %w", err)
	}
	return nil
}

func (r *automationRepository) GetRules(ctx context.Context, tenantID string) ([]*domain.AutomationRule, error) {
	query := fmt.Sprintf(`SELECT %s FROM automation_rules WHERE tenant_id = $1 ORDER BY created_at`, automationSelectFields)

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get automation rules: %w", err)
	}
	defer rows.Close()

	var rules []*domain.AutomationRule
	for rows.Next() {
		rule, err := domain.ScanAutomationRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan automation rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate automation rules: %w", err)
	}
	return rules, nil
}

func (r *automationRepository) GetActiveRulesByTrigger(ctx context.Context, tenantID string, trigger domain.AutomationTrigger) ([]*domain.AutomationRule, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM automation_rules
		WHERE tenant_id = $1 AND trigger_type = $2 AND is_active
		ORDER BY created_at`, automationSelectFields)

	rows, err := r.db.QueryContext(ctx, query, tenantID, trigger)
	if err != nil {
		return nil, fmt.Errorf("failed to get active automation rules: %w", err)
	}
	defer rows.Close()

	var rules []*domain.AutomationRule
	for rows.Next() {
		rule, err := domain.ScanAutomationRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan automation rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate automation rules: %w", err)
	}
	return rules, nil
}

func (r *automationRepository) SetRuleActive(ctx context.Context, tenantID, id string, active bool) error {
	query := `
		UPDATE automation_rules
		SET is_active = $3, updated_at = $4
		WHERE id = $1 AND tenant_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, tenantID, active, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update automation rule: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "automation rule", ID: id}
	}
	return nil
}

func (r *automationRepository) DeleteRule(ctx context.Context, tenantID, id string) error {
	query := `DELETE FROM automation_rules WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete automation rule: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "automation rule", ID: id}
	}
	return nil
}
