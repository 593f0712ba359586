package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mailkite/mailkite/internal/domain"
)

type templateRepository struct {
	db *sql.DB
}

// NewTemplateRepository creates a new PostgreSQL template repository
func NewTemplateRepository(db *sql.DB) domain.TemplateRepository {
	return &templateRepository{db: db}
}

const templateSelectFields = `id, tenant_id, name, subject, body_html, body_text, created_at, updated_at`

func (r *templateRepository) CreateTemplate(ctx context.Context, template *domain.Template) error {
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now

	query := `
		INSERT INTO templates (id, tenant_id, name, subject, body_html, body_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		template.ID,
		template.TenantID,
		template.Name,
		template.Subject,
		template.BodyHTML,
		template.BodyText,
		template.CreatedAt,
		template.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.NewValidationError(fmt.Sprintf("a template named %q already exists", template.Name))
		}
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

func (r *templateRepository) GetTemplateByID(ctx context.Context, tenantID, id string) (*domain.Template, error) {
	query := fmt.Sprintf(`SELECT %s FROM templates WHERE id = $1 AND tenant_id = $2`, templateSelectFields)

	template, err := domain.ScanTemplate(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "template", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return template, nil
}

func (r *templateRepository) GetTemplates(ctx context.Context, tenantID string) ([]*domain.Template, error) {
	query := fmt.Sprintf(`SELECT %s FROM templates WHERE tenant_id = $1 ORDER BY created_at DESC`, templateSelectFields)

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.Template
	for rows.Next() {
		template, err := domain.ScanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}
	return templates, nil
}

func (r *templateRepository) UpdateTemplate(ctx context.Context, template *domain.Template) error {
	template.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE templates
		SET name = $3, subject = $4, body_html = $5, body_text = $6, updated_at = $7
		WHERE id = $1 AND tenant_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		template.ID,
		template.TenantID,
		template.Name,
		template.Subject,
		template.BodyHTML,
		template.BodyText,
		template.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.NewValidationError(fmt.Sprintf("a template named %q already exists", template.Name))
		}
		return fmt.Errorf("failed to update template: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "template", ID: template.ID}
	}
	return nil
}

// DeleteTemplate removes a template. Campaigns referencing it block the
// delete through the composite foreign key.
func (r *templateRepository) DeleteTemplate(ctx context.Context, tenantID, id string) error {
	query := `DELETE FROM templates WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, tenantID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("template is referenced by a campaign")
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "template", ID: id}
	}
	return nil
}
