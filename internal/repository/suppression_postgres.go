package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mailkite/mailkite/internal/domain"
)

type suppressionRepository struct {
	db *sql.DB
}

// NewSuppressionRepository creates a new PostgreSQL suppression repository
func NewSuppressionRepository(db *sql.DB) domain.SuppressionRepository {
	return &suppressionRepository{db: db}
}

const suppressionSelectFields = `id, tenant_id, email, domain, reason, created_at`

func (r *suppressionRepository) CreateEntry(ctx context.Context, entry *domain.SuppressionEntry) error {
	entry.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO suppression_entries (id, tenant_id, email, domain, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id, email, domain) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.TenantID,
		strings.ToLower(entry.Email),
		strings.ToLower(entry.Domain),
		entry.Reason,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create suppression entry: %w", err)
	}
	return nil
}

func (r *suppressionRepository) GetEntries(ctx context.Context, tenantID string) ([]*domain.SuppressionEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM suppression_entries WHERE tenant_id = $1 ORDER BY created_at DESC`, suppressionSelectFields)

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get suppression entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.SuppressionEntry
	for rows.Next() {
		entry, err := domain.ScanSuppressionEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan suppression entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suppression entries: %w", err)
	}
	return entries, nil
}

// IsSuppressed matches the address against exact-email entries and against
// domain entries by the exact domain of the address. Subdomains do not
// match a parent-domain entry.
func (r *suppressionRepository) IsSuppressed(ctx context.Context, tenantID, email string) (bool, error) {
	email = strings.ToLower(email)
	emailDomain := ""
	if at := strings.LastIndex(email, "@"); at >= 0 {
		emailDomain = email[at+1:]
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM suppression_entries
			WHERE tenant_id = $1 AND ((email <> '' AND email = $2) OR (domain <> '' AND domain = $3))
		)
	`
	var suppressed bool
	if err := r.db.QueryRowContext(ctx, query, tenantID, email, emailDomain).Scan(&suppressed); err != nil {
		return false, fmt.Errorf("failed to check suppression: %w", err)
	}
	return suppressed, nil
}
