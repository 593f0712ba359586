package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mailkite/mailkite/internal/domain"
)

type listRepository struct {
	db *sql.DB
}

// NewListRepository creates a new PostgreSQL list repository
func NewListRepository(db *sql.DB) domain.ListRepository {
	return &listRepository{db: db}
}

const listSelectFields = `id, tenant_id, name, description, subscriber_count, created_at, updated_at`

func (r *listRepository) CreateList(ctx context.Context, list *domain.List) error {
	now := time.Now().UTC()
	list.CreatedAt = now
	list.UpdatedAt = now

	query := `
		INSERT INTO lists (id, tenant_id, name, description, subscriber_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		list.ID,
		list.TenantID,
		list.Name,
		list.Description,
		list.SubscriberCount,
		list.CreatedAt,
		list.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.NewValidationError(fmt.Sprintf("a list named %q already exists", list.Name))
		}
		return fmt.Errorf("failed to create list: %w", err)
	}
	return nil
}

func (r *listRepository) GetListByID(ctx context.Context, tenantID, id string) (*domain.List, error) {
	query := fmt.Sprintf(`SELECT %s FROM lists WHERE id = $1 AND tenant_id = $2`, listSelectFields)

	list, err := domain.ScanList(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "list", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return list, nil
}

func (r *listRepository) GetLists(ctx context.Context, tenantID string) ([]*domain.List, error) {
	query := fmt.Sprintf(`SELECT %s FROM lists WHERE tenant_id = $1 ORDER BY created_at DESC`, listSelectFields)

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists: %w", err)
	}
	defer rows.Close()

	var lists []*domain.List
	for rows.Next() {
		list, err := domain.ScanList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}
	return lists, nil
}

func (r *listRepository) UpdateList(ctx context.Context, list *domain.List) error {
	list.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE lists
		SET name = $3, description = $4, updated_at = $5
		WHERE id = $1 AND tenant_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		list.ID,
		list.TenantID,
		list.Name,
		list.Description,
		list.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.NewValidationError(fmt.Sprintf("a list named %q already exists", list.Name))
		}
		return fmt.Errorf("failed to update list: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "list", ID: list.ID}
	}
	return nil
}

// DeleteList removes a list. Memberships cascade; subscribers themselves
// are left untouched.
func (r *listRepository) DeleteList(ctx context.Context, tenantID, id string) error {
	query := `DELETE FROM lists WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "list", ID: id}
	}
	return nil
}

func (r *listRepository) RefreshSubscriberCount(ctx context.Context, tenantID, id string) error {
	query := `
		UPDATE lists
		SET subscriber_count = (
			SELECT COUNT(*) FROM subscriber_lists
			WHERE list_id = $1 AND tenant_id = $2
		), updated_at = $3
		WHERE id = $1 AND tenant_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, tenantID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to refresh subscriber count: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "list", ID: id}
	}
	return nil
}
