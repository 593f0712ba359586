package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/mailkite/mailkite/internal/domain"
)

type subscriberRepository struct {
	db *sql.DB
}

// NewSubscriberRepository creates a new PostgreSQL subscriber repository
func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepository{db: db}
}

const subscriberSelectFields = `id, tenant_id, email, first_name, last_name, status,
	optin_ip, optin_at, confirmation_token, is_confirmed, created_at, updated_at`

func (r *subscriberRepository) CreateSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	now := time.Now().UTC()
	subscriber.CreatedAt = now
	subscriber.UpdatedAt = now

	query := `
		INSERT INTO subscribers (id, tenant_id, email, first_name, last_name, status,
			optin_ip, optin_at, confirmation_token, is_confirmed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		subscriber.ID,
		subscriber.TenantID,
		subscriber.Email,
		subscriber.FirstName,
		subscriber.LastName,
		subscriber.Status,
		subscriber.OptInIP,
		subscriber.OptInAt,
		subscriber.ConfirmationToken,
		subscriber.IsConfirmed,
		subscriber.CreatedAt,
		subscriber.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.NewValidationError(fmt.Sprintf("subscriber %s already exists", subscriber.Email))
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (r *subscriberRepository) GetSubscriberByID(ctx context.Context, tenantID, id string) (*domain.Subscriber, error) {
	query := fmt.Sprintf(`SELECT %s FROM subscribers WHERE id = $1 AND tenant_id = $2`, subscriberSelectFields)

	subscriber, err := domain.ScanSubscriber(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "subscriber", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return subscriber, nil
}

func (r *subscriberRepository) GetSubscriberByEmail(ctx context.Context, tenantID, email string) (*domain.Subscriber, error) {
	query := fmt.Sprintf(`SELECT %s FROM subscribers WHERE tenant_id = $1 AND LOWER(email) = LOWER($2)`, subscriberSelectFields)

	subscriber, err := domain.ScanSubscriber(r.db.QueryRowContext(ctx, query, tenantID, email))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "subscriber", ID: email}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber by email: %w", err)
	}
	return subscriber, nil
}

func (r *subscriberRepository) GetSubscribers(ctx context.Context, tenantID string, listID string) ([]*domain.Subscriber, error) {
	var rows *sql.Rows
	var err error

	if listID != "" {
		query := fmt.Sprintf(`
			SELECT %s FROM subscribers s
			JOIN subscriber_lists sl ON sl.subscriber_id = s.id AND sl.tenant_id = s.tenant_id
			WHERE s.tenant_id = $1 AND sl.list_id = $2
			ORDER BY s.created_at DESC`, prefixFields(subscriberSelectFields, "s"))
		rows, err = r.db.QueryContext(ctx, query, tenantID, listID)
	} else {
		query := fmt.Sprintf(`SELECT %s FROM subscribers WHERE tenant_id = $1 ORDER BY created_at DESC`, subscriberSelectFields)
		rows, err = r.db.QueryContext(ctx, query, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*domain.Subscriber
	for rows.Next() {
		subscriber, err := domain.ScanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, subscriber)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}
	return subscribers, nil
}

func (r *subscriberRepository) UpdateSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	subscriber.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE subscribers
		SET email = $3, first_name = $4, last_name = $5, status = $6,
			optin_ip = $7, optin_at = $8, confirmation_token = $9, is_confirmed = $10, updated_at = $11
		WHERE id = $1 AND tenant_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		subscriber.ID,
		subscriber.TenantID,
		subscriber.Email,
		subscriber.FirstName,
		subscriber.LastName,
		subscriber.Status,
		subscriber.OptInIP,
		subscriber.OptInAt,
		subscriber.ConfirmationToken,
		subscriber.IsConfirmed,
		subscriber.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.NewValidationError(fmt.Sprintf("subscriber %s already exists", subscriber.Email))
		}
		return fmt.Errorf("failed to update subscriber: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "subscriber", ID: subscriber.ID}
	}
	return nil
}

func (r *subscriberRepository) UpdateSubscriberStatus(ctx context.Context, tenantID, id string, status domain.SubscriberStatus) error {
	query := `
		UPDATE subscribers
		SET status = $3, updated_at = $4
		WHERE id = $1 AND tenant_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, tenantID, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update subscriber status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "subscriber", ID: id}
	}
	return nil
}

// ConfirmByToken flips is_confirmed for the subscriber holding the token.
// Token lookup is global: the confirm link carries no tenant context.
func (r *subscriberRepository) ConfirmByToken(ctx context.Context, token string) (*domain.Subscriber, error) {
	query := fmt.Sprintf(`
		UPDATE subscribers
		SET is_confirmed = TRUE, updated_at = $2
		WHERE confirmation_token = $1 AND confirmation_token <> ''
		RETURNING %s`, subscriberSelectFields)

	subscriber, err := domain.ScanSubscriber(r.db.QueryRowContext(ctx, query, token, time.Now().UTC()))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "subscriber", ID: token}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to confirm subscriber: %w", err)
	}
	return subscriber, nil
}

// DeleteSubscriber removes a subscriber and, via cascades, the memberships,
// delivery records and engagement rows that reference it.
func (r *subscriberRepository) DeleteSubscriber(ctx context.Context, tenantID, id string) error {
	query := `DELETE FROM subscribers WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "subscriber", ID: id}
	}
	return nil
}

// AddToLists inserts memberships with set-union semantics. The composite
// foreign keys reject a list or subscriber owned by another tenant.
func (r *subscriberRepository) AddToLists(ctx context.Context, tenantID, subscriberID string, listIDs []string) error {
	if len(listIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO subscriber_lists (subscriber_id, list_id, tenant_id, created_at)
		SELECT $1, unnest($2::uuid[]), $3, $4
		ON CONFLICT (subscriber_id, list_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, subscriberID, pq.Array(listIDs), tenantID, time.Now().UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ErrTenantMismatch{Entity: "list", ID: subscriberID}
		}
		return fmt.Errorf("failed to add subscriber to lists: %w", err)
	}
	return nil
}

func (r *subscriberRepository) RemoveFromList(ctx context.Context, tenantID, subscriberID, listID string) error {
	query := `
		DELETE FROM subscriber_lists
		WHERE subscriber_id = $1 AND list_id = $2 AND tenant_id = $3
	`
	_, err := r.db.ExecContext(ctx, query, subscriberID, listID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to remove subscriber from list: %w", err)
	}
	return nil
}

func (r *subscriberRepository) GetListIDs(ctx context.Context, tenantID, subscriberID string) ([]string, error) {
	query := `
		SELECT list_id FROM subscriber_lists
		WHERE subscriber_id = $1 AND tenant_id = $2
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, subscriberID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list memberships: %w", err)
	}
	defer rows.Close()

	var listIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan list membership: %w", err)
		}
		listIDs = append(listIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list memberships: %w", err)
	}
	return listIDs, nil
}
