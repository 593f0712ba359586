package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mailkite/mailkite/internal/domain"
)

type deliveryRepository struct {
	db *sql.DB
}

// NewDeliveryRepository creates a new PostgreSQL delivery ledger repository
func NewDeliveryRepository(db *sql.DB) domain.DeliveryRepository {
	return &deliveryRepository{db: db}
}

const deliverySelectFields = `id, tenant_id, campaign_id, subscriber_id, status,
	sent_at, delivered_at, opened_at, clicked_at, bounced_at, complained_at,
	unsubscribed_at, failed_at, created_at, updated_at`

// WithTransaction executes a function within a transaction
func (r *deliveryRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// eligibleSubscribers selects the campaign's audience: active members of
// any target list. The suppression filter is applied on top of it by the
// enrollment insert.
const eligibleSubscribers = `
	FROM subscribers s
	WHERE s.tenant_id = $1
	  AND s.status = 'active'
	  AND EXISTS (
		SELECT 1 FROM subscriber_lists sl
		WHERE sl.subscriber_id = s.id AND sl.tenant_id = s.tenant_id AND sl.list_id = ANY($2)
	  )`

const notSuppressed = `
	  AND NOT EXISTS (
		SELECT 1 FROM suppression_entries se
		WHERE se.tenant_id = s.tenant_id
		  AND ((se.email <> '' AND se.email = LOWER(s.email))
			OR (se.domain <> '' AND se.domain = LOWER(split_part(s.email, '@', 2))))
	  )`

// FanOut enrolls every eligible, non-suppressed subscriber of the
// campaign's target lists as a pending delivery record. The enrollment is
// one INSERT ... SELECT; the ON CONFLICT DO NOTHING on the
// (campaign_id, subscriber_id) unique makes repeated and concurrent runs
// converge on the same ledger without duplicates, and an already-enrolled
// subscriber counts as success. The analytics row's total_subscribers
// grows by the rows actually inserted, so the incremental counter always
// equals the ledger row count a recompute would find.
func (r *deliveryRepository) FanOut(ctx context.Context, campaign *domain.Campaign) (*domain.FanOutResult, error) {
	result := &domain.FanOutResult{}

	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		listIDs := pq.Array([]string(campaign.ListIDs))

		countQuery := `SELECT COUNT(*)` + eligibleSubscribers
		if err := tx.QueryRowContext(ctx, countQuery, campaign.TenantID, listIDs).Scan(&result.Eligible); err != nil {
			return fmt.Errorf("failed to count eligible subscribers: %w", err)
		}

		var clean int
		cleanQuery := `SELECT COUNT(*)` + eligibleSubscribers + notSuppressed
		if err := tx.QueryRowContext(ctx, cleanQuery, campaign.TenantID, listIDs).Scan(&clean); err != nil {
			return fmt.Errorf("failed to count non-suppressed subscribers: %w", err)
		}
		result.Suppressed = result.Eligible - clean

		insertQuery := `
			INSERT INTO delivery_records (id, tenant_id, campaign_id, subscriber_id, status, created_at, updated_at)
			SELECT gen_random_uuid(), s.tenant_id, $3, s.id, 'pending', $4, $4` +
			eligibleSubscribers + notSuppressed + `
			ON CONFLICT (campaign_id, subscriber_id) DO NOTHING`

		res, err := tx.ExecContext(ctx, insertQuery, campaign.TenantID, listIDs, campaign.ID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to enroll subscribers: %w", err)
		}

		enrolled, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		result.Enrolled = int(enrolled)

		audienceQuery := `
			INSERT INTO campaign_analytics (campaign_id, tenant_id, total_subscribers, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (campaign_id) DO UPDATE
			SET total_subscribers = campaign_analytics.total_subscribers + EXCLUDED.total_subscribers,
				updated_at = EXCLUDED.updated_at`
		if _, err := tx.ExecContext(ctx, audienceQuery, campaign.ID, campaign.TenantID, enrolled, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to record audience size: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyEvent applies one delivery-outcome event atomically. The record row
// is locked for the duration of the transaction, so two handlers processing
// events for the same record serialize and each counter increments at most
// once per transition.
func (r *deliveryRepository) ApplyEvent(ctx context.Context, tenantID string, event *domain.DeliveryEvent) (*domain.ApplyEventResult, error) {
	result := &domain.ApplyEventResult{}

	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`
			SELECT %s FROM delivery_records
			WHERE campaign_id = $1 AND subscriber_id = $2 AND tenant_id = $3
			FOR UPDATE`, deliverySelectFields)

		record, err := domain.ScanDeliveryRecord(tx.QueryRowContext(ctx, query, event.CampaignID, event.SubscriberID, tenantID))
		if err == sql.ErrNoRows {
			return &domain.ErrNotFound{Entity: "delivery record", ID: event.CampaignID + "/" + event.SubscriberID}
		}
		if err != nil {
			return fmt.Errorf("failed to get delivery record: %w", err)
		}

		result.PreviousStatus = record.Status

		// Duplicate events are detected by the already-set stamp
		stamp := record.TimestampFor(event.Type)
		if stamp == nil {
			return domain.NewValidationError(fmt.Sprintf("unknown event type: %s", event.Type))
		}
		if *stamp != nil {
			return nil
		}

		at := event.Timestamp
		if at.IsZero() {
			at = time.Now().UTC()
		}

		newStatus := record.Status
		if next, ok := event.Type.StatusAfter(); ok && next.Rank() > record.Status.Rank() {
			newStatus = next
			result.StatusChanged = true
		}

		column, ok := domain.CounterColumn(event.Type)
		if !ok {
			return domain.NewValidationError(fmt.Sprintf("unknown event type: %s", event.Type))
		}
		stampColumn := column + "_at"

		updateQuery := fmt.Sprintf(`
			UPDATE delivery_records
			SET status = $2, %s = $3, updated_at = $4
			WHERE id = $1`, stampColumn)
		if _, err := tx.ExecContext(ctx, updateQuery, record.ID, newStatus, at, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to update delivery record: %w", err)
		}

		counterQuery := fmt.Sprintf(`
			INSERT INTO campaign_analytics (campaign_id, tenant_id, %s, updated_at)
			VALUES ($1, $2, 1, $3)
			ON CONFLICT (campaign_id) DO UPDATE
			SET %s = campaign_analytics.%s + 1, updated_at = $3`, column, column, column)
		if _, err := tx.ExecContext(ctx, counterQuery, event.CampaignID, tenantID, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to increment analytics counter: %w", err)
		}

		switch event.Type {
		case domain.EventTypeClicked:
			clickQuery := `
				INSERT INTO link_click_events (id, tenant_id, campaign_id, subscriber_id, url, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)`
			if _, err := tx.ExecContext(ctx, clickQuery,
				uuid.New().String(), tenantID, event.CampaignID, event.SubscriberID, event.URL, at); err != nil {
				return fmt.Errorf("failed to record link click: %w", err)
			}
		case domain.EventTypeOpened:
			if event.UserAgent != "" || event.IP != "" {
				viewQuery := `
					INSERT INTO web_view_events (id, tenant_id, campaign_id, subscriber_id, user_agent, ip, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7)`
				if _, err := tx.ExecContext(ctx, viewQuery,
					uuid.New().String(), tenantID, event.CampaignID, event.SubscriberID, event.UserAgent, event.IP, at); err != nil {
					return fmt.Errorf("failed to record web view: %w", err)
				}
			}
		case domain.EventTypeBounced:
			if err := r.applyNegativeOutcome(ctx, tx, tenantID, record.SubscriberID,
				domain.SubscriberStatusBounced, domain.SuppressionReasonHardBounce, at); err != nil {
				return err
			}
		case domain.EventTypeComplained:
			if err := r.applyNegativeOutcome(ctx, tx, tenantID, record.SubscriberID,
				domain.SubscriberStatusComplained, domain.SuppressionReasonComplaint, at); err != nil {
				return err
			}
		case domain.EventTypeUnsubscribed:
			subQuery := `UPDATE subscribers SET status = $3, updated_at = $4 WHERE id = $1 AND tenant_id = $2`
			if _, err := tx.ExecContext(ctx, subQuery,
				record.SubscriberID, tenantID, domain.SubscriberStatusUnsubscribed, time.Now().UTC()); err != nil {
				return fmt.Errorf("failed to update subscriber status: %w", err)
			}
		}

		result.Applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyNegativeOutcome mutates the subscriber status and adds the address
// to the tenant's suppression list, inside the caller's transaction.
func (r *deliveryRepository) applyNegativeOutcome(ctx context.Context, tx *sql.Tx, tenantID, subscriberID string,
	status domain.SubscriberStatus, reason domain.SuppressionReason, at time.Time) error {

	var email string
	subQuery := `
		UPDATE subscribers SET status = $3, updated_at = $4
		WHERE id = $1 AND tenant_id = $2
		RETURNING email`
	if err := tx.QueryRowContext(ctx, subQuery, subscriberID, tenantID, status, time.Now().UTC()).Scan(&email); err != nil {
		return fmt.Errorf("failed to update subscriber status: %w", err)
	}

	supQuery := `
		INSERT INTO suppression_entries (id, tenant_id, email, domain, reason, created_at)
		VALUES ($1, $2, LOWER($3), '', $4, $5)
		ON CONFLICT (tenant_id, email, domain) DO NOTHING`
	if _, err := tx.ExecContext(ctx, supQuery, uuid.New().String(), tenantID, email, reason, at); err != nil {
		return fmt.Errorf("failed to create suppression entry: %w", err)
	}
	return nil
}

func (r *deliveryRepository) GetRecord(ctx context.Context, tenantID, campaignID, subscriberID string) (*domain.DeliveryRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM delivery_records
		WHERE campaign_id = $1 AND subscriber_id = $2 AND tenant_id = $3`, deliverySelectFields)

	record, err := domain.ScanDeliveryRecord(r.db.QueryRowContext(ctx, query, campaignID, subscriberID, tenantID))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "delivery record", ID: campaignID + "/" + subscriberID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery record: %w", err)
	}
	return record, nil
}

func (r *deliveryRepository) ListRecords(ctx context.Context, tenantID, campaignID string) ([]*domain.DeliveryRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM delivery_records
		WHERE campaign_id = $1 AND tenant_id = $2
		ORDER BY created_at`, deliverySelectFields)

	rows, err := r.db.QueryContext(ctx, query, campaignID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery records: %w", err)
	}
	defer rows.Close()

	var records []*domain.DeliveryRecord
	for rows.Next() {
		record, err := domain.ScanDeliveryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delivery records: %w", err)
	}
	return records, nil
}

func (r *deliveryRepository) CountPending(ctx context.Context, tenantID, campaignID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM delivery_records
		WHERE campaign_id = $1 AND tenant_id = $2 AND status = 'pending'`

	var count int
	if err := r.db.QueryRowContext(ctx, query, campaignID, tenantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}
	return count, nil
}
