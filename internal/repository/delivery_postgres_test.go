package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/repository/testutil"
)

var deliveryColumns = []string{
	"id", "tenant_id", "campaign_id", "subscriber_id", "status",
	"sent_at", "delivered_at", "opened_at", "clicked_at", "bounced_at", "complained_at",
	"unsubscribed_at", "failed_at", "created_at", "updated_at",
}

func deliveryRow(id, status string, sentAt, openedAt *time.Time) *sqlmock.Rows {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return sqlmock.NewRows(deliveryColumns).
		AddRow(id, "tenant123", "camp123", "sub123", status,
			sentAt, nil, openedAt, nil, nil, nil, nil, nil, now, now)
}

func TestFanOut(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)

	campaign := &domain.Campaign{
		ID:       "camp123",
		TenantID: "tenant123",
		ListIDs:  pq.StringArray{"list1", "list2"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("tenant123", pq.Array([]string{"list1", "list2"})).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("tenant123", pq.Array([]string{"list1", "list2"})).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(97))
	mock.ExpectExec(`INSERT INTO delivery_records`).
		WithArgs("tenant123", pq.Array([]string{"list1", "list2"}), "camp123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 97))
	mock.ExpectExec(`INSERT INTO campaign_analytics`).
		WithArgs("camp123", "tenant123", int64(97), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.FanOut(context.Background(), campaign)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Eligible)
	assert.Equal(t, 97, result.Enrolled)
	assert.Equal(t, 3, result.Suppressed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFanOutRepeatedRunEnrollsNothing(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)

	campaign := &domain.Campaign{
		ID:       "camp123",
		TenantID: "tenant123",
		ListIDs:  pq.StringArray{"list1"},
	}

	// Second run: the ON CONFLICT clause swallows every insert
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(97))
	mock.ExpectExec(`INSERT INTO delivery_records`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO campaign_analytics`).
		WithArgs("camp123", "tenant123", int64(0), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.FanOut(context.Background(), campaign)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Enrolled)
	assert.Equal(t, 3, result.Suppressed)
}

func TestFanOutRecordsAudienceSize(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)

	campaign := &domain.Campaign{
		ID:       "camp123",
		TenantID: "tenant123",
		ListIDs:  pq.StringArray{"list1"},
	}

	// total_subscribers grows by exactly the rows the enrollment inserted,
	// inside the same transaction, so the counter row matches the ledger
	// without waiting for a recompute
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectExec(`INSERT INTO delivery_records`).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`INSERT INTO campaign_analytics \(campaign_id, tenant_id, total_subscribers, updated_at\)`).
		WithArgs("camp123", "tenant123", int64(5), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.FanOut(context.Background(), campaign)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Enrolled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEventAdvancesStatus(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)
	sentAt := time.Now().UTC().Add(-time.Hour)

	event := &domain.DeliveryEvent{
		CampaignID:   "camp123",
		SubscriberID: "sub123",
		Type:         domain.EventTypeOpened,
		Timestamp:    time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "sub123", "tenant123").
		WillReturnRows(deliveryRow("rec123", "sent", &sentAt, nil))
	mock.ExpectExec(`UPDATE delivery_records`).
		WithArgs("rec123", domain.DeliveryStatusOpened, event.Timestamp, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO campaign_analytics`).
		WithArgs("camp123", "tenant123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.ApplyEvent(context.Background(), "tenant123", event)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.True(t, result.StatusChanged)
	assert.Equal(t, domain.DeliveryStatusSent, result.PreviousStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEventDuplicateIsNoOp(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)
	sentAt := time.Now().UTC().Add(-2 * time.Hour)
	openedAt := time.Now().UTC().Add(-time.Hour)

	event := &domain.DeliveryEvent{
		CampaignID:   "camp123",
		SubscriberID: "sub123",
		Type:         domain.EventTypeOpened,
	}

	// The opened stamp is already set, so nothing is written
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "sub123", "tenant123").
		WillReturnRows(deliveryRow("rec123", "opened", &sentAt, &openedAt))
	mock.ExpectCommit()

	result, err := repo.ApplyEvent(context.Background(), "tenant123", event)
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.False(t, result.StatusChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEventLateOpenAfterClick(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)
	sentAt := time.Now().UTC().Add(-time.Hour)

	event := &domain.DeliveryEvent{
		CampaignID:   "camp123",
		SubscriberID: "sub123",
		Type:         domain.EventTypeOpened,
		Timestamp:    time.Now().UTC(),
	}

	// The record already advanced to clicked; the open stamps its
	// timestamp and counts, but cannot move the status backwards
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "sub123", "tenant123").
		WillReturnRows(deliveryRow("rec123", "clicked", &sentAt, nil))
	mock.ExpectExec(`UPDATE delivery_records`).
		WithArgs("rec123", domain.DeliveryStatusClicked, event.Timestamp, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO campaign_analytics`).
		WithArgs("camp123", "tenant123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.ApplyEvent(context.Background(), "tenant123", event)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.False(t, result.StatusChanged)
	assert.Equal(t, domain.DeliveryStatusClicked, result.PreviousStatus)
}

func TestApplyEventClickRecordsEngagement(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)
	sentAt := time.Now().UTC().Add(-time.Hour)

	event := &domain.DeliveryEvent{
		CampaignID:   "camp123",
		SubscriberID: "sub123",
		Type:         domain.EventTypeClicked,
		Timestamp:    time.Now().UTC(),
		URL:          "https://acme.com/pricing",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "sub123", "tenant123").
		WillReturnRows(deliveryRow("rec123", "sent", &sentAt, nil))
	mock.ExpectExec(`UPDATE delivery_records`).
		WithArgs("rec123", domain.DeliveryStatusClicked, event.Timestamp, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO campaign_analytics`).
		WithArgs("camp123", "tenant123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO link_click_events`).
		WithArgs(sqlmock.AnyArg(), "tenant123", "camp123", "sub123", event.URL, event.Timestamp).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, err := repo.ApplyEvent(context.Background(), "tenant123", event)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEventBounceSuppressesSubscriber(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)
	sentAt := time.Now().UTC().Add(-time.Hour)

	event := &domain.DeliveryEvent{
		CampaignID:   "camp123",
		SubscriberID: "sub123",
		Type:         domain.EventTypeBounced,
		Timestamp:    time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "sub123", "tenant123").
		WillReturnRows(deliveryRow("rec123", "sent", &sentAt, nil))
	mock.ExpectExec(`UPDATE delivery_records`).
		WithArgs("rec123", domain.DeliveryStatusBounced, event.Timestamp, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO campaign_analytics`).
		WithArgs("camp123", "tenant123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE subscribers`).
		WithArgs("sub123", "tenant123", domain.SubscriberStatusBounced, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("alice@example.com"))
	mock.ExpectExec(`INSERT INTO suppression_entries`).
		WithArgs(sqlmock.AnyArg(), "tenant123", "alice@example.com", domain.SuppressionReasonHardBounce, event.Timestamp).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, err := repo.ApplyEvent(context.Background(), "tenant123", event)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.True(t, result.StatusChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEventUnknownRecord(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)

	event := &domain.DeliveryEvent{
		CampaignID:   "camp123",
		SubscriberID: "ghost",
		Type:         domain.EventTypeOpened,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "ghost", "tenant123").
		WillReturnRows(sqlmock.NewRows(deliveryColumns))
	mock.ExpectRollback()

	result, err := repo.ApplyEvent(context.Background(), "tenant123", event)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Nil(t, result)
}

func TestGetRecord(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)
	sentAt := time.Now().UTC().Add(-time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "sub123", "tenant123").
		WillReturnRows(deliveryRow("rec123", "sent", &sentAt, nil))

	record, err := repo.GetRecord(context.Background(), "tenant123", "camp123", "sub123")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryStatusSent, record.Status)
	require.NotNil(t, record.SentAt)
}

func TestListRecords(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows(deliveryColumns).
		AddRow("rec1", "tenant123", "camp123", "sub1", "sent", &now, nil, nil, nil, nil, nil, nil, nil, now, now).
		AddRow("rec2", "tenant123", "camp123", "sub2", "pending", nil, nil, nil, nil, nil, nil, nil, nil, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "tenant123").
		WillReturnRows(rows)

	records, err := repo.ListRecords(context.Background(), "tenant123", "camp123")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.DeliveryStatusPending, records[1].Status)
}

func TestCountPending(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewDeliveryRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM delivery_records`).
		WithArgs("camp123", "tenant123").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountPending(context.Background(), "tenant123", "camp123")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
