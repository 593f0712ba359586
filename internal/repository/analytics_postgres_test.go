package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/repository/testutil"
)

var analyticsColumns = []string{
	"campaign_id", "tenant_id", "total_subscribers", "sent", "delivered",
	"opened", "clicked", "bounced", "complained", "unsubscribed", "failed", "updated_at",
}

func TestGetCampaignAnalytics(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewAnalyticsRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows(analyticsColumns).
		AddRow("camp123", "tenant123", 100, 95, 90, 40, 12, 3, 1, 2, 2, now)

	mock.ExpectQuery(`SELECT (.+) FROM campaign_analytics`).
		WithArgs("camp123", "tenant123").
		WillReturnRows(rows)

	analytics, err := repo.GetCampaignAnalytics(context.Background(), "tenant123", "camp123")
	require.NoError(t, err)
	assert.Equal(t, 95, analytics.Sent)
	assert.Equal(t, 12, analytics.Clicked)

	// A campaign with no events yet yields a zero row
	mock.ExpectQuery(`SELECT (.+) FROM campaign_analytics`).
		WithArgs("fresh", "tenant123").
		WillReturnError(sql.ErrNoRows)

	analytics, err = repo.GetCampaignAnalytics(context.Background(), "tenant123", "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", analytics.CampaignID)
	assert.Zero(t, analytics.Sent)
}

func TestRecomputeAnalytics(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewAnalyticsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("camp123", "tenant123").
		WillReturnRows(sqlmock.NewRows([]string{
			"count", "sent", "delivered", "opened", "clicked", "bounced", "complained", "unsubscribed", "failed",
		}).AddRow(100, 95, 90, 40, 12, 3, 1, 2, 2))
	mock.ExpectExec(`INSERT INTO campaign_analytics`).
		WithArgs("camp123", "tenant123", 100, 95, 90, 40, 12, 3, 1, 2, 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	analytics, err := repo.RecomputeAnalytics(context.Background(), "tenant123", "camp123")
	require.NoError(t, err)
	assert.Equal(t, 100, analytics.TotalSubscribers)
	assert.Equal(t, 95, analytics.Sent)
	assert.Equal(t, 3, analytics.Bounced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRateWindow(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewAnalyticsRepository(db)
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	mock.ExpectQuery(`SELECT (.+) FROM delivery_records`).
		WithArgs("tenant123", from, to).
		WillReturnRows(sqlmock.NewRows([]string{
			"sent", "delivered", "opened", "clicked", "bounced", "complained",
		}).AddRow(1000, 950, 400, 120, 30, 5))

	window, err := repo.GetRateWindow(context.Background(), "tenant123", from, to)
	require.NoError(t, err)
	assert.Equal(t, 1000, window.Sent)
	assert.Equal(t, 5, window.Complained)
}

func TestGetDomainPerformance(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"email_domain", "sent", "delivered", "bounced", "complained"}).
		AddRow("gmail.com", 200, 190, 8, 2).
		AddRow("yahoo.com", 100, 100, 0, 0)

	mock.ExpectQuery(`SELECT (.+) FROM delivery_records d`).
		WithArgs("tenant123").
		WillReturnRows(rows)

	results, err := repo.GetDomainPerformance(context.Background(), "tenant123")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "gmail.com", results[0].Domain)
	assert.InDelta(t, 95.0, results[0].DeliveryRate, 0.001)
	assert.InDelta(t, 1.0, results[0].ComplaintRate, 0.001)
	assert.InDelta(t, 5.0, results[0].SpamRate, 0.001)
	assert.InDelta(t, 100.0, results[1].DeliveryRate, 0.001)
}

func TestCountConfirmedSubscribers(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM subscribers`).
		WithArgs("tenant123").
		WillReturnRows(sqlmock.NewRows([]string{"confirmed", "total"}).AddRow(80, 100))

	confirmed, total, err := repo.CountConfirmedSubscribers(context.Background(), "tenant123")
	require.NoError(t, err)
	assert.Equal(t, 80, confirmed)
	assert.Equal(t, 100, total)
}

func TestCountSuppressionEntries(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM suppression_entries`).
		WithArgs("tenant123").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountSuppressionEntries(context.Background(), "tenant123")
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}
