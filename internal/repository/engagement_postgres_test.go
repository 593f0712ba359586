package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/repository/testutil"
)

func TestGetClicks(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEngagementRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "campaign_id", "subscriber_id", "url", "created_at"}).
		AddRow("click1", "tenant123", "camp123", "sub1", "https://acme.com/pricing", now).
		AddRow("click2", "tenant123", "camp123", "sub1", "https://acme.com/docs", now)

	mock.ExpectQuery(`SELECT (.+) FROM link_click_events`).
		WithArgs("camp123", "tenant123").
		WillReturnRows(rows)

	clicks, err := repo.GetClicks(context.Background(), "tenant123", "camp123")
	require.NoError(t, err)
	require.Len(t, clicks, 2)
	assert.Equal(t, "https://acme.com/docs", clicks[1].URL)

	mock.ExpectQuery(`SELECT (.+) FROM link_click_events`).
		WithArgs("camp123", "tenant123").
		WillReturnError(errors.New("database error"))

	clicks, err = repo.GetClicks(context.Background(), "tenant123", "camp123")
	require.Error(t, err)
	assert.Nil(t, clicks)
}

func TestGetViews(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEngagementRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "campaign_id", "subscriber_id", "user_agent", "ip", "created_at"}).
		AddRow("view1", "tenant123", "camp123", "sub1", "Mozilla/5.0", "203.0.113.9", now)

	mock.ExpectQuery(`SELECT (.+) FROM web_view_events`).
		WithArgs("camp123", "tenant123").
		WillReturnRows(rows)

	views, err := repo.GetViews(context.Background(), "tenant123", "camp123")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Mozilla/5.0", views[0].UserAgent)
}
