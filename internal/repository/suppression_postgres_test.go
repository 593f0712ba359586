package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/repository/testutil"
)

func TestCreateSuppressionEntry(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewSuppressionRepository(db)

	entry := &domain.SuppressionEntry{
		ID:       "sup123",
		TenantID: "tenant123",
		Email:    "Bad@Example.com",
		Reason:   domain.SuppressionReasonHardBounce,
	}

	// Email and domain are lowercased before storage
	mock.ExpectExec(`INSERT INTO suppression_entries`).
		WithArgs(entry.ID, entry.TenantID, "bad@example.com", "", entry.Reason, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateEntry(context.Background(), entry)
	require.NoError(t, err)

	// A duplicate entry resolves through ON CONFLICT DO NOTHING
	mock.ExpectExec(`INSERT INTO suppression_entries`).
		WithArgs(entry.ID, entry.TenantID, "bad@example.com", "", entry.Reason, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.CreateEntry(context.Background(), entry)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO suppression_entries`).
		WithArgs(entry.ID, entry.TenantID, "bad@example.com", "", entry.Reason, sqlmock.AnyArg()).
		WillReturnError(errors.New("database error"))

	err = repo.CreateEntry(context.Background(), entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create suppression entry")
}

func TestGetSuppressionEntries(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewSuppressionRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "email", "domain", "reason", "created_at"}).
		AddRow("sup1", "tenant123", "bad@example.com", "", "hard_bounce", now).
		AddRow("sup2", "tenant123", "", "spamtrap.net", "manual", now)

	mock.ExpectQuery(`SELECT (.+) FROM suppression_entries WHERE tenant_id = \$1`).
		WithArgs("tenant123").
		WillReturnRows(rows)

	entries, err := repo.GetEntries(context.Background(), "tenant123")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bad@example.com", entries[0].Email)
	assert.Equal(t, "spamtrap.net", entries[1].Domain)
	assert.Equal(t, domain.SuppressionReasonManual, entries[1].Reason)
}

func TestIsSuppressed(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewSuppressionRepository(db)

	// The address and its domain are both checked in one query
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("tenant123", "vip@blocked.com", "blocked.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	suppressed, err := repo.IsSuppressed(context.Background(), "tenant123", "VIP@Blocked.com")
	require.NoError(t, err)
	assert.True(t, suppressed)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("tenant123", "ok@example.com", "example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	suppressed, err = repo.IsSuppressed(context.Background(), "tenant123", "ok@example.com")
	require.NoError(t, err)
	assert.False(t, suppressed)
}
