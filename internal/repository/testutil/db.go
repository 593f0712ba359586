package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// SetupMockDB returns a sqlmock-backed connection for repository tests.
// The cleanup closes the connection; unmet expectations are checked by
// the callers via mock.ExpectationsWereMet.
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to open sqlmock connection")

	return db, mock, func() {
		_ = db.Close()
	}
}
