package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/repository/testutil"
)

var userColumns = []string{
	"id", "email", "name", "password_hash", "role", "is_verified", "has_paid", "created_at", "updated_at",
}

func TestCreateUser(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db)

	user := &domain.User{
		ID:           "user123",
		Email:        "owner@acme.com",
		Name:         "Acme",
		PasswordHash: "$2a$10$hash",
		Role:         domain.UserRoleUser,
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(
			user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
			user.IsVerified, user.HasPaid, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	// Duplicate email
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(
			user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
			user.IsVerified, user.HasPaid, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnError(&pq.Error{Code: "23505"})

	err = repo.CreateUser(context.Background(), user)
	require.Error(t, err)
	assert.IsType(t, domain.ValidationError{}, err)
}

func TestGetUserByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows(userColumns).
		AddRow("user123", "owner@acme.com", "Acme", "$2a$10$hash", "user", true, false, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("user123").
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), "user123")
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.com", user.Email)
	assert.True(t, user.IsVerified)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	user, err = repo.GetUserByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Nil(t, user)
}

func TestGetUserByEmail(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows(userColumns).
		AddRow("user123", "owner@acme.com", "Acme", "$2a$10$hash", "admin", true, true, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("owner@acme.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "owner@acme.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)
}

func TestUpdateUser(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db)

	user := &domain.User{
		ID:    "user123",
		Email: "owner@acme.com",
		Role:  domain.UserRoleUser,
	}

	mock.ExpectExec(`UPDATE users`).
		WithArgs(
			user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
			user.IsVerified, user.HasPaid, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(context.Background(), user)
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(
			user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
			user.IsVerified, user.HasPaid, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateUser(context.Background(), user)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteUser(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("user123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteUser(context.Background(), "user123")
	require.NoError(t, err)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(errors.New("database error"))

	err = repo.DeleteUser(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete user")
}
