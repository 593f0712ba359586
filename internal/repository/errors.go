package repository

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes surfaced by the composite-key schema
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isUniqueViolation reports whether err is a uniqueness violation,
// optionally on a specific constraint
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// isForeignKeyViolation reports whether err is a referential-integrity
// failure. With composite (id, tenant_id) foreign keys this is how a
// cross-tenant reference or a reference to a deleted tenant surfaces.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation
}
