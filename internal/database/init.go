package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mailkite/mailkite/internal/database/schema"
	"github.com/mailkite/mailkite/internal/domain"
)

// InitializeDatabase creates all necessary database tables if they don't exist
func InitializeDatabase(db *sql.DB, rootEmail string) error {
	// Run all table creation queries
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Create root admin if it doesn't exist
	if rootEmail != "" {
		var exists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", rootEmail).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check root user existence: %w", err)
		}

		if !exists {
			// Root logs in with a password set via a reset flow; the random
			// hash here is never matchable.
			randomHash, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to generate root password hash: %w", err)
			}

			rootUser := &domain.User{
				ID:           uuid.New().String(),
				Email:        rootEmail,
				Name:         "Root User",
				PasswordHash: string(randomHash),
				Role:         domain.UserRoleAdmin,
				IsVerified:   true,
				CreatedAt:    time.Now().UTC(),
				UpdatedAt:    time.Now().UTC(),
			}

			query := `
				INSERT INTO users (id, email, name, password_hash, role, is_verified, has_paid, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`
			_, err = db.Exec(query,
				rootUser.ID,
				rootUser.Email,
				rootUser.Name,
				rootUser.PasswordHash,
				rootUser.Role,
				rootUser.IsVerified,
				rootUser.HasPaid,
				rootUser.CreatedAt,
				rootUser.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to create root user: %w", err)
			}
		}
	}

	return nil
}
