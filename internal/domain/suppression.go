package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_suppression_service.go -package mocks github.com/mailkite/mailkite/internal/domain SuppressionService
//go:generate mockgen -destination mocks/mock_suppression_repository.go -package mocks github.com/mailkite/mailkite/internal/domain SuppressionRepository

// SuppressionReason records why an address or domain was blacklisted
type SuppressionReason string

const (
	SuppressionReasonHardBounce SuppressionReason = "hard_bounce"
	SuppressionReasonComplaint  SuppressionReason = "complaint"
	SuppressionReasonManual     SuppressionReason = "manual"
	SuppressionReasonSpam       SuppressionReason = "spam"
)

// IsValid reports whether the reason is one of the known values
func (r SuppressionReason) IsValid() bool {
	switch r {
	case SuppressionReasonHardBounce, SuppressionReasonComplaint,
		SuppressionReasonManual, SuppressionReasonSpam:
		return true
	}
	return false
}

// SuppressionEntry is a tenant-scoped blacklist entry. At least one of
// Email or Domain must be set. Entries are consulted before fan-out and
// never auto-deleted.
type SuppressionEntry struct {
	ID        string            `json:"id"`
	TenantID  string            `json:"tenant_id" db:"tenant_id"`
	Email     string            `json:"email,omitempty"`
	Domain    string            `json:"domain,omitempty"`
	Reason    SuppressionReason `json:"reason"`
	CreatedAt time.Time         `json:"created_at"`
}

// Validate performs validation on the suppression entry fields
func (e *SuppressionEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("invalid suppression entry: id is required")
	}
	if e.TenantID == "" {
		return fmt.Errorf("invalid suppression entry: tenant_id is required")
	}
	if e.Email == "" && e.Domain == "" {
		return fmt.Errorf("invalid suppression entry: email or domain is required")
	}
	if e.Email != "" && !govalidator.IsEmail(e.Email) {
		return fmt.Errorf("invalid suppression entry: email is not valid")
	}
	if !e.Reason.IsValid() {
		return fmt.Errorf("invalid suppression entry: unknown reason: %s", e.Reason)
	}
	return nil
}

// Matches reports whether the entry suppresses the given address, either by
// exact email match or by domain suffix of the email.
func (e *SuppressionEntry) Matches(email string) bool {
	email = strings.ToLower(email)
	if e.Email != "" && strings.ToLower(e.Email) == email {
		return true
	}
	if e.Domain != "" {
		at := strings.LastIndex(email, "@")
		if at >= 0 && email[at+1:] == strings.ToLower(e.Domain) {
			return true
		}
	}
	return false
}

// ScanSuppressionEntry scans a suppression entry from the database
func ScanSuppressionEntry(scanner interface {
	Scan(dest ...interface{}) error
}) (*SuppressionEntry, error) {
	var e SuppressionEntry
	if err := scanner.Scan(
		&e.ID,
		&e.TenantID,
		&e.Email,
		&e.Domain,
		&e.Reason,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// Request types
type CreateSuppressionRequest struct {
	Email  string            `json:"email,omitempty"`
	Domain string            `json:"domain,omitempty"`
	Reason SuppressionReason `json:"reason"`
}

func (r *CreateSuppressionRequest) Validate() error {
	if r.Email == "" && r.Domain == "" {
		return fmt.Errorf("invalid suppression request: email or domain is required")
	}
	if r.Email != "" && !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("invalid suppression request: email is not valid")
	}
	if r.Reason == "" {
		return fmt.Errorf("invalid suppression request: reason is required")
	}
	if !r.Reason.IsValid() {
		return fmt.Errorf("invalid suppression request: unknown reason: %s", r.Reason)
	}
	return nil
}

// SuppressionService provides operations for the tenant blacklist
type SuppressionService interface {
	// AddEntry adds a manual or automatic suppression entry
	AddEntry(ctx context.Context, tenantID string, req *CreateSuppressionRequest) (*SuppressionEntry, error)

	// GetEntries lists all suppression entries for the tenant
	GetEntries(ctx context.Context, tenantID string) ([]*SuppressionEntry, error)

	// IsSuppressed checks whether an address is blacklisted for the tenant
	IsSuppressed(ctx context.Context, tenantID, email string) (bool, error)
}

// SuppressionRepository defines persistence for suppression entries
type SuppressionRepository interface {
	CreateEntry(ctx context.Context, entry *SuppressionEntry) error
	GetEntries(ctx context.Context, tenantID string) ([]*SuppressionEntry, error)

	// IsSuppressed checks an address against exact-email and domain entries
	IsSuppressed(ctx context.Context, tenantID, email string) (bool, error)
}
