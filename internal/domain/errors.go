package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced entity is absent or not owned
// by the caller's tenant.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// IsNotFound reports whether err is an ErrNotFound
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}

// ErrTenantMismatch is returned when a write attempts to relate entities
// owned by different tenants. It is always surfaced, never corrected by
// silently re-scoping the query.
type ErrTenantMismatch struct {
	Entity string
	ID     string
}

func (e *ErrTenantMismatch) Error() string {
	return fmt.Sprintf("%s %s does not belong to the authenticated tenant", e.Entity, e.ID)
}

// ErrInvalidTransition is returned when a campaign status transition is not
// permitted from the current state. The campaign is left unchanged.
type ErrInvalidTransition struct {
	From CampaignStatus
	To   CampaignStatus
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid campaign transition from %s to %s", e.From, e.To)
}

// ValidationError represents an error that occurs due to invalid input or
// a uniqueness constraint on user-facing fields (names, emails)
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}
