package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_subscriber_service.go -package mocks github.com/mailkite/mailkite/internal/domain SubscriberService
//go:generate mockgen -destination mocks/mock_subscriber_repository.go -package mocks github.com/mailkite/mailkite/internal/domain SubscriberRepository

// SubscriberStatus defines the global standing of a subscriber within a tenant
type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberStatusBounced      SubscriberStatus = "bounced"
	SubscriberStatusComplained   SubscriberStatus = "complained"
)

// IsValid reports whether the status is one of the known values
func (s SubscriberStatus) IsValid() bool {
	switch s {
	case SubscriberStatusActive, SubscriberStatusUnsubscribed,
		SubscriberStatusBounced, SubscriberStatusComplained:
		return true
	}
	return false
}

// Subscriber represents a recipient, scoped to a tenant. Emails are unique
// per tenant. Status is mutated by import/signup flows and by delivery
// outcomes (a hard bounce moves it to bounced).
type Subscriber struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenant_id" db:"tenant_id"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name,omitempty" db:"first_name"`
	LastName  string           `json:"last_name,omitempty" db:"last_name"`
	Status    SubscriberStatus `json:"status"`

	// Consent metadata
	OptInIP string     `json:"optin_ip,omitempty" db:"optin_ip"`
	OptInAt *time.Time `json:"optin_at,omitempty" db:"optin_at"`

	// Double opt-in confirmation
	ConfirmationToken string `json:"-" db:"confirmation_token"`
	IsConfirmed       bool   `json:"is_confirmed" db:"is_confirmed"`

	// List memberships, joined server-side
	ListIDs []string `json:"list_ids,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Domain returns the part of the email after the @, lowercased
func (s *Subscriber) Domain() string {
	at := strings.LastIndex(s.Email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(s.Email[at+1:])
}

// Validate performs validation on the subscriber fields
func (s *Subscriber) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("invalid subscriber: id is required")
	}
	if s.TenantID == "" {
		return fmt.Errorf("invalid subscriber: tenant_id is required")
	}
	if s.Email == "" {
		return fmt.Errorf("invalid subscriber: email is required")
	}
	if !govalidator.IsEmail(s.Email) {
		return fmt.Errorf("invalid subscriber: email is not valid")
	}
	if !s.Status.IsValid() {
		return fmt.Errorf("invalid subscriber: unknown status: %s", s.Status)
	}
	return nil
}

// ScanSubscriber scans a subscriber from the database (without memberships)
func ScanSubscriber(scanner interface {
	Scan(dest ...interface{}) error
}) (*Subscriber, error) {
	var s Subscriber
	if err := scanner.Scan(
		&s.ID,
		&s.TenantID,
		&s.Email,
		&s.FirstName,
		&s.LastName,
		&s.Status,
		&s.OptInIP,
		&s.OptInAt,
		&s.ConfirmationToken,
		&s.IsConfirmed,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Request/Response types
type CreateSubscriberRequest struct {
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	ListIDs   []string `json:"list_ids,omitempty"`
	OptInIP   string   `json:"optin_ip,omitempty"`
}

func (r *CreateSubscriberRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("invalid create subscriber request: email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("invalid create subscriber request: email is not valid")
	}
	return nil
}

// ImportSubscribersRequest imports a batch of subscribers into one or more lists
type ImportSubscribersRequest struct {
	Subscribers []CreateSubscriberRequest `json:"subscribers"`
	ListIDs     []string                  `json:"list_ids,omitempty"`
}

func (r *ImportSubscribersRequest) Validate() error {
	if len(r.Subscribers) == 0 {
		return fmt.Errorf("invalid import request: subscribers is required")
	}
	for i := range r.Subscribers {
		if err := r.Subscribers[i].Validate(); err != nil {
			return fmt.Errorf("invalid import request: subscriber %d: %w", i, err)
		}
	}
	return nil
}

// ImportSubscribersResult reports the outcome of a bulk import
type ImportSubscribersResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type UpdateSubscriberRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (r *UpdateSubscriberRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("invalid update subscriber request: id is required")
	}
	return nil
}

// SubscriberService provides operations for managing subscribers
type SubscriberService interface {
	// CreateSubscriber creates a subscriber and attaches it to the given lists
	CreateSubscriber(ctx context.Context, tenantID string, req *CreateSubscriberRequest) (*Subscriber, error)

	// ImportSubscribers upserts a batch of subscribers
	ImportSubscribers(ctx context.Context, tenantID string, req *ImportSubscribersRequest) (*ImportSubscribersResult, error)

	// GetSubscriberByID retrieves a subscriber owned by the tenant
	GetSubscriberByID(ctx context.Context, tenantID, id string) (*Subscriber, error)

	// GetSubscribers lists subscribers, optionally filtered by list
	GetSubscribers(ctx context.Context, tenantID string, listID string) ([]*Subscriber, error)

	// UpdateSubscriber updates name fields
	UpdateSubscriber(ctx context.Context, tenantID string, req *UpdateSubscriberRequest) (*Subscriber, error)

	// AddToLists attaches a subscriber to lists (set union, idempotent)
	AddToLists(ctx context.Context, tenantID, subscriberID string, listIDs []string) error

	// RemoveFromList detaches a subscriber from a list
	RemoveFromList(ctx context.Context, tenantID, subscriberID, listID string) error

	// ConfirmSubscriber completes double opt-in for the subscriber holding
	// the confirmation token. The token is the only credential; the
	// endpoint serving it is public
	ConfirmSubscriber(ctx context.Context, token string) (*Subscriber, error)

	// Unsubscribe marks the subscriber unsubscribed tenant-wide
	Unsubscribe(ctx context.Context, tenantID, subscriberID string) error

	// DeleteSubscriber deletes a subscriber and its delivery history
	DeleteSubscriber(ctx context.Context, tenantID, id string) error
}

// SubscriberRepository defines persistence for subscribers
type SubscriberRepository interface {
	CreateSubscriber(ctx context.Context, subscriber *Subscriber) error
	GetSubscriberByID(ctx context.Context, tenantID, id string) (*Subscriber, error)
	GetSubscriberByEmail(ctx context.Context, tenantID, email string) (*Subscriber, error)
	GetSubscribers(ctx context.Context, tenantID string, listID string) ([]*Subscriber, error)
	UpdateSubscriber(ctx context.Context, subscriber *Subscriber) error
	UpdateSubscriberStatus(ctx context.Context, tenantID, id string, status SubscriberStatus) error

	// ConfirmByToken sets is_confirmed on the subscriber holding the token
	// and returns the updated row. Idempotent; a second call with the same
	// token succeeds without changes
	ConfirmByToken(ctx context.Context, token string) (*Subscriber, error)
	DeleteSubscriber(ctx context.Context, tenantID, id string) error

	// AddToLists inserts memberships with set-union semantics; existing
	// memberships are left untouched
	AddToLists(ctx context.Context, tenantID, subscriberID string, listIDs []string) error
	RemoveFromList(ctx context.Context, tenantID, subscriberID, listID string) error
	GetListIDs(ctx context.Context, tenantID, subscriberID string) ([]string, error)
}
