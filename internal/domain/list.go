package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_list_service.go -package mocks github.com/mailkite/mailkite/internal/domain ListService
//go:generate mockgen -destination mocks/mock_list_repository.go -package mocks github.com/mailkite/mailkite/internal/domain ListRepository

// List represents a named audience list, scoped to a tenant.
// Names are unique per tenant, not globally.
type List struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id" db:"tenant_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	SubscriberCount int       `json:"subscriber_count" db:"subscriber_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Validate performs validation on the list fields
func (l *List) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("invalid list: id is required")
	}
	if l.TenantID == "" {
		return fmt.Errorf("invalid list: tenant_id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("invalid list: name is required")
	}
	if len(l.Name) > 255 {
		return fmt.Errorf("invalid list: name length must be between 1 and 255")
	}
	return nil
}

// ScanList scans a list from the database
func ScanList(scanner interface {
	Scan(dest ...interface{}) error
}) (*List, error) {
	var l List
	if err := scanner.Scan(
		&l.ID,
		&l.TenantID,
		&l.Name,
		&l.Description,
		&l.SubscriberCount,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// Request/Response types
type CreateListRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (r *CreateListRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("invalid create list request: name is required")
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("invalid create list request: name length must be between 1 and 255")
	}
	return nil
}

type UpdateListRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (r *UpdateListRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("invalid update list request: id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid update list request: name is required")
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("invalid update list request: name length must be between 1 and 255")
	}
	return nil
}

// ListService provides operations for managing lists
type ListService interface {
	// CreateList creates a new list for the tenant
	CreateList(ctx context.Context, tenantID string, req *CreateListRequest) (*List, error)

	// GetListByID retrieves a list owned by the tenant
	GetListByID(ctx context.Context, tenantID, id string) (*List, error)

	// GetLists retrieves all lists owned by the tenant
	GetLists(ctx context.Context, tenantID string) ([]*List, error)

	// UpdateList updates an existing list
	UpdateList(ctx context.Context, tenantID string, req *UpdateListRequest) (*List, error)

	// DeleteList deletes a list by ID
	DeleteList(ctx context.Context, tenantID, id string) error
}

// ListRepository defines persistence for lists
type ListRepository interface {
	CreateList(ctx context.Context, list *List) error
	GetListByID(ctx context.Context, tenantID, id string) (*List, error)
	GetLists(ctx context.Context, tenantID string) ([]*List, error)
	UpdateList(ctx context.Context, list *List) error
	DeleteList(ctx context.Context, tenantID, id string) error

	// RefreshSubscriberCount recomputes the cached member count for a list
	RefreshSubscriberCount(ctx context.Context, tenantID, id string) error
}
