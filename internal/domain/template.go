package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_template_service.go -package mocks github.com/mailkite/mailkite/internal/domain TemplateService
//go:generate mockgen -destination mocks/mock_template_repository.go -package mocks github.com/mailkite/mailkite/internal/domain TemplateRepository

// Template is a reusable message body, scoped to a tenant. Names are
// unique per tenant. Bodies are liquid templates rendered with
// subscriber variables at send time.
type Template struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id" db:"tenant_id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	BodyHTML  string    `json:"body_html" db:"body_html"`
	BodyText  string    `json:"body_text,omitempty" db:"body_text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs validation on the template fields
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("invalid template: id is required")
	}
	if t.TenantID == "" {
		return fmt.Errorf("invalid template: tenant_id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("invalid template: name is required")
	}
	if len(t.Name) > 255 {
		return fmt.Errorf("invalid template: name length must be between 1 and 255")
	}
	if t.Subject == "" {
		return fmt.Errorf("invalid template: subject is required")
	}
	if t.BodyHTML == "" {
		return fmt.Errorf("invalid template: body_html is required")
	}
	return nil
}

// ScanTemplate scans a template from the database
func ScanTemplate(scanner interface {
	Scan(dest ...interface{}) error
}) (*Template, error) {
	var t Template
	if err := scanner.Scan(
		&t.ID,
		&t.TenantID,
		&t.Name,
		&t.Subject,
		&t.BodyHTML,
		&t.BodyText,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// Request types
type CreateTemplateRequest struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text,omitempty"`
}

func (r *CreateTemplateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("invalid create template request: name is required")
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("invalid create template request: name length must be between 1 and 255")
	}
	if r.Subject == "" {
		return fmt.Errorf("invalid create template request: subject is required")
	}
	if r.BodyHTML == "" {
		return fmt.Errorf("invalid create template request: body_html is required")
	}
	return nil
}

type UpdateTemplateRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text,omitempty"`
}

func (r *UpdateTemplateRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("invalid update template request: id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid update template request: name is required")
	}
	if r.Subject == "" {
		return fmt.Errorf("invalid update template request: subject is required")
	}
	if r.BodyHTML == "" {
		return fmt.Errorf("invalid update template request: body_html is required")
	}
	return nil
}

// RenderTemplateRequest previews a template with sample variables
type RenderTemplateRequest struct {
	ID        string                 `json:"id"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// RenderedTemplate is the output of a template render
type RenderedTemplate struct {
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text,omitempty"`
}

// TemplateService provides operations for managing templates
type TemplateService interface {
	CreateTemplate(ctx context.Context, tenantID string, req *CreateTemplateRequest) (*Template, error)
	GetTemplateByID(ctx context.Context, tenantID, id string) (*Template, error)
	GetTemplates(ctx context.Context, tenantID string) ([]*Template, error)
	UpdateTemplate(ctx context.Context, tenantID string, req *UpdateTemplateRequest) (*Template, error)
	DeleteTemplate(ctx context.Context, tenantID, id string) error

	// RenderTemplate renders the liquid body and subject with variables
	RenderTemplate(ctx context.Context, tenantID string, req *RenderTemplateRequest) (*RenderedTemplate, error)
}

// TemplateRepository defines persistence for templates
type TemplateRepository interface {
	CreateTemplate(ctx context.Context, template *Template) error
	GetTemplateByID(ctx context.Context, tenantID, id string) (*Template, error)
	GetTemplates(ctx context.Context, tenantID string) ([]*Template, error)
	UpdateTemplate(ctx context.Context, template *Template) error
	DeleteTemplate(ctx context.Context, tenantID, id string) error
}
