package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/lib/pq"
)

//go:generate mockgen -destination mocks/mock_campaign_service.go -package mocks github.com/mailkite/mailkite/internal/domain CampaignService
//go:generate mockgen -destination mocks/mock_campaign_repository.go -package mocks github.com/mailkite/mailkite/internal/domain CampaignRepository

// CampaignStatus defines the lifecycle state of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusSent      CampaignStatus = "sent"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusFailed    CampaignStatus = "failed"
)

// campaignTransitions is the full transition table. Absent entries are
// rejected. sent and failed are terminal.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:     {CampaignStatusScheduled, CampaignStatusFailed},
	CampaignStatusScheduled: {CampaignStatusSending, CampaignStatusPaused, CampaignStatusFailed},
	CampaignStatusSending:   {CampaignStatusSent, CampaignStatusPaused, CampaignStatusFailed},
	CampaignStatusPaused:    {CampaignStatusScheduled, CampaignStatusSending, CampaignStatusFailed},
}

// IsValid reports whether the status is one of the known values
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusSending,
		CampaignStatusSent, CampaignStatusPaused, CampaignStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether further status mutation is rejected
func (s CampaignStatus) IsTerminal() bool {
	return s == CampaignStatusSent || s == CampaignStatusFailed
}

// CanTransitionTo reports whether the transition s -> next is permitted.
// No transition skips states.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	for _, allowed := range campaignTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Campaign is a send job composing a template with a set of target lists.
// A referenced template must belong to the same tenant; the schema enforces
// this with a composite foreign key on (template_id, tenant_id).
type Campaign struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenant_id" db:"tenant_id"`
	Name        string         `json:"name"`
	Subject     string         `json:"subject"`
	TemplateID  *string        `json:"template_id,omitempty" db:"template_id"`
	SenderName  string         `json:"sender_name" db:"sender_name"`
	SenderEmail string         `json:"sender_email" db:"sender_email"`
	ListIDs     pq.StringArray `json:"list_ids" db:"list_ids"`
	Status      CampaignStatus `json:"status"`
	ScheduledAt *time.Time     `json:"scheduled_at,omitempty" db:"scheduled_at"`
	SentAt      *time.Time     `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Validate performs validation on the campaign fields
func (c *Campaign) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("invalid campaign: id is required")
	}
	if c.TenantID == "" {
		return fmt.Errorf("invalid campaign: tenant_id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("invalid campaign: name is required")
	}
	if len(c.Name) > 255 {
		return fmt.Errorf("invalid campaign: name length must be between 1 and 255")
	}
	if !c.Status.IsValid() {
		return fmt.Errorf("invalid campaign: unknown status: %s", c.Status)
	}
	if c.SenderEmail != "" && !govalidator.IsEmail(c.SenderEmail) {
		return fmt.Errorf("invalid campaign: sender_email is not valid")
	}
	return nil
}

// ReadyToSchedule reports why a draft cannot be scheduled, or nil when the
// target list set is non-empty and the sender identity is resolved.
func (c *Campaign) ReadyToSchedule() error {
	if len(c.ListIDs) == 0 {
		return NewValidationError("campaign has no target lists")
	}
	if c.SenderEmail == "" {
		return NewValidationError("campaign has no sender identity")
	}
	if c.Subject == "" && c.TemplateID == nil {
		return NewValidationError("campaign has no subject or template")
	}
	return nil
}

// ScanCampaign scans a campaign from the database
func ScanCampaign(scanner interface {
	Scan(dest ...interface{}) error
}) (*Campaign, error) {
	var c Campaign
	if err := scanner.Scan(
		&c.ID,
		&c.TenantID,
		&c.Name,
		&c.Subject,
		&c.TemplateID,
		&c.SenderName,
		&c.SenderEmail,
		&c.ListIDs,
		&c.Status,
		&c.ScheduledAt,
		&c.SentAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Request/Response types
type CreateCampaignRequest struct {
	Name        string   `json:"name"`
	Subject     string   `json:"subject"`
	TemplateID  *string  `json:"template_id,omitempty"`
	SenderName  string   `json:"sender_name"`
	SenderEmail string   `json:"sender_email"`
	ListIDs     []string `json:"list_ids"`
}

func (r *CreateCampaignRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("invalid create campaign request: name is required")
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("invalid create campaign request: name length must be between 1 and 255")
	}
	if r.SenderEmail != "" && !govalidator.IsEmail(r.SenderEmail) {
		return fmt.Errorf("invalid create campaign request: sender_email is not valid")
	}
	return nil
}

type UpdateCampaignRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Subject     string   `json:"subject"`
	TemplateID  *string  `json:"template_id,omitempty"`
	SenderName  string   `json:"sender_name"`
	SenderEmail string   `json:"sender_email"`
	ListIDs     []string `json:"list_ids"`
}

func (r *UpdateCampaignRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("invalid update campaign request: id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid update campaign request: name is required")
	}
	if r.SenderEmail != "" && !govalidator.IsEmail(r.SenderEmail) {
		return fmt.Errorf("invalid update campaign request: sender_email is not valid")
	}
	return nil
}

type ScheduleCampaignRequest struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`
	SendNow     bool      `json:"send_now"`
}

func (r *ScheduleCampaignRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("invalid schedule campaign request: id is required")
	}
	if !r.SendNow && r.ScheduledAt.IsZero() {
		return fmt.Errorf("invalid schedule campaign request: scheduled_at is required when not sending immediately")
	}
	return nil
}

// ListCampaignsParams defines filters for listing campaigns
type ListCampaignsParams struct {
	TenantID string
	Status   CampaignStatus
	Limit    int
	Offset   int
}

// CampaignListResponse defines the response for listing campaigns
type CampaignListResponse struct {
	Campaigns  []*Campaign `json:"campaigns"`
	TotalCount int         `json:"total_count"`
}

// FanOutResult reports the outcome of a fan-out run
type FanOutResult struct {
	Eligible   int `json:"eligible"`
	Enrolled   int `json:"enrolled"`
	Suppressed int `json:"suppressed"`
}

// CampaignService provides campaign lifecycle operations
type CampaignService interface {
	// CreateCampaign creates a new draft campaign
	CreateCampaign(ctx context.Context, tenantID string, req *CreateCampaignRequest) (*Campaign, error)

	// GetCampaign retrieves a campaign owned by the tenant
	GetCampaign(ctx context.Context, tenantID, id string) (*Campaign, error)

	// UpdateCampaign updates a draft, scheduled or paused campaign
	UpdateCampaign(ctx context.Context, tenantID string, req *UpdateCampaignRequest) (*Campaign, error)

	// ListCampaigns retrieves campaigns with pagination
	ListCampaigns(ctx context.Context, params ListCampaignsParams) (*CampaignListResponse, error)

	// ScheduleCampaign transitions draft -> scheduled and sets scheduled_at
	ScheduleCampaign(ctx context.Context, tenantID string, req *ScheduleCampaignRequest) error

	// StartSending transitions scheduled -> sending and runs fan-out
	StartSending(ctx context.Context, tenantID, id string) (*FanOutResult, error)

	// CompleteSending transitions sending -> sent once every delivery
	// record has reached a terminal state
	CompleteSending(ctx context.Context, tenantID, id string) error

	// PauseCampaign transitions scheduled|sending -> paused
	PauseCampaign(ctx context.Context, tenantID, id string) error

	// ResumeCampaign transitions paused back to scheduled or sending
	ResumeCampaign(ctx context.Context, tenantID, id string) error

	// FailCampaign transitions any non-terminal state -> failed
	FailCampaign(ctx context.Context, tenantID, id string) error

	// DeleteCampaign deletes a campaign and its delivery history
	DeleteCampaign(ctx context.Context, tenantID, id string) error
}

// CampaignRepository defines persistence for campaigns
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign *Campaign) error
	GetCampaign(ctx context.Context, tenantID, id string) (*Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *Campaign) error
	ListCampaigns(ctx context.Context, params ListCampaignsParams) (*CampaignListResponse, error)
	DeleteCampaign(ctx context.Context, tenantID, id string) error

	// GetDueCampaigns returns scheduled campaigns whose scheduled_at has passed
	GetDueCampaigns(ctx context.Context, now time.Time) ([]*Campaign, error)

	// GetSendingCampaigns returns campaigns currently in the sending state
	GetSendingCampaigns(ctx context.Context) ([]*Campaign, error)
}
