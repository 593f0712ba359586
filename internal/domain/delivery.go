package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_delivery_service.go -package mocks github.com/mailkite/mailkite/internal/domain DeliveryService
//go:generate mockgen -destination mocks/mock_delivery_repository.go -package mocks github.com/mailkite/mailkite/internal/domain DeliveryRepository

// DeliveryStatus defines the state of one send attempt
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusSent       DeliveryStatus = "sent"
	DeliveryStatusOpened     DeliveryStatus = "opened"
	DeliveryStatusClicked    DeliveryStatus = "clicked"
	DeliveryStatusBounced    DeliveryStatus = "bounced"
	DeliveryStatusComplained DeliveryStatus = "complained"
	DeliveryStatusFailed     DeliveryStatus = "failed"
)

// deliveryStatusRank orders statuses so that events can only move a record
// forward. Negative terminal outcomes share the highest rank.
var deliveryStatusRank = map[DeliveryStatus]int{
	DeliveryStatusPending:    0,
	DeliveryStatusSent:       1,
	DeliveryStatusOpened:     2,
	DeliveryStatusClicked:    3,
	DeliveryStatusBounced:    4,
	DeliveryStatusComplained: 4,
	DeliveryStatusFailed:     4,
}

// IsTerminal reports whether the send attempt has reached a final outcome.
// opened and clicked count as terminal for campaign completion: the message
// was delivered and engaged with.
func (s DeliveryStatus) IsTerminal() bool {
	return s != DeliveryStatusPending
}

// Rank returns the ordering position of the status
func (s DeliveryStatus) Rank() int {
	return deliveryStatusRank[s]
}

// DeliveryEventType identifies an inbound delivery-outcome event
type DeliveryEventType string

const (
	EventTypeSent         DeliveryEventType = "sent"
	EventTypeDelivered    DeliveryEventType = "delivered"
	EventTypeOpened       DeliveryEventType = "opened"
	EventTypeClicked      DeliveryEventType = "clicked"
	EventTypeBounced      DeliveryEventType = "bounced"
	EventTypeComplained   DeliveryEventType = "complained"
	EventTypeUnsubscribed DeliveryEventType = "unsubscribed"
	EventTypeFailed       DeliveryEventType = "failed"
)

// IsValid reports whether the event type is one of the known values
func (t DeliveryEventType) IsValid() bool {
	switch t {
	case EventTypeSent, EventTypeDelivered, EventTypeOpened, EventTypeClicked,
		EventTypeBounced, EventTypeComplained, EventTypeUnsubscribed, EventTypeFailed:
		return true
	}
	return false
}

// StatusAfter returns the delivery status this event advances a record to.
// delivered and unsubscribed only stamp timestamps and leave the status.
func (t DeliveryEventType) StatusAfter() (DeliveryStatus, bool) {
	switch t {
	case EventTypeSent:
		return DeliveryStatusSent, true
	case EventTypeOpened:
		return DeliveryStatusOpened, true
	case EventTypeClicked:
		return DeliveryStatusClicked, true
	case EventTypeBounced:
		return DeliveryStatusBounced, true
	case EventTypeComplained:
		return DeliveryStatusComplained, true
	case EventTypeFailed:
		return DeliveryStatusFailed, true
	}
	return "", false
}

// DeliveryRecord is the per-(campaign, subscriber) ledger row for one send
// attempt. (campaign_id, subscriber_id) is unique; both sides resolve to
// rows owned by the record's own tenant via composite foreign keys.
type DeliveryRecord struct {
	ID           string         `json:"id"`
	TenantID     string         `json:"tenant_id" db:"tenant_id"`
	CampaignID   string         `json:"campaign_id" db:"campaign_id"`
	SubscriberID string         `json:"subscriber_id" db:"subscriber_id"`
	Status       DeliveryStatus `json:"status"`

	SentAt         *time.Time `json:"sent_at,omitempty" db:"sent_at"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty" db:"delivered_at"`
	OpenedAt       *time.Time `json:"opened_at,omitempty" db:"opened_at"`
	ClickedAt      *time.Time `json:"clicked_at,omitempty" db:"clicked_at"`
	BouncedAt      *time.Time `json:"bounced_at,omitempty" db:"bounced_at"`
	ComplainedAt   *time.Time `json:"complained_at,omitempty" db:"complained_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty" db:"unsubscribed_at"`
	FailedAt       *time.Time `json:"failed_at,omitempty" db:"failed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimestampFor returns the pointer to the stamp column for an event type
func (r *DeliveryRecord) TimestampFor(t DeliveryEventType) **time.Time {
	switch t {
	case EventTypeSent:
		return &r.SentAt
	case EventTypeDelivered:
		return &r.DeliveredAt
	case EventTypeOpened:
		return &r.OpenedAt
	case EventTypeClicked:
		return &r.ClickedAt
	case EventTypeBounced:
		return &r.BouncedAt
	case EventTypeComplained:
		return &r.ComplainedAt
	case EventTypeUnsubscribed:
		return &r.UnsubscribedAt
	case EventTypeFailed:
		return &r.FailedAt
	}
	return nil
}

// ScanDeliveryRecord scans a delivery record from the database
func ScanDeliveryRecord(scanner interface {
	Scan(dest ...interface{}) error
}) (*DeliveryRecord, error) {
	var r DeliveryRecord
	if err := scanner.Scan(
		&r.ID,
		&r.TenantID,
		&r.CampaignID,
		&r.SubscriberID,
		&r.Status,
		&r.SentAt,
		&r.DeliveredAt,
		&r.OpenedAt,
		&r.ClickedAt,
		&r.BouncedAt,
		&r.ComplainedAt,
		&r.UnsubscribedAt,
		&r.FailedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeliveryEvent is one inbound delivery-outcome event from the sending
// infrastructure, keyed by (campaign, subscriber, type).
type DeliveryEvent struct {
	CampaignID   string            `json:"campaign_id"`
	SubscriberID string            `json:"subscriber_id"`
	Type         DeliveryEventType `json:"event_type"`
	Timestamp    time.Time         `json:"timestamp"`

	// Engagement payload, present for clicked / opened-by-view events
	URL       string `json:"url,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	IP        string `json:"ip,omitempty"`
}

// Validate performs validation on the event fields
func (e *DeliveryEvent) Validate() error {
	if e.CampaignID == "" {
		return fmt.Errorf("invalid delivery event: campaign_id is required")
	}
	if e.SubscriberID == "" {
		return fmt.Errorf("invalid delivery event: subscriber_id is required")
	}
	if !e.Type.IsValid() {
		return fmt.Errorf("invalid delivery event: unknown event type: %s", e.Type)
	}
	return nil
}

// ApplyEventResult reports what a single event application changed
type ApplyEventResult struct {
	// Applied is false when the event was a duplicate no-op
	Applied bool
	// StatusChanged is true when the record status moved forward
	StatusChanged bool
	// PreviousStatus is the status before application
	PreviousStatus DeliveryStatus
}

// DeliveryService applies delivery outcomes and runs fan-out
type DeliveryService interface {
	// ApplyEvent applies one delivery-outcome event: record transition,
	// counter increment and negative-outcome side effects in one
	// transaction. Duplicate events are no-ops.
	ApplyEvent(ctx context.Context, tenantID string, event *DeliveryEvent) (*ApplyEventResult, error)

	// GetRecord retrieves the ledger row for a (campaign, subscriber) pair
	GetRecord(ctx context.Context, tenantID, campaignID, subscriberID string) (*DeliveryRecord, error)

	// ListRecords retrieves all ledger rows for a campaign
	ListRecords(ctx context.Context, tenantID, campaignID string) ([]*DeliveryRecord, error)

	// GetClicks retrieves the append-only click log for a campaign
	GetClicks(ctx context.Context, tenantID, campaignID string) ([]*LinkClickEvent, error)

	// GetViews retrieves the append-only web-view log for a campaign
	GetViews(ctx context.Context, tenantID, campaignID string) ([]*WebViewEvent, error)
}

// DeliveryRepository defines persistence for the delivery ledger
type DeliveryRepository interface {
	// FanOut enrolls every eligible subscriber of the campaign's target
	// lists as a pending record: active status, not suppressed by exact
	// email or domain. Inserting on the (campaign_id, subscriber_id)
	// unique with DO NOTHING makes concurrent and repeated runs
	// idempotent; an already-enrolled subscriber is treated as success,
	// not an error. The audience counter on the analytics row grows by
	// the rows actually inserted.
	FanOut(ctx context.Context, campaign *Campaign) (*FanOutResult, error)

	// ApplyEvent performs the atomic event application: stamps the event
	// timestamp, advances the status monotonically, increments the
	// campaign analytics counter, records the engagement row for
	// click/view payloads, and for bounces/complaints mutates the
	// subscriber status and inserts a suppression entry. All in one
	// transaction; duplicates are detected by the already-set stamp.
	ApplyEvent(ctx context.Context, tenantID string, event *DeliveryEvent) (*ApplyEventResult, error)

	GetRecord(ctx context.Context, tenantID, campaignID, subscriberID string) (*DeliveryRecord, error)
	ListRecords(ctx context.Context, tenantID, campaignID string) ([]*DeliveryRecord, error)

	// CountPending returns the number of records not yet terminal,
	// used to decide the sending -> sent transition
	CountPending(ctx context.Context, tenantID, campaignID string) (int, error)
}
