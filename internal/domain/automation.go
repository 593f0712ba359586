package domain

import (
	"bytes"
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_automation_service.go -package mocks github.com/mailkite/mailkite/internal/domain AutomationService
//go:generate mockgen -destination mocks/mock_automation_repository.go -package mocks github.com/mailkite/mailkite/internal/domain AutomationRepository

// AutomationTrigger identifies the audience event a rule reacts to
type AutomationTrigger string

const (
	TriggerSubscriberCreated      AutomationTrigger = "subscriber_created"
	TriggerSubscriberUnsubscribed AutomationTrigger = "subscriber_unsubscribed"
	TriggerLinkClicked            AutomationTrigger = "link_clicked"
	TriggerCampaignOpened         AutomationTrigger = "campaign_opened"
)

// IsValid reports whether the trigger is one of the known values
func (t AutomationTrigger) IsValid() bool {
	switch t {
	case TriggerSubscriberCreated, TriggerSubscriberUnsubscribed,
		TriggerLinkClicked, TriggerCampaignOpened:
		return true
	}
	return false
}

// AutomationAction identifies what a rule does when its condition matches
type AutomationAction string

const (
	ActionAddToList      AutomationAction = "add_to_list"
	ActionRemoveFromList AutomationAction = "remove_from_list"
	ActionSendEmail      AutomationAction = "send_email"
	ActionUpdateField    AutomationAction = "update_field"
)

// IsValid reports whether the action is one of the known values
func (a AutomationAction) IsValid() bool {
	switch a {
	case ActionAddToList, ActionRemoveFromList, ActionSendEmail, ActionUpdateField:
		return true
	}
	return false
}

// TriggerCondition is the closed variant set of per-trigger condition
// payloads. Exactly the variant matching the rule's trigger type is set;
// empty fields inside a variant mean "match any".
type TriggerCondition struct {
	SubscriberCreated      *SubscriberCreatedCondition      `json:"subscriber_created,omitempty"`
	SubscriberUnsubscribed *SubscriberUnsubscribedCondition `json:"subscriber_unsubscribed,omitempty"`
	LinkClicked            *LinkClickedCondition            `json:"link_clicked,omitempty"`
	CampaignOpened         *CampaignOpenedCondition         `json:"campaign_opened,omitempty"`
}

type SubscriberCreatedCondition struct {
	ListID      string `json:"list_id,omitempty"`
	EmailDomain string `json:"email_domain,omitempty"`
}

type SubscriberUnsubscribedCondition struct {
	ListID string `json:"list_id,omitempty"`
}

type LinkClickedCondition struct {
	CampaignID  string `json:"campaign_id,omitempty"`
	URLContains string `json:"url_contains,omitempty"`
}

type CampaignOpenedCondition struct {
	CampaignID string `json:"campaign_id,omitempty"`
}

// Value implements the driver.Valuer interface for database serialization
func (c TriggerCondition) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface for database deserialization
func (c *TriggerCondition) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed")
	}

	cloned := bytes.Clone(b)
	return json.Unmarshal(cloned, c)
}

// ActionConfig is the closed variant set of per-action payloads. Exactly
// the variant matching the rule's action type is set.
type ActionConfig struct {
	AddToList      *AddToListAction      `json:"add_to_list,omitempty"`
	RemoveFromList *RemoveFromListAction `json:"remove_from_list,omitempty"`
	SendEmail      *SendEmailAction      `json:"send_email,omitempty"`
	UpdateField    *UpdateFieldAction    `json:"update_field,omitempty"`
}

type AddToListAction struct {
	ListID string `json:"list_id"`
}

type RemoveFromListAction struct {
	ListID string `json:"list_id"`
}

type SendEmailAction struct {
	TemplateID string `json:"template_id"`
}

type UpdateFieldAction struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Value implements the driver.Valuer interface for database serialization
func (a ActionConfig) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for database deserialization
func (a *ActionConfig) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed")
	}

	cloned := bytes.Clone(b)
	return json.Unmarshal(cloned, a)
}

// AutomationRule pairs a trigger condition with an action, scoped to a
// tenant. All matching active rules fire once per triggering event;
// actions are idempotent so redelivery of an event cannot double-apply.
type AutomationRule struct {
	ID        string            `json:"id"`
	TenantID  string            `json:"tenant_id" db:"tenant_id"`
	Name      string            `json:"name"`
	Trigger   AutomationTrigger `json:"trigger"`
	Condition TriggerCondition  `json:"condition"`
	Action    AutomationAction  `json:"action"`
	Config    ActionConfig      `json:"config"`
	IsActive  bool              `json:"is_active" db:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Validate checks the rule and that the condition and config variants
// match the declared trigger and action types
func (r *AutomationRule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("invalid automation rule: id is required")
	}
	if r.TenantID == "" {
		return fmt.Errorf("invalid automation rule: tenant_id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid automation rule: name is required")
	}
	if !r.Trigger.IsValid() {
		return fmt.Errorf("invalid automation rule: unknown trigger: %s", r.Trigger)
	}
	if !r.Action.IsValid() {
		return fmt.Errorf("invalid automation rule: unknown action: %s", r.Action)
	}

	switch r.Trigger {
	case TriggerSubscriberCreated:
		if r.Condition.SubscriberUnsubscribed != nil || r.Condition.LinkClicked != nil || r.Condition.CampaignOpened != nil {
			return fmt.Errorf("invalid automation rule: condition does not match trigger %s", r.Trigger)
		}
	case TriggerSubscriberUnsubscribed:
		if r.Condition.SubscriberCreated != nil || r.Condition.LinkClicked != nil || r.Condition.CampaignOpened != nil {
			return fmt.Errorf("invalid automation rule: condition does not match trigger %s", r.Trigger)
		}
	case TriggerLinkClicked:
		if r.Condition.SubscriberCreated != nil || r.Condition.SubscriberUnsubscribed != nil || r.Condition.CampaignOpened != nil {
			return fmt.Errorf("invalid automation rule: condition does not match trigger %s", r.Trigger)
		}
	case TriggerCampaignOpened:
		if r.Condition.SubscriberCreated != nil || r.Condition.SubscriberUnsubscribed != nil || r.Condition.LinkClicked != nil {
			return fmt.Errorf("invalid automation rule: condition does not match trigger %s", r.Trigger)
		}
	}

	switch r.Action {
	case ActionAddToList:
		if r.Config.AddToList == nil || r.Config.AddToList.ListID == "" {
			return fmt.Errorf("invalid automation rule: add_to_list requires list_id")
		}
	case ActionRemoveFromList:
		if r.Config.RemoveFromList == nil || r.Config.RemoveFromList.ListID == "" {
			return fmt.Errorf("invalid automation rule: remove_from_list requires list_id")
		}
	case ActionSendEmail:
		if r.Config.SendEmail == nil || r.Config.SendEmail.TemplateID == "" {
			return fmt.Errorf("invalid automation rule: send_email requires template_id")
		}
	case ActionUpdateField:
		if r.Config.UpdateField == nil || r.Config.UpdateField.Field == "" {
			return fmt.Errorf("invalid automation rule: update_field requires field")
		}
	}

	return nil
}

// AutomationEvent is the runtime payload a rule condition is evaluated
// against
type AutomationEvent struct {
	Trigger      AutomationTrigger `json:"trigger"`
	TenantID     string            `json:"tenant_id"`
	SubscriberID string            `json:"subscriber_id"`
	Email        string            `json:"email,omitempty"`
	ListID       string            `json:"list_id,omitempty"`
	CampaignID   string            `json:"campaign_id,omitempty"`
	URL          string            `json:"url,omitempty"`
}

// Matches evaluates the rule's condition predicate against an event of the
// rule's trigger type
func (r *AutomationRule) Matches(event *AutomationEvent) bool {
	if event.Trigger != r.Trigger {
		return false
	}

	switch r.Trigger {
	case TriggerSubscriberCreated:
		c := r.Condition.SubscriberCreated
		if c == nil {
			return true
		}
		if c.ListID != "" && c.ListID != event.ListID {
			return false
		}
		if c.EmailDomain != "" {
			at := strings.LastIndex(event.Email, "@")
			if at < 0 || !strings.EqualFold(event.Email[at+1:], c.EmailDomain) {
				return false
			}
		}
		return true
	case TriggerSubscriberUnsubscribed:
		c := r.Condition.SubscriberUnsubscribed
		return c == nil || c.ListID == "" || c.ListID == event.ListID
	case TriggerLinkClicked:
		c := r.Condition.LinkClicked
		if c == nil {
			return true
		}
		if c.CampaignID != "" && c.CampaignID != event.CampaignID {
			return false
		}
		if c.URLContains != "" && !strings.Contains(event.URL, c.URLContains) {
			return false
		}
		return true
	case TriggerCampaignOpened:
		c := r.Condition.CampaignOpened
		return c == nil || c.CampaignID == "" || c.CampaignID == event.CampaignID
	}
	return false
}

// ScanAutomationRule scans a rule from the database
func ScanAutomationRule(scanner interface {
	Scan(dest ...interface{}) error
}) (*AutomationRule, error) {
	var r AutomationRule
	if err := scanner.Scan(
		&r.ID,
		&r.TenantID,
		&r.Name,
		&r.Trigger,
		&r.Condition,
		&r.Action,
		&r.Config,
		&r.IsActive,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

// Request types
type CreateAutomationRuleRequest struct {
	Name      string            `json:"name"`
	Trigger   AutomationTrigger `json:"trigger"`
	Condition TriggerCondition  `json:"condition"`
	Action    AutomationAction  `json:"action"`
	Config    ActionConfig      `json:"config"`
	IsActive  bool              `json:"is_active"`
}

func (r *CreateAutomationRuleRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("invalid create automation rule request: name is required")
	}
	if !r.Trigger.IsValid() {
		return fmt.Errorf("invalid create automation rule request: unknown trigger: %s", r.Trigger)
	}
	if !r.Action.IsValid() {
		return fmt.Errorf("invalid create automation rule request: unknown action: %s", r.Action)
	}
	return nil
}

// AutomationService manages rules and dispatches trigger events
type AutomationService interface {
	CreateRule(ctx context.Context, tenantID string, req *CreateAutomationRuleRequest) (*AutomationRule, error)
	GetRules(ctx context.Context, tenantID string) ([]*AutomationRule, error)
	SetRuleActive(ctx context.Context, tenantID, id string, active bool) error
	DeleteRule(ctx context.Context, tenantID, id string) error

	// HandleEvent evaluates every active rule of the event's trigger type
	// and executes the action of each match exactly once
	HandleEvent(ctx context.Context, event *AutomationEvent) error
}

// AutomationRepository defines persistence for automation rules
type AutomationRepository interface {
	CreateRule(ctx context.Context, rule *AutomationRule) error
	GetRules(ctx context.Context, tenantID string) ([]*AutomationRule, error)

	// GetActiveRulesByTrigger returns active rules of one trigger type in
	// creation order
	GetActiveRulesByTrigger(ctx context.Context, tenantID string, trigger AutomationTrigger) ([]*AutomationRule, error)

	SetRuleActive(ctx context.Context, tenantID, id string, active bool) error
	DeleteRule(ctx context.Context, tenantID, id string) error
}
