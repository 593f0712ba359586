package http

import (
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/http/middleware"
	"github.com/mailkite/mailkite/pkg/logger"
)

// EventHandler receives delivery-outcome events from the sending
// infrastructure and engagement pings from tracked links and pixels.
// The webhook endpoints are public; the tenant is addressed by query
// parameter, the way provider webhook URLs are provisioned.
type EventHandler struct {
	service domain.DeliveryService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewEventHandler(service domain.DeliveryService, auth *middleware.AuthConfig, logger logger.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *EventHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	// Public webhook endpoints for receiving events from email providers
	mux.Handle("/webhooks/events", http.HandlerFunc(h.handleEvents))
	mux.Handle("/track/click", http.HandlerFunc(h.handleClick))
	mux.Handle("/track/open", http.HandlerFunc(h.handleOpen))

	// Authenticated endpoints for inspecting the delivery ledger
	mux.Handle("/api/deliveries.list", requireAuth(http.HandlerFunc(h.handleListRecords)))
	mux.Handle("/api/deliveries.get", requireAuth(http.HandlerFunc(h.handleGetRecord)))
	mux.Handle("/api/engagement.clicks", requireAuth(http.HandlerFunc(h.handleClicks)))
	mux.Handle("/api/engagement.views", requireAuth(http.HandlerFunc(h.handleViews)))
}

// handleEvents accepts a single event object or a batch under "events".
// Provider payloads are parsed with gjson so unknown envelope fields are
// ignored. Duplicate events are acknowledged as received but not applied.
func (h *EventHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant := r.URL.Query().Get("tenant_id")
	if tenant == "" {
		WriteJSONError(w, "Tenant ID is required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to read webhook request body")
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	parsed := gjson.ParseBytes(body)
	events := parsed.Get("events")
	if !events.Exists() {
		events = parsed
	}

	var received, applied int
	var failed []string
	process := func(item gjson.Result) bool {
		received++
		event := eventFromJSON(item)
		result, err := h.service.ApplyEvent(r.Context(), tenant, event)
		if err != nil {
			if domain.IsNotFound(err) {
				failed = append(failed, "delivery record not found")
				return true
			}
			if _, ok := err.(domain.ValidationError); ok {
				failed = append(failed, err.Error())
				return true
			}
			h.logger.WithField("error", err.Error()).Error("Failed to process delivery event")
			failed = append(failed, "internal error")
			return true
		}
		if result.Applied {
			applied++
		}
		return true
	}

	if events.IsArray() {
		events.ForEach(func(_, item gjson.Result) bool {
			return process(item)
		})
	} else {
		process(events)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"received": received,
		"applied":  applied,
		"failed":   failed,
	})
}

// handleClick records a tracked link click: the click transition on the
// delivery record plus the append-only click event row.
func (h *EventHandler) handleClick(w http.ResponseWriter, r *http.Request) {
	h.handleEngagement(w, r, domain.EventTypeClicked)
}

// handleOpen records a web view of the campaign, which counts as an open.
func (h *EventHandler) handleOpen(w http.ResponseWriter, r *http.Request) {
	h.handleEngagement(w, r, domain.EventTypeOpened)
}

func (h *EventHandler) handleEngagement(w http.ResponseWriter, r *http.Request, eventType domain.DeliveryEventType) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant := r.URL.Query().Get("tenant_id")
	if tenant == "" {
		WriteJSONError(w, "Tenant ID is required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to read engagement request body")
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	event := eventFromJSON(gjson.ParseBytes(body))
	event.Type = eventType
	if event.UserAgent == "" {
		event.UserAgent = r.UserAgent()
	}
	if event.IP == "" {
		event.IP = r.RemoteAddr
	}

	result, err := h.service.ApplyEvent(r.Context(), tenant, event)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Delivery record not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to process engagement event")
		WriteJSONError(w, "Failed to process engagement event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"applied": result.Applied,
	})
}

func (h *EventHandler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaignID := r.URL.Query().Get("campaign_id")
	if campaignID == "" {
		WriteJSONError(w, "Missing campaign ID", http.StatusBadRequest)
		return
	}

	records, err := h.service.ListRecords(r.Context(), tenant, campaignID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list delivery records")
		WriteJSONError(w, "Failed to list delivery records", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records": records,
	})
}

func (h *EventHandler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaignID := r.URL.Query().Get("campaign_id")
	subscriberID := r.URL.Query().Get("subscriber_id")
	if campaignID == "" || subscriberID == "" {
		WriteJSONError(w, "Missing campaign ID or subscriber ID", http.StatusBadRequest)
		return
	}

	record, err := h.service.GetRecord(r.Context(), tenant, campaignID, subscriberID)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Delivery record not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get delivery record")
		WriteJSONError(w, "Failed to get delivery record", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"record": record,
	})
}

func (h *EventHandler) handleClicks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaignID := r.URL.Query().Get("campaign_id")
	if campaignID == "" {
		WriteJSONError(w, "Missing campaign ID", http.StatusBadRequest)
		return
	}

	clicks, err := h.service.GetClicks(r.Context(), tenant, campaignID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get click log")
		WriteJSONError(w, "Failed to get click log", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clicks": clicks,
	})
}

func (h *EventHandler) handleViews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaignID := r.URL.Query().Get("campaign_id")
	if campaignID == "" {
		WriteJSONError(w, "Missing campaign ID", http.StatusBadRequest)
		return
	}

	views, err := h.service.GetViews(r.Context(), tenant, campaignID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get view log")
		WriteJSONError(w, "Failed to get view log", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"views": views,
	})
}

// eventFromJSON extracts the normalized event fields out of a provider
// payload item. Timestamps default to the arrival time.
func eventFromJSON(item gjson.Result) *domain.DeliveryEvent {
	event := &domain.DeliveryEvent{
		CampaignID:   item.Get("campaign_id").String(),
		SubscriberID: item.Get("subscriber_id").String(),
		Type:         domain.DeliveryEventType(item.Get("event_type").String()),
		URL:          item.Get("url").String(),
		UserAgent:    item.Get("user_agent").String(),
		IP:           item.Get("ip").String(),
	}

	if ts := item.Get("timestamp"); ts.Exists() {
		if parsed, err := time.Parse(time.RFC3339, ts.String()); err == nil {
			event.Timestamp = parsed.UTC()
		}
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return event
}
