package http

import (
	"encoding/json"
	"net/http"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/http/middleware"
	"github.com/mailkite/mailkite/pkg/logger"
)

type SubscriberHandler struct {
	service domain.SubscriberService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewSubscriberHandler(service domain.SubscriberService, auth *middleware.AuthConfig, logger logger.Logger) *SubscriberHandler {
	return &SubscriberHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

// Request types
type subscriberListsRequest struct {
	SubscriberID string   `json:"subscriber_id"`
	ListIDs      []string `json:"list_ids,omitempty"`
	ListID       string   `json:"list_id,omitempty"`
}

type subscriberIDRequest struct {
	ID string `json:"id"`
}

func (h *SubscriberHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	// Public endpoint reached from the double opt-in email
	mux.Handle("/subscribe.confirm", http.HandlerFunc(h.handleConfirm))

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/subscribers.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/subscribers.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/subscribers.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/subscribers.import", requireAuth(http.HandlerFunc(h.handleImport)))
	mux.Handle("/api/subscribers.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/subscribers.addToLists", requireAuth(http.HandlerFunc(h.handleAddToLists)))
	mux.Handle("/api/subscribers.removeFromList", requireAuth(http.HandlerFunc(h.handleRemoveFromList)))
	mux.Handle("/api/subscribers.unsubscribe", requireAuth(http.HandlerFunc(h.handleUnsubscribe)))
	mux.Handle("/api/subscribers.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *SubscriberHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	listID := r.URL.Query().Get("list_id")

	subscribers, err := h.service.GetSubscribers(r.Context(), tenant, listID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get subscribers")
		WriteJSONError(w, "Failed to get subscribers", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subscribers": subscribers,
	})
}

func (h *SubscriberHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	subscriberID := r.URL.Query().Get("id")
	if subscriberID == "" {
		WriteJSONError(w, "Missing subscriber ID", http.StatusBadRequest)
		return
	}

	subscriber, err := h.service.GetSubscriberByID(r.Context(), tenant, subscriberID)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Subscriber not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get subscriber")
		WriteJSONError(w, "Failed to get subscriber", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subscriber": subscriber,
	})
}

func (h *SubscriberHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.CreateSubscriberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subscriber, err := h.service.CreateSubscriber(r.Context(), tenant, &req)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if domain.IsNotFound(err) {
			WriteJSONError(w, "List not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create subscriber")
		WriteJSONError(w, "Failed to create subscriber", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"subscriber": subscriber,
	})
}

func (h *SubscriberHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.ImportSubscribersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ImportSubscribers(r.Context(), tenant, &req)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to import subscribers")
		WriteJSONError(w, "Failed to import subscribers", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *SubscriberHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.UpdateSubscriberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subscriber, err := h.service.UpdateSubscriber(r.Context(), tenant, &req)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Subscriber not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update subscriber")
		WriteJSONError(w, "Failed to update subscriber", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subscriber": subscriber,
	})
}

func (h *SubscriberHandler) handleAddToLists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req subscriberListsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SubscriberID == "" {
		WriteJSONError(w, "Missing subscriber ID", http.StatusBadRequest)
		return
	}

	if err := h.service.AddToLists(r.Context(), tenant, req.SubscriberID, req.ListIDs); err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Subscriber or list not found", http.StatusNotFound)
			return
		}
		// A list owned by another tenant is indistinguishable from a
		// missing one from the caller's point of view
		if _, ok := err.(*domain.ErrTenantMismatch); ok {
			WriteJSONError(w, "Subscriber or list not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to add subscriber to lists")
		WriteJSONError(w, "Failed to add subscriber to lists", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *SubscriberHandler) handleRemoveFromList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req subscriberListsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SubscriberID == "" || req.ListID == "" {
		WriteJSONError(w, "Missing subscriber ID or list ID", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveFromList(r.Context(), tenant, req.SubscriberID, req.ListID); err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Membership not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to remove subscriber from list")
		WriteJSONError(w, "Failed to remove subscriber from list", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// handleConfirm serves the link from the opt-in email. No auth; the token
// is the credential.
func (h *SubscriberHandler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		WriteJSONError(w, "Missing confirmation token", http.StatusBadRequest)
		return
	}

	subscriber, err := h.service.ConfirmSubscriber(r.Context(), token)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Invalid confirmation token", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to confirm subscription")
		WriteJSONError(w, "Failed to confirm subscription", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"email":   subscriber.Email,
	})
}

func (h *SubscriberHandler) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req subscriberIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing subscriber ID", http.StatusBadRequest)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), tenant, req.ID); err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Subscriber not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to unsubscribe subscriber")
		WriteJSONError(w, "Failed to unsubscribe subscriber", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *SubscriberHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req subscriberIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing subscriber ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSubscriber(r.Context(), tenant, req.ID); err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Subscriber not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete subscriber")
		WriteJSONError(w, "Failed to delete subscriber", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
