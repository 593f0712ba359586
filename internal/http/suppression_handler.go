package http

import (
	"encoding/json"
	"net/http"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/http/middleware"
	"github.com/mailkite/mailkite/pkg/logger"
)

type SuppressionHandler struct {
	service domain.SuppressionService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewSuppressionHandler(service domain.SuppressionService, auth *middleware.AuthConfig, logger logger.Logger) *SuppressionHandler {
	return &SuppressionHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *SuppressionHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/suppression.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/suppression.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/suppression.check", requireAuth(http.HandlerFunc(h.handleCheck)))
}

func (h *SuppressionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.service.GetEntries(r.Context(), tenant)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get suppression entries")
		WriteJSONError(w, "Failed to get suppression entries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}

func (h *SuppressionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.CreateSuppressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.AddEntry(r.Context(), tenant, &req)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create suppression entry")
		WriteJSONError(w, "Failed to create suppression entry", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"entry": entry,
	})
}

func (h *SuppressionHandler) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteJSONError(w, "Missing email", http.StatusBadRequest)
		return
	}

	suppressed, err := h.service.IsSuppressed(r.Context(), tenant, email)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to check suppression")
		WriteJSONError(w, "Failed to check suppression", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suppressed": suppressed,
	})
}
