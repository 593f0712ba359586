package http

import (
	"encoding/json"
	"net/http"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/http/middleware"
	"github.com/mailkite/mailkite/pkg/logger"
)

type AutomationHandler struct {
	service domain.AutomationService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewAutomationHandler(service domain.AutomationService, auth *middleware.AuthConfig, logger logger.Logger) *AutomationHandler {
	return &AutomationHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

type automationRuleIDRequest struct {
	ID string `json:"id"`
}

func (h *AutomationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/automations.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/automations.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/automations.activate", requireAuth(http.HandlerFunc(h.handleActivate)))
	mux.Handle("/api/automations.deactivate", requireAuth(http.HandlerFunc(h.handleDeactivate)))
	mux.Handle("/api/automations.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *AutomationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rules, err := h.service.GetRules(r.Context(), tenant)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get automation rules")
		WriteJSONError(w, "Failed to get automation rules", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rules": rules,
	})
}

func (h *AutomationHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.CreateAutomationRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := h.service.CreateRule(r.Context(), tenant, &req)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create automation rule")
		WriteJSONError(w, "Failed to create automation rule", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"rule": rule,
	})
}

func (h *AutomationHandler) handleActivate(w http.ResponseWriter, r *http.Request) {
	h.handleSetActive(w, r, true)
}

func (h *AutomationHandler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	h.handleSetActive(w, r, false)
}

func (h *AutomationHandler) handleSetActive(w http.ResponseWriter, r *http.Request, active bool) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req automationRuleIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing rule ID", http.StatusBadRequest)
		return
	}

	if err := h.service.SetRuleActive(r.Context(), tenant, req.ID, active); err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Automation rule not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update automation rule")
		WriteJSONError(w, "Failed to update automation rule", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *AutomationHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req automationRuleIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing rule ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteRule(r.Context(), tenant, req.ID); err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Automation rule not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete automation rule")
		WriteJSONError(w, "Failed to delete automation rule", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
