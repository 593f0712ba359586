package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/http/middleware"
	"github.com/mailkite/mailkite/pkg/logger"
)

// MissingParameterError is an error type for missing URL parameters
type MissingParameterError struct {
	Param string
}

// Error returns the error message
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing parameter: %s", e.Param)
}

type CampaignHandler struct {
	service domain.CampaignService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewCampaignHandler(service domain.CampaignService, auth *middleware.AuthConfig, logger logger.Logger) *CampaignHandler {
	return &CampaignHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *CampaignHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/campaigns.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/campaigns.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/campaigns.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/campaigns.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/campaigns.schedule", requireAuth(http.HandlerFunc(h.handleSchedule)))
	mux.Handle("/api/campaigns.pause", requireAuth(http.HandlerFunc(h.handlePause)))
	mux.Handle("/api/campaigns.resume", requireAuth(http.HandlerFunc(h.handleResume)))
	mux.Handle("/api/campaigns.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

// GetCampaignsRequest is used to extract query parameters for listing campaigns
type GetCampaignsRequest struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// FromURLParams parses URL query parameters into the request
func (r *GetCampaignsRequest) FromURLParams(values url.Values) error {
	r.Status = values.Get("status")

	if limitStr := values.Get("limit"); limitStr != "" {
		var err error
		r.Limit, err = parseIntParam(limitStr)
		if err != nil {
			return fmt.Errorf("invalid limit parameter: %w", err)
		}
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		var err error
		r.Offset, err = parseIntParam(offsetStr)
		if err != nil {
			return fmt.Errorf("invalid offset parameter: %w", err)
		}
	}

	return nil
}

// parseIntParam parses a string to an integer
func parseIntParam(s string) (int, error) {
	var result int
	_, err := fmt.Sscanf(s, "%d", &result)
	if err != nil {
		return 0, err
	}
	return result, nil
}

type campaignIDRequest struct {
	ID string `json:"id"`
}

func (h *CampaignHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req GetCampaignsRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := domain.ListCampaignsParams{
		TenantID: tenant,
		Status:   domain.CampaignStatus(req.Status),
		Limit:    req.Limit,
		Offset:   req.Offset,
	}

	response, err := h.service.ListCampaigns(r.Context(), params)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list campaigns")
		WriteJSONError(w, "Failed to list campaigns", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"campaigns":   response.Campaigns,
		"total_count": response.TotalCount,
	})
}

func (h *CampaignHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaignID := r.URL.Query().Get("id")
	if campaignID == "" {
		WriteJSONError(w, "Missing campaign ID", http.StatusBadRequest)
		return
	}

	campaign, err := h.service.GetCampaign(r.Context(), tenant, campaignID)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Campaign not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get campaign")
		WriteJSONError(w, "Failed to get campaign", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"campaign": campaign,
	})
}

func (h *CampaignHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := h.service.CreateCampaign(r.Context(), tenant, &req)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Template not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create campaign")
		WriteJSONError(w, "Failed to create campaign", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"campaign": campaign,
	})
}

func (h *CampaignHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	campaign, err := h.service.UpdateCampaign(r.Context(), tenant, &req)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Campaign not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update campaign")
		WriteJSONError(w, "Failed to update campaign", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"campaign": campaign,
	})
}

func (h *CampaignHandler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.ScheduleCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.ScheduleCampaign(r.Context(), tenant, &req); err != nil {
		h.writeTransitionError(w, err, "Failed to schedule campaign")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *CampaignHandler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.PauseCampaign, "Failed to pause campaign")
}

func (h *CampaignHandler) handleResume(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.ResumeCampaign, "Failed to resume campaign")
}

func (h *CampaignHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.DeleteCampaign, "Failed to delete campaign")
}

func (h *CampaignHandler) handleTransition(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, tenantID, id string) error, failMsg string) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req campaignIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing campaign ID", http.StatusBadRequest)
		return
	}

	if err := op(r.Context(), tenant, req.ID); err != nil {
		h.writeTransitionError(w, err, failMsg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *CampaignHandler) writeTransitionError(w http.ResponseWriter, err error, failMsg string) {
	if domain.IsNotFound(err) {
		WriteJSONError(w, "Campaign not found", http.StatusNotFound)
		return
	}
	if _, ok := err.(*domain.ErrInvalidTransition); ok {
		WriteJSONError(w, err.Error(), http.StatusConflict)
		return
	}
	if _, ok := err.(domain.ValidationError); ok {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.logger.WithField("error", err.Error()).Error(failMsg)
	WriteJSONError(w, failMsg, http.StatusInternalServerError)
}
