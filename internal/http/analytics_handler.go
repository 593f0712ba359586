package http

import (
	"encoding/json"
	"net/http"

	"github.com/mailkite/mailkite/internal/domain"
	"github.com/mailkite/mailkite/internal/http/middleware"
	"github.com/mailkite/mailkite/pkg/logger"
)

type AnalyticsHandler struct {
	service domain.AnalyticsService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewAnalyticsHandler(service domain.AnalyticsService, auth *middleware.AuthConfig, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

type recomputeAnalyticsRequest struct {
	CampaignID string `json:"campaign_id"`
}

func (h *AnalyticsHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/analytics.campaign", requireAuth(http.HandlerFunc(h.handleCampaign)))
	mux.Handle("/api/analytics.recompute", requireAuth(http.HandlerFunc(h.handleRecompute)))
	mux.Handle("/api/analytics.kpis", requireAuth(http.HandlerFunc(h.handleKPIs)))
	mux.Handle("/api/analytics.spamRate", requireAuth(http.HandlerFunc(h.handleSpamRate)))
	mux.Handle("/api/analytics.domains", requireAuth(http.HandlerFunc(h.handleDomains)))
	mux.Handle("/api/analytics.compliance", requireAuth(http.HandlerFunc(h.handleCompliance)))
}

func (h *AnalyticsHandler) handleCampaign(w http.ResponseWriter, r *http.Request) {
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

	analytics, err := h.service.GetCampaignAnalytics(r.Context(), tenant, campaignID)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Campaign not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get campaign analytics")
		WriteJSONError(w, "Failed to get campaign analytics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analytics": analytics,
	})
}

// handleRecompute rebuilds a campaign's counters from the delivery ledger
func (h *AnalyticsHandler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req recomputeAnalyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.CampaignID == "" {
		WriteJSONError(w, "Missing campaign ID", http.StatusBadRequest)
		return
	}

	analytics, err := h.service.RecomputeAnalytics(r.Context(), tenant, req.CampaignID)
	if err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Campaign not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to recompute campaign analytics")
		WriteJSONError(w, "Failed to recompute campaign analytics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analytics": analytics,
	})
}

func (h *AnalyticsHandler) handleKPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	kpis, err := h.service.GetKPIs(r.Context(), tenant)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get KPIs")
		WriteJSONError(w, "Failed to get KPIs", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"kpis": kpis,
	})
}

func (h *AnalyticsHandler) handleSpamRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rate, err := h.service.GetSpamRate(r.Context(), tenant)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get spam rate")
		WriteJSONError(w, "Failed to get spam rate", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"spam_rate": rate,
	})
}

func (h *AnalyticsHandler) handleDomains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	performance, err := h.service.GetDomainPerformance(r.Context(), tenant)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get domain performance")
		WriteJSONError(w, "Failed to get domain performance", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"domains": performance,
	})
}

func (h *AnalyticsHandler) handleCompliance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, ok := tenantID(r)
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.service.GetComplianceChecklist(r.Context(), tenant)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get compliance checklist")
		WriteJSONError(w, "Failed to get compliance checklist", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}
