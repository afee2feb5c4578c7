package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/swcleaning/ai-responder/internal/feedback"
	"github.com/swcleaning/ai-responder/internal/notify"
	"github.com/swcleaning/ai-responder/internal/observability/metrics"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

// FeedbackHandler records operator ratings of generated responses.
type FeedbackHandler struct {
	store   *feedback.Store
	alerts  *notify.AlertService
	metrics *metrics.ResponderMetrics
	logger  *logging.Logger
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(store *feedback.Store, alerts *notify.AlertService, m *metrics.ResponderMetrics, logger *logging.Logger) *FeedbackHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &FeedbackHandler{store: store, alerts: alerts, metrics: m, logger: logger}
}

type feedbackRequest struct {
	ConversationID  string `json:"conversationId"`
	Rating          int    `json:"rating"`
	Comments        string `json:"comments"`
	ResponseContent string `json:"responseContent"`
}

// Submit stores one rating.
// POST /api/feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Rating == 0 {
		jsonError(w, "Rating is required", http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		jsonError(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	saved, err := h.store.Save(r.Context(), feedback.Feedback{
		ConversationID:  req.ConversationID,
		Rating:          req.Rating,
		Comments:        req.Comments,
		ResponseContent: req.ResponseContent,
	})
	if err != nil {
		h.logger.Error("failed to save feedback", "error", err)
		jsonError(w, "Failed to save feedback", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveFeedback(strconv.Itoa(req.Rating))

	// Low ratings alert the team but never fail the request.
	if err := h.alerts.NotifyLowRating(r.Context(), req.Rating, req.Comments, req.ResponseContent); err != nil {
		h.logger.Warn("low-rating alert failed", "feedback_id", saved.ID, "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Feedback received successfully",
		"id":      saved.ID,
	})
}

// Recent lists the latest feedback records.
// GET /admin/feedback
func (h *FeedbackHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.store.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list feedback", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"feedback": records,
		"count":    len(records),
	})
}
