package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swcleaning/ai-responder/internal/archive"
	"github.com/swcleaning/ai-responder/internal/feedback"
	"github.com/swcleaning/ai-responder/internal/memory"
	"github.com/swcleaning/ai-responder/internal/observability/metrics"
	"github.com/swcleaning/ai-responder/internal/training"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

const defaultRetentionDays = 30

// AdminHandler exposes conversation memory and training insights to
// operators.
type AdminHandler struct {
	store    *memory.Store
	matcher  *training.Matcher
	feedback *feedback.Store
	archiver *archive.Archiver
	metrics  *metrics.ResponderMetrics
	logger   *logging.Logger
}

// NewAdminHandler creates a new admin handler. The feedback store and
// archiver are optional.
func NewAdminHandler(store *memory.Store, matcher *training.Matcher, fb *feedback.Store, archiver *archive.Archiver, m *metrics.ResponderMetrics, logger *logging.Logger) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminHandler{
		store:    store,
		matcher:  matcher,
		feedback: fb,
		archiver: archiver,
		metrics:  m,
		logger:   logger,
	}
}

// ListConversations returns every conversation in memory.
// GET /admin/conversations
func (h *AdminHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations := h.store.Export()
	writeJSON(w, http.StatusOK, map[string]any{
		"conversations": conversations,
		"count":         len(conversations),
	})
}

// GetConversation returns one conversation by ID.
// GET /admin/conversations/{conversationID}
func (h *AdminHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	conv, ok := h.store.Get(id)
	if !ok {
		jsonError(w, "conversation not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

type statusUpdateRequest struct {
	Status memory.Status `json:"status"`
}

// SetStatus updates a conversation's lifecycle status.
// PUT /admin/conversations/{conversationID}/status
func (h *AdminHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case memory.StatusActive, memory.StatusResolved, memory.StatusInternalReview, memory.StatusArchived:
	default:
		jsonError(w, "invalid status", http.StatusBadRequest)
		return
	}

	if !h.store.SetStatus(id, req.Status) {
		jsonError(w, "conversation not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": req.Status})
}

// Insights summarizes the training corpus and feedback quality.
// GET /admin/insights
func (h *AdminHandler) Insights(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"training":      h.matcher.Insights(),
		"conversations": h.store.Len(),
	}

	if h.feedback != nil {
		avg, err := h.feedback.AverageRating(r.Context())
		if err != nil {
			h.logger.Warn("failed to compute average rating", "error", err)
		} else {
			payload["averageFeedbackRating"] = avg
		}
	}

	writeJSON(w, http.StatusOK, payload)
}

type cleanupRequest struct {
	MaxAgeDays int `json:"maxAgeDays"`
}

// Cleanup removes stale non-active conversations, archiving them to S3
// when an archiver is configured.
// POST /admin/conversations/cleanup
func (h *AdminHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	var req cleanupRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.MaxAgeDays <= 0 {
		req.MaxAgeDays = defaultRetentionDays
	}

	removed := h.store.Cleanup(req.MaxAgeDays)
	h.metrics.ObserveCleanup(len(removed))

	payload := map[string]any{
		"removed":    len(removed),
		"maxAgeDays": req.MaxAgeDays,
	}

	if h.archiver.Enabled() && len(removed) > 0 {
		res, err := h.archiver.Archive(r.Context(), removed)
		if err != nil {
			h.logger.Error("failed to archive swept conversations", "error", err)
			h.metrics.ObserveArchive(0, true)
			payload["archiveError"] = "archive upload failed"
		} else {
			h.metrics.ObserveArchive(res.ConversationsArchived, false)
			payload["archived"] = res.ConversationsArchived
			payload["archiveKey"] = res.S3Key
		}
	}

	writeJSON(w, http.StatusOK, payload)
}
