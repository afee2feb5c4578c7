package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/swcleaning/ai-responder/internal/respond"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

// fallbackContent is returned to the operator when generation fails, so the
// inbox UI always has something safe to show.
const fallbackContent = "I apologize, but I'm having trouble generating a response right now. " +
	"Please contact Somerset Window Cleaning directly at info@somersetwindowcleaning.co.uk " +
	"or call our main number for immediate assistance."

// Responder generates a response for one customer message.
type Responder interface {
	Respond(ctx context.Context, req respond.Request) (respond.Result, error)
}

// RespondHandler exposes the response pipeline over HTTP.
type RespondHandler struct {
	svc    Responder
	logger *logging.Logger
}

// NewRespondHandler creates a new respond handler.
func NewRespondHandler(svc Responder, logger *logging.Logger) *RespondHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &RespondHandler{svc: svc, logger: logger}
}

// Generate runs the pipeline for one message.
// POST /api/respond
func (h *RespondHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req respond.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		jsonError(w, "Message is required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Respond(r.Context(), req)
	if err != nil {
		h.logger.Error("response generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":      "Failed to generate response",
			"content":    fallbackContent,
			"confidence": 0,
			"suggestions": []string{
				"Check model configuration",
				"Verify LLM credentials",
				"Try again in a few moments",
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, res)
}
