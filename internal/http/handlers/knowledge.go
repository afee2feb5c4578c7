package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/swcleaning/ai-responder/internal/knowledge"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

// KnowledgeHandler handles knowledge-base reads and admin updates.
type KnowledgeHandler struct {
	repo   knowledge.Repository
	logger *logging.Logger
}

// NewKnowledgeHandler creates a new knowledge handler.
func NewKnowledgeHandler(repo knowledge.Repository, logger *logging.Logger) *KnowledgeHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &KnowledgeHandler{repo: repo, logger: logger}
}

// GetAll returns every knowledge category with its content.
// GET /admin/knowledge
func (h *KnowledgeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	kb, err := h.repo.All(r.Context())
	if err != nil {
		h.logger.Error("failed to load knowledge base", "error", err)
		jsonError(w, "Failed to load knowledge base", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"knowledgeBase": kb,
		"totalEntries":  len(kb),
	})
}

// GetCategory returns one knowledge entry.
// GET /admin/knowledge/{category}
func (h *KnowledgeHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(chi.URLParam(r, "category"))
	if category == "" {
		jsonError(w, "missing category", http.StatusBadRequest)
		return
	}

	entry, err := h.repo.Get(r.Context(), category)
	if errors.Is(err, knowledge.ErrNotFound) {
		jsonError(w, "category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to load knowledge entry", "category", category, "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// PromptPreview renders the knowledge base exactly as the generation
// prompt receives it, so staff can review what the model sees after an
// edit.
// GET /admin/knowledge/preview
func (h *KnowledgeHandler) PromptPreview(w http.ResponseWriter, r *http.Request) {
	kb, err := h.repo.All(r.Context())
	if err != nil {
		h.logger.Error("failed to load knowledge base", "error", err)
		jsonError(w, "Failed to load knowledge base", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"prompt":     knowledge.AllForPrompt(kb),
		"categories": len(kb),
	})
}

type knowledgeUpdateRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

// Update creates or replaces a knowledge entry.
// POST /admin/knowledge
func (h *KnowledgeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req knowledgeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Content) == "" {
		jsonError(w, "Category and content are required", http.StatusBadRequest)
		return
	}

	entry, err := h.repo.Put(r.Context(), strings.TrimSpace(req.Category), strings.TrimSpace(req.Content))
	if err != nil {
		h.logger.Error("failed to update knowledge base", "category", req.Category, "error", err)
		jsonError(w, "Failed to update knowledge base", http.StatusInternalServerError)
		return
	}

	h.logger.Info("knowledge entry updated", "category", entry.Category, "version", entry.Version)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Knowledge base updated successfully",
		"entryId": entry.ID,
		"version": entry.Version,
	})
}
