package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/swcleaning/ai-responder/internal/knowledge"
)

func newKnowledgeRouter(h *KnowledgeHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/admin/knowledge", h.GetAll)
	r.Get("/admin/knowledge/preview", h.PromptPreview)
	r.Get("/admin/knowledge/{category}", h.GetCategory)
	r.Post("/admin/knowledge", h.Update)
	return r
}

func TestKnowledgeGetAll(t *testing.T) {
	h := NewKnowledgeHandler(knowledge.NewStaticRepository(), nil)
	r := newKnowledgeRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/admin/knowledge", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var payload struct {
		KnowledgeBase map[string]string `json:"knowledgeBase"`
		TotalEntries  int               `json:"totalEntries"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.TotalEntries == 0 {
		t.Fatal("expected seeded entries")
	}
	if _, ok := payload.KnowledgeBase["pricing"]; !ok {
		t.Fatalf("expected pricing category, got %v", payload.KnowledgeBase)
	}
}

func TestKnowledgePromptPreview(t *testing.T) {
	h := NewKnowledgeHandler(knowledge.NewStaticRepository(), nil)
	r := newKnowledgeRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/admin/knowledge/preview", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var payload struct {
		Prompt     string `json:"prompt"`
		Categories int    `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Categories == 0 {
		t.Fatal("expected seeded categories")
	}
	for _, want := range []string{
		"=== COMPREHENSIVE BUSINESS KNOWLEDGE ===",
		"--- SERVICES ---",
		"--- CUSTOMER SERVICE ---",
		"=== END KNOWLEDGE BASE ===",
	} {
		if !strings.Contains(payload.Prompt, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestKnowledgeGetCategory(t *testing.T) {
	h := NewKnowledgeHandler(knowledge.NewStaticRepository(), nil)
	r := newKnowledgeRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/admin/knowledge/services", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var entry knowledge.Entry
	if err := json.NewDecoder(rec.Body).Decode(&entry); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if entry.Category != "services" || entry.Content == "" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestKnowledgeGetCategoryNotFound(t *testing.T) {
	h := NewKnowledgeHandler(knowledge.NewStaticRepository(), nil)
	r := newKnowledgeRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/admin/knowledge/astrology", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestKnowledgeUpdate(t *testing.T) {
	repo := knowledge.NewStaticRepository()
	h := NewKnowledgeHandler(repo, nil)
	r := newKnowledgeRouter(h)

	body := strings.NewReader(`{"category":"pricing","content":"Updated pricing guidance."}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/knowledge", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var payload struct {
		Success bool   `json:"success"`
		EntryID string `json:"entryId"`
		Version int    `json:"version"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !payload.Success || payload.EntryID == "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.Version < 2 {
		t.Fatalf("expected version bump, got %d", payload.Version)
	}

	entry, err := repo.Get(req.Context(), "pricing")
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if entry.Content != "Updated pricing guidance." {
		t.Fatalf("update not persisted: %q", entry.Content)
	}
}

func TestKnowledgeUpdateMissingFields(t *testing.T) {
	h := NewKnowledgeHandler(knowledge.NewStaticRepository(), nil)
	r := newKnowledgeRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/admin/knowledge", strings.NewReader(`{"category":"pricing"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
