// Package router wires HTTP routes for the responder service.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/swcleaning/ai-responder/internal/http/handlers"
	httpmiddleware "github.com/swcleaning/ai-responder/internal/http/middleware"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger           *logging.Logger
	RespondHandler   *handlers.RespondHandler
	FeedbackHandler  *handlers.FeedbackHandler
	KnowledgeHandler *handlers.KnowledgeHandler
	BusinessHandler  *handlers.BusinessHandler
	AdminHandler     *handlers.AdminHandler
	HealthHandler    *handlers.HealthHandler
	MetricsHandler   http.Handler

	AdminAuthSecret    string
	CORSAllowedOrigins []string

	// Requests/sec per IP for the public API; zero disables limiting.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		if cfg.RateLimitPerSecond > 0 {
			public.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
		}
		if cfg.HealthHandler != nil {
			public.Get("/health", cfg.HealthHandler.Check)
		}
		if cfg.RespondHandler != nil {
			public.Post("/api/respond", cfg.RespondHandler.Generate)
		}
		if cfg.FeedbackHandler != nil {
			public.Post("/api/feedback", cfg.FeedbackHandler.Submit)
		}
		if cfg.BusinessHandler != nil {
			public.Get("/api/coverage", cfg.BusinessHandler.Coverage)
			public.Get("/api/services", cfg.BusinessHandler.Services)
		}
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Admin routes (protected by HMAC JWT)
	if cfg.AdminAuthSecret != "" {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
			if cfg.AdminHandler != nil {
				admin.Get("/conversations", cfg.AdminHandler.ListConversations)
				admin.Post("/conversations/cleanup", cfg.AdminHandler.Cleanup)
				admin.Get("/conversations/{conversationID}", cfg.AdminHandler.GetConversation)
				admin.Put("/conversations/{conversationID}/status", cfg.AdminHandler.SetStatus)
				admin.Get("/insights", cfg.AdminHandler.Insights)
			}
			if cfg.KnowledgeHandler != nil {
				admin.Get("/knowledge", cfg.KnowledgeHandler.GetAll)
				admin.Post("/knowledge", cfg.KnowledgeHandler.Update)
				admin.Put("/knowledge", cfg.KnowledgeHandler.Update)
				admin.Get("/knowledge/preview", cfg.KnowledgeHandler.PromptPreview)
				admin.Get("/knowledge/{category}", cfg.KnowledgeHandler.GetCategory)
			}
			if cfg.FeedbackHandler != nil {
				admin.Get("/feedback", cfg.FeedbackHandler.Recent)
			}
		})
	}

	return r
}
