package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/swcleaning/ai-responder/cmd/mainconfig"
	"github.com/swcleaning/ai-responder/internal/api/router"
	"github.com/swcleaning/ai-responder/internal/archive"
	appconfig "github.com/swcleaning/ai-responder/internal/config"
	"github.com/swcleaning/ai-responder/internal/feedback"
	"github.com/swcleaning/ai-responder/internal/http/handlers"
	httpmiddleware "github.com/swcleaning/ai-responder/internal/http/middleware"
	"github.com/swcleaning/ai-responder/internal/knowledge"
	"github.com/swcleaning/ai-responder/internal/memory"
	"github.com/swcleaning/ai-responder/internal/notify"
	"github.com/swcleaning/ai-responder/internal/observability/metrics"
	"github.com/swcleaning/ai-responder/internal/respond"
	"github.com/swcleaning/ai-responder/internal/training"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting ai-responder API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Conversation memory and training corpus.
	store := memory.NewStore()
	matcher := training.NewMatcher()

	// Knowledge base: Redis-backed when configured, static otherwise.
	var kb knowledge.Repository
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		repo, err := knowledge.NewRedisRepository(ctx, redis.NewClient(opts), logger)
		if err != nil {
			logger.Error("failed to initialize knowledge repository", "error", err)
			os.Exit(1)
		}
		kb = repo
	} else {
		logger.Warn("no redis address configured, knowledge edits will not persist")
		kb = knowledge.NewStaticRepository()
	}

	// LLM clients: Bedrock primary, Gemini fallback when configured.
	awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}
	var llm respond.LLMClient = respond.NewBedrockLLMClient(bedrockruntime.NewFromConfig(awsCfg))
	if cfg.GeminiAPIKey != "" {
		gemini, err := respond.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		llm = respond.NewFallbackLLMClient(llm, gemini, logger)
	}

	// Feedback persistence is optional; the responder works without it.
	var feedbackStore *feedback.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		feedbackStore = feedback.NewStore(db)
	} else {
		logger.Warn("no database configured, feedback endpoints disabled")
	}

	// Low-rating alert emails.
	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		sender = notify.NewStubEmailSender(logger)
	}
	alerts := notify.NewAlertService(sender, cfg.FeedbackAlertEmail, logger)

	m := metrics.NewResponderMetrics(prometheus.DefaultRegisterer)

	svc := respond.NewService(store, matcher, kb, llm, logger,
		respond.WithModel(cfg.BedrockModelID, int32(cfg.LLMMaxTokens), float32(cfg.LLMTemperature)),
		respond.WithMetrics(m),
	)

	archiver := archive.New(archive.Config{
		S3:     s3.NewFromConfig(awsCfg),
		Bucket: cfg.ArchiveBucket,
		Logger: logger,
	})

	var feedbackHandler *handlers.FeedbackHandler
	if feedbackStore != nil {
		feedbackHandler = handlers.NewFeedbackHandler(feedbackStore, alerts, m, logger)
	}

	r := router.New(&router.Config{
		Logger:             logger,
		RespondHandler:     handlers.NewRespondHandler(svc, logger),
		FeedbackHandler:    feedbackHandler,
		KnowledgeHandler:   handlers.NewKnowledgeHandler(kb, logger),
		BusinessHandler:    handlers.NewBusinessHandler(logger),
		AdminHandler:       handlers.NewAdminHandler(store, matcher, feedbackStore, archiver, m, logger),
		HealthHandler:      handlers.NewHealthHandler(),
		MetricsHandler:     promhttp.Handler(),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: httpmiddleware.DefaultPublicRate,
		RateLimitBurst:     httpmiddleware.DefaultPublicBurst,
	})

	// Periodic retention sweep: archive then drop stale conversations.
	go runRetentionSweep(ctx, cfg, store, archiver, m, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func runRetentionSweep(ctx context.Context, cfg *appconfig.Config, store *memory.Store, archiver *archive.Archiver, m *metrics.ResponderMetrics, logger *logging.Logger) {
	if cfg.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := store.Cleanup(cfg.RetentionMaxAgeDays)
			m.ObserveCleanup(len(removed))
			if len(removed) == 0 {
				continue
			}
			logger.Info("retention sweep removed conversations",
				"count", len(removed),
				"max_age_days", cfg.RetentionMaxAgeDays,
			)
			if !archiver.Enabled() {
				continue
			}
			res, err := archiver.Archive(ctx, removed)
			if err != nil {
				logger.Error("failed to archive swept conversations", "error", err)
				m.ObserveArchive(0, true)
				continue
			}
			m.ObserveArchive(res.ConversationsArchived, false)
		}
	}
}
