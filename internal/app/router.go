package app

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/om3692/SAT/internal/app/observability"
	"github.com/om3692/SAT/internal/assistant"
	"github.com/om3692/SAT/internal/auth"
	"github.com/om3692/SAT/internal/catalog"
	"github.com/om3692/SAT/internal/exam"
	"github.com/om3692/SAT/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg Config, db *sql.DB, cat *catalog.Catalog) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	collector := observability.NewCollector(db)
	r.Use(collector.Middleware)
	r.Use(CSRFMiddleware(cfg.CSRFEnforced))

	authSvc := auth.NewService(db, auth.ServiceConfig{
		SessionTTL: time.Duration(cfg.SessionTTLHours) * time.Hour,
		BcryptCost: cfg.BcryptCost,
	})
	authHandler := auth.NewHandler(authSvc)

	testSvc := exam.NewService(cat, exam.NewPGSessionStore(db))
	reportSvc := report.NewService(db, cat)
	testHandler := exam.NewHandler(testSvc, reportSvc)
	reportHandler := report.NewHandler(reportSvc)
	catalogHandler := catalog.NewHandler(cat, cfg.TestDurationMinutes)
	assistantHandler := assistant.NewHandler(assistant.NewService(assistant.ServiceConfig{
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
	}))

	authLimiter := NewIPRateLimiter(cfg.AuthRateLimitPerMin, time.Minute)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	r.Get("/metrics", collector.MetricsHandler)
	r.Get("/", catalogHandler.Summary)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/catalog/summary", catalogHandler.Summary)

		api.Group(func(limited chi.Router) {
			limited.Use(RateLimitMiddleware(authLimiter))
			limited.Post("/auth/register", authHandler.Register)
			limited.Post("/auth/login", authHandler.Login)
		})

		api.Group(func(secure chi.Router) {
			secure.Use(authHandler.RequireAuth)
			secure.Get("/auth/me", authHandler.Me)
			secure.Post("/auth/logout", authHandler.Logout)

			secure.Post("/test/start", testHandler.Start)
			secure.Get("/test/questions/{index}", testHandler.ViewQuestion)
			secure.Post("/test/answer", testHandler.SubmitAnswer)
			secure.Post("/test/finalize", testHandler.Finalize)
			secure.Post("/test/reset", testHandler.Reset)

			secure.Get("/scores", reportHandler.ListScores)
			secure.Get("/scores/{id}", reportHandler.GetScore)
			secure.Get("/scores/{id}/export", reportHandler.ExportScore)

			secure.Post("/assistant/reply", assistantHandler.Reply)
		})
	})

	return r
}
