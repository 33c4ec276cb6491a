package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/adhishthite/tippr/docs"
	"github.com/adhishthite/tippr/internal/calculation"
	"github.com/adhishthite/tippr/internal/config"
	"github.com/adhishthite/tippr/internal/session"
	"github.com/adhishthite/tippr/pkg/logging"
	mw "github.com/adhishthite/tippr/pkg/middleware"
	"github.com/adhishthite/tippr/pkg/response"
)

// @title        tippr API
// @version      1.0
// @description  Bill splitting and tip calculation engine: input validation, tip arithmetic, whole-dollar rounding, and fair penny distribution.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	docs.SwaggerInfo.Host = cfg.SwaggerHost

	// Calculation feature
	calculationService := calculation.NewService()
	calculationHandler := calculation.NewHandler(calculationService)

	// Session feature
	sessionService := session.NewService()
	sessionHandler := session.NewHandler(sessionService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(mw.Metrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/calculations", calculationHandler.Routes())
		r.Mount("/sessions", sessionHandler.Routes())
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
