package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/staffhub-io/staffdir-backend-go/internal/config"
	"github.com/staffhub-io/staffdir-backend-go/internal/handler/http/middleware"
)

func NewRouter(cfg *config.Config, staffHandler StaffHandler, statisticsHandler StatisticsHandler) (*chi.Mux, error) {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdir-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(cfg.App.RequestTimeout))
	r.Use(chiMiddleware.Heartbeat("/"))

	rateLimit, err := middleware.RateLimit(cfg.App.RateLimit)
	if err != nil {
		return nil, err
	}
	r.Use(rateLimit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients/{clientID}", func(r chi.Router) {
			r.Get("/staffs", staffHandler.ListStaffs)
			r.Get("/statistics", statisticsHandler.GetClientStatistics)
		})
	})
	return r, nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
