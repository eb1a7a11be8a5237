package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"calcjus/repository"
	"calcjus/service"
)

// RouterConfig reúne as dependências do roteador.
type RouterConfig struct {
	Correction *service.CorrectionService
	Labor      *service.LaborService
	Deadline   *service.DeadlineService
	Records    repository.RecordRepository
	Limiter    *RateLimiter
	Log        zerolog.Logger
}

// NewRouter monta o roteador chi com todas as rotas da API.
func NewRouter(cfg RouterConfig) http.Handler {
	correctionHandler := NewCorrectionHandler(cfg.Correction)
	laborHandler := NewLaborHandler(cfg.Labor)
	deadlineHandler := NewDeadlineHandler(cfg.Deadline)
	exportHandler := NewExportHandler(cfg.Records)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Log))
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if cfg.Limiter != nil {
		r.Use(RateLimit(cfg.Limiter))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/calculations", func(r chi.Router) {
			r.Post("/civil", correctionHandler.CalculateCivil)
			r.Post("/criminal", correctionHandler.CalculateCriminal)
			r.Post("/labor", laborHandler.Calculate)
			r.Post("/deadline", deadlineHandler.Calculate)
			r.Get("/last", exportHandler.LastRecord)
		})
		r.Get("/export/report", exportHandler.Report)
	})

	return r
}

// requestLogger registra método, rota, status e duração via zerolog.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
