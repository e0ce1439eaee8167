package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// RouterConfig carries what NewRouter needs to mount the API.
type RouterConfig struct {
	Generator      *service.GeneratorService
	Forms          *service.FormService
	FormSecret     string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter mounts the health check, one-shot generation and form session
// routes.
func NewRouter(cfg RouterConfig) chi.Router {
	genHandler := NewGeneratorHandler(cfg.Generator)
	formHandler := NewFormHandler(cfg.Forms)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/forms", formHandler.HandleCreate)
	})

	r.Route("/api/v1/form", func(r chi.Router) {
		r.Use(middleware.FormAuth(cfg.FormSecret))
		r.Get("/", formHandler.HandleGet)
		r.Delete("/", formHandler.HandleDelete)
		r.Put("/length", formHandler.HandleSetLength)
		r.Put("/classes/{class}", formHandler.HandleSetClass)
		r.Post("/reset", formHandler.HandleReset)

		r.With(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)).
			Post("/submit", formHandler.HandleSubmit)
	})

	return r
}
