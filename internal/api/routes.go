package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS is wide open on purpose: the form is embedded on the public event
	// site and previews run on arbitrary hosts. Tighten before adding any
	// authenticated surface.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Service banner
	r.Get("/", h.Root)

	// Prometheus exposition (scraped internally, not part of the public API)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		// Public form intake
		r.Post("/fighter-application", h.SubmitFighterApplication)
		r.Post("/fighter-nomination", h.SubmitFighterNomination)
		r.Post("/email-signup", h.SubmitEmailSignup)

		// Admin listings. No auth gate here: access control lives in the
		// gateway in front of this service.
		r.Route("/admin", func(r chi.Router) {
			r.Get("/fighter-applications", h.ListFighterApplications)
			r.Get("/fighter-nominations", h.ListFighterNominations)
			r.Get("/email-list", h.ListEmailSignups)
		})
	})

	return r
}
