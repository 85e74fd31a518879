package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/onboarding/goal", h.saveGoal)
		r.Post("/api/onboarding/skills", h.saveSkills)
		r.Post("/api/onboarding/preferences", h.savePreferences)
		r.Get("/api/onboarding/status", h.onboardingStatus)

		r.Post("/api/ai/generate-path", h.generatePath)
		r.Get("/api/ai/path", h.getPath)
	})

	return router
}
