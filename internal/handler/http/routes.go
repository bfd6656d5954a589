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

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", h.createClient)

			r.Route("/{clientID}", func(r chi.Router) {
				// reserved: single-client read is routed but not served yet
				r.Get("/", h.getClient)
				r.Put("/", h.updateClient)
				r.Delete("/", h.deleteClient)

				r.Route("/passwords", func(r chi.Router) {
					r.Get("/", h.getPasswords)
					r.Post("/", h.createPassword)
					r.Put("/{passwordID}", h.updatePassword)
					r.Delete("/{passwordID}", h.deletePassword)
				})
			})
		})
	})

	return router
}
