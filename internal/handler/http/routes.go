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

	router.Get("/ws", h.serveWS)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))

		r.Get("/ping", h.ping)
		r.Get("/version", h.getServerVersion)

		r.Get("/debug", h.getDebug)
		r.Post("/debug", h.setDebug)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/auth/me", h.me)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
