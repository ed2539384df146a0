package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBodySize caps request bodies; credentials are tiny.
const maxRequestBodySize = 64 << 10

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(middleware.NoCache)
	router.Use(middleware.RequestSize(maxRequestBodySize))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Post("/add", h.add)
	router.Post("/get", h.get)
	router.Get("/list", h.list)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
