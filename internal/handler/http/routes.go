package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// bundled UI document
	router.Get("/", h.index)
	router.Get("/preload.js", h.preload)

	// bridge channels
	router.Post("/ipc/send-file", h.sendFile)
	router.Get("/ipc/notifications", h.streamNotifications)

	router.Get("/api/version", h.getVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
