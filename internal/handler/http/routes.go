package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// sub-routers inherit these when mounted, so they are set first
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/api/version", h.getAppVersion)

	router.Route("/api/sync", func(r chi.Router) {
		r.Get("/status", h.getSyncStatus)
		r.Get("/config", h.getSyncConfig)
		r.Put("/config", h.updateSyncConfig)
		r.Post("/manual", h.manualSync)
		r.Post("/pull", h.loadFromRemote)
		r.Post("/auto/start", h.startAutoSync)
		r.Post("/auto/stop", h.stopAutoSync)
		r.Post("/data-changed", h.notifyDataChanged)
	})

	router.Route("/api/backups", func(r chi.Router) {
		r.Get("/", h.listBackups)
		r.Post("/", h.createBackup)
		r.Post("/{timestamp}/restore", h.restoreBackup)
		r.Delete("/{timestamp}", h.deleteBackup)
	})

	return router
}
