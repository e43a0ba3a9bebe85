package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danupratama/category-admin/internal/category"
	"github.com/danupratama/category-admin/internal/transport/middleware"
	"github.com/danupratama/category-admin/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes wires the category API, health checks and the OpenAPI
// surface onto the router.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, categoryHandler *category.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORSWithOrigins(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if categoryHandler != nil {
			r.Route("/categories", func(cr chi.Router) {
				cr.Get("/", categoryHandler.ListCategories)
				cr.Post("/", categoryHandler.CreateCategory)
				cr.Get("/{id}", categoryHandler.GetCategory)
				cr.Patch("/{id}", categoryHandler.UpdateCategory)
				cr.Delete("/{id}", categoryHandler.DeleteCategory)
			})
			r.Get("/state", categoryHandler.GetState)
		}
	})
}
