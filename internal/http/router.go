package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/warehouse-kit/inventory-api/internal/http/handlers"
)

// NewRouter builds the API route table. Routes live under /api, the prefix
// the browser client requests against.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(RateLimit)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/items", handlers.GetItemsHandler)
		r.Get("/items/search", handlers.SearchItemsHandler)
		r.Post("/items", handlers.CreateItemHandler)
		r.Put("/items/{id}", handlers.UpdateItemHandler)
		r.Delete("/items/{id}", handlers.DeleteItemHandler)
		r.Post("/items/{id}/operation", handlers.ApplyOperationHandler)
		r.Put("/items/{id}/status", handlers.UpdateItemStatusHandler)
		r.Get("/items/{id}/operations", handlers.GetOperationsHandler)
		r.Get("/items/{id}/operations/export", handlers.ExportOperationsHandler)
		r.Get("/reports/low-stock", handlers.LowStockReportHandler)
	})
	return r
}
