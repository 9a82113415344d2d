package api

import (
	"net/http"

	_ "pricesvc/docs"
	"pricesvc/internal/metrics"
	"pricesvc/internal/price/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(priceHandler *handler.Handler, m *metrics.Metrics) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(m.Middleware)

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Method(http.MethodGet, "/metrics", m.Handler())

	router.Get("/price", priceHandler.GetPrice)
	router.Get("/price/config", priceHandler.GetConfig)
	return router
}
