package rest

import (
	"context"
	"net/http"

	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	listings_handlers *ListingsHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// public marketplace routes
		r.Get("/listings", listings_handlers.FindListings)
		r.Get("/listings/stats", listings_handlers.GetStats)
		r.Get("/listings/{listingID}", listings_handlers.GetListingDetails)
		r.Get("/listings/{listingID}/similar", listings_handlers.GetSimilarListings)

		// admin console routes (unpublished rows and source failures visible)
		r.Get("/admin/listings", listings_handlers.FindListingsAdmin)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
