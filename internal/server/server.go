package server

import (
	"log/slog"
	"net/http"

	"retail-dashboard/internal/handlers"
	"retail-dashboard/internal/services"
)

type Server struct {
	retail      *services.Retail
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

func NewServer(retail *services.Retail, logger *slog.Logger) *Server {
	s := &Server{
		retail:      retail,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(retail, logger),
		sseHandlers: handlers.NewSSEHandlers(retail, logger),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/stores", s.apiHandlers.HandleStores)
	s.mux.HandleFunc("GET /api/stores/{storeId}/details", s.apiHandlers.HandleStoreDetail)
	s.mux.HandleFunc("GET /api/sales", s.apiHandlers.HandleSales)
	s.mux.HandleFunc("GET /api/inventory", s.apiHandlers.HandleInventory)
	s.mux.HandleFunc("GET /api/filters", s.apiHandlers.HandleFilters)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/sales", s.sseHandlers.HandleSales)
	s.mux.HandleFunc("GET /sse/inventory", s.sseHandlers.HandleInventory)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
