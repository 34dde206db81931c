package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"tracker/src/api/handlers"
	"tracker/src/config"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
}

func NewServer(cfg *config.Config) (*Server, error) {
	handler, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handler,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/records", func(r chi.Router) {
		r.Get("/", s.Handler.GetRecords)
		r.Post("/", s.Handler.CreateRecord)
		r.Put("/{id}", s.Handler.UpdateRecord)
		r.Delete("/{id}", s.Handler.DeleteRecord)
	})

	s.Router.Route("/api/sync", func(r chi.Router) {
		r.Post("/{clientID}", s.Handler.SyncClient)
		r.Get("/{clientID}/status", s.Handler.GetSyncStatus)
	})

	s.Router.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/{clientID}/holdings", s.Handler.GetHoldings)
		r.Get("/{clientID}/valuation", s.Handler.GetValuation)
		r.Get("/{clientID}/report", s.Handler.GetValuationReport)
	})

	s.Router.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", s.Handler.GetTransactions)
		r.Post("/", s.Handler.CreateTransaction)
	})

	s.Router.Route("/api/quotes", func(r chi.Router) {
		r.Get("/{assetType}/{symbol}", s.Handler.GetQuote)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
