package worker

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tracker/src/config"
	"tracker/src/worker/handlers"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
}

func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	handler, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handler,
	}
	server.InitRoutes()

	if cfg.Sync.CronSpec != "" {
		if err := handler.Controller.SchedulePeriodicSync(ctx, cfg.Sync.CronSpec); err != nil {
			return nil, err
		}
	}
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Route("/api/sync", func(r chi.Router) {
		r.Post("/all", s.Handler.SyncAll)
		r.Post("/{clientID}", s.Handler.SyncClient)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		Handler:      server,
	}
	return httpServer
}
