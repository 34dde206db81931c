package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"tracker/src/api"
	"tracker/src/config"
	"tracker/src/utils"
	"tracker/src/worker"
)

func main() {
	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Fatalln(err, "error while loading config")
	}

	logger := utils.NewLogger(utils.ParseLogLevel(cfg.Service.LogLevel), false, "")
	ctx := utils.WithLogger(context.Background(), logger)

	errC, err := run(ctx, cfg)
	if err != nil {
		logger.Fatalf("couldn't run: %v", err)
	}

	if err := <-errC; err != nil {
		logger.Errorf("error while running: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) (<-chan error, error) {
	logger := utils.LoggerFromContext(ctx)
	errC := make(chan error, 1)

	var httpServer *http.Server
	if cfg.Service.Type == "API" {
		server, err := api.NewServer(cfg)
		if err != nil {
			return nil, err
		}
		httpServer = api.NewHTTPServer(server, cfg)
	} else {
		server, err := worker.NewServer(ctx, cfg)
		if err != nil {
			return nil, err
		}
		httpServer = worker.NewHTTPServer(server, cfg)
	}

	go func() {
		logger.Infof("starting %s server on port %s", cfg.Service.Type, cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
