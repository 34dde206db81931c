package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tracker/src/api/controllers"
	"tracker/src/clients/marketdata"
	"tracker/src/clients/remotestore"
	"tracker/src/config"
	"tracker/src/database"
	"tracker/src/repositories"
	"tracker/src/services"
	"tracker/src/utils"
	redis_utils "tracker/src/utils/redis"
)

type Handler struct {
	Controllers *controllers.Controllers
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	redisHandler, err := redis_utils.NewRedisHandler(cfg)
	if err != nil {
		return nil, err
	}

	recordRepo := repositories.NewRecordRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	syncLogRepo := repositories.NewSyncLogRepository(db)

	remoteClient := remotestore.NewClient(cfg)
	marketClient := marketdata.NewClient(cfg)

	quoteService := services.NewQuoteService(marketClient, redisHandler,
		time.Duration(cfg.Cache.QuoteTTLSeconds)*time.Second)
	portfolioService := services.NewPortfolioService(transactionRepo, holdingRepo, quoteService, redisHandler,
		time.Duration(cfg.Cache.HoldingsTTLSeconds)*time.Second)
	reportService := services.NewReportService(portfolioService)
	syncService := services.NewSyncService(recordRepo, syncLogRepo, remoteClient)

	return &Handler{
		Controllers: controllers.NewControllers(
			controllers.NewRecordsController(recordRepo),
			controllers.NewSyncController(syncService),
			controllers.NewPortfolioController(portfolioService, reportService),
			controllers.NewQuotesController(quoteService),
		),
	}, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}
