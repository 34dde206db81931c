package controllers

import (
	"context"

	"tracker/src/schemas"
	"tracker/src/services"
	"tracker/src/utils"
)

type SyncControllerI interface {
	SyncClient(ctx context.Context, token, clientID, kind string) (*schemas.SyncResult, error)
	GetSyncStatus(ctx context.Context, clientID string) (*schemas.SyncStatus, error)
}

type SyncController struct {
	syncService services.SyncServiceI
}

func NewSyncController(syncService services.SyncServiceI) *SyncController {
	return &SyncController{syncService: syncService}
}

func (c *SyncController) SyncClient(ctx context.Context, token, clientID, kind string) (*schemas.SyncResult, error) {
	if clientID == "" {
		return nil, utils.BadRequest("clientID is required")
	}
	return c.syncService.SyncClient(ctx, token, clientID, kind)
}

func (c *SyncController) GetSyncStatus(ctx context.Context, clientID string) (*schemas.SyncStatus, error) {
	if clientID == "" {
		return nil, utils.BadRequest("clientID is required")
	}
	return c.syncService.GetSyncStatus(ctx, clientID)
}
