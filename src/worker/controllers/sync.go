package controllers

import (
	"context"

	"tracker/src/scheduler"
	"tracker/src/schemas"
	"tracker/src/utils"
)

// SyncAll runs a reconciliation pass for every configured client. A failing
// client does not stop the pass; its error is logged and the rest proceed.
func (c *Controller) SyncAll(ctx context.Context) ([]*schemas.SyncResult, error) {
	logger := utils.LoggerFromContext(ctx)

	results := make([]*schemas.SyncResult, 0, len(c.ClientIDs))
	for _, clientID := range c.ClientIDs {
		result, err := c.SyncService.SyncClient(ctx, c.Token, clientID, "")
		if err != nil {
			logger.WithField("clientID", clientID).Errorf("sync failed: %v", err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *Controller) SyncClient(ctx context.Context, clientID string) (*schemas.SyncResult, error) {
	return c.SyncService.SyncClient(ctx, c.Token, clientID, "")
}

// SchedulePeriodicSync registers (or replaces) the cron task that runs
// SyncAll on the given spec.
func (c *Controller) SchedulePeriodicSync(ctx context.Context, cronSpec string) error {
	logger := utils.LoggerFromContext(ctx)

	c.SchedulerMutex.Lock()
	if existingTask, exists := c.Schedulers["sync-all"]; exists {
		existingTask.Cancel()
		delete(c.Schedulers, "sync-all")
	}
	c.SchedulerMutex.Unlock()

	newTask, err := scheduler.NewScheduledTask(cronSpec, func() {
		if _, err := c.SyncAll(ctx); err != nil {
			logger.Errorf("scheduled sync pass failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.SchedulerMutex.Lock()
	c.Schedulers["sync-all"] = newTask
	c.SchedulerMutex.Unlock()

	return nil
}
