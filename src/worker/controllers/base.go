package controllers

import (
	"sync"

	"tracker/src/scheduler"
	"tracker/src/services"
)

type Controller struct {
	SyncService services.SyncServiceI
	ClientIDs   []string
	Token       string

	SchedulerMutex sync.Mutex
	Schedulers     map[string]*scheduler.ScheduledTask
}

func NewController(syncService services.SyncServiceI, clientIDs []string, token string) *Controller {
	return &Controller{
		SyncService: syncService,
		ClientIDs:   clientIDs,
		Token:       token,
		Schedulers:  map[string]*scheduler.ScheduledTask{},
	}
}

func (c *Controller) GetSchedulers() map[string]*scheduler.ScheduledTask {
	return c.Schedulers
}
