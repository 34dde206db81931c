package controllers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"
)

type RecordsControllerI interface {
	GetRecords(ctx context.Context, clientID, kind string) ([]models.Record, error)
	CreateRecord(ctx context.Context, req *schemas.CreateRecordRequest) (*models.Record, error)
	UpdateRecord(ctx context.Context, id string, req *schemas.CreateRecordRequest) (*models.Record, error)
	DeleteRecord(ctx context.Context, id string) error
}

type RecordsController struct {
	recordRepository repositories.RecordRepository
}

func NewRecordsController(recordRepository repositories.RecordRepository) *RecordsController {
	return &RecordsController{recordRepository: recordRepository}
}

func (c *RecordsController) GetRecords(ctx context.Context, clientID, kind string) ([]models.Record, error) {
	if clientID == "" {
		return nil, utils.BadRequest("clientId query parameter is required")
	}
	return c.recordRepository.GetByClientID(ctx, clientID, kind)
}

func (c *RecordsController) CreateRecord(ctx context.Context, req *schemas.CreateRecordRequest) (*models.Record, error) {
	if req.ClientID == "" || req.Kind == "" {
		return nil, utils.BadRequest("clientId and kind are required")
	}

	rec := &models.Record{
		ID:        req.ID,
		ClientID:  req.ClientID,
		Kind:      req.Kind,
		Payload:   req.Payload,
		UpdatedAt: req.UpdatedAt,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.UpdatedAt == "" {
		rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := c.recordRepository.Upsert(ctx, rec, nil); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *RecordsController) UpdateRecord(ctx context.Context, id string, req *schemas.CreateRecordRequest) (*models.Record, error) {
	existing, err := c.recordRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFound("record " + id + " not found")
	}

	rec := &models.Record{
		ID:        id,
		ClientID:  existing.ClientID,
		Kind:      existing.Kind,
		Payload:   req.Payload,
		UpdatedAt: req.UpdatedAt,
	}
	if rec.UpdatedAt == "" {
		rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := c.recordRepository.Upsert(ctx, rec, nil); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *RecordsController) DeleteRecord(ctx context.Context, id string) error {
	existing, err := c.recordRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.NotFound("record " + id + " not found")
	}
	return c.recordRepository.Delete(ctx, id)
}
