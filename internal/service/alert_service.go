package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iesanmartin/portal-core/internal/models"
	"github.com/iesanmartin/portal-core/internal/registry"
	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
	"github.com/iesanmartin/portal-core/pkg/idgen"
)

const prefixAlert = "ALT"

// EarlyAlertService tracks students needing follow-up.
type EarlyAlertService struct {
	col       *registry.Collection[models.EarlyAlert]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewEarlyAlertService constructs the service.
func NewEarlyAlertService(col *registry.Collection[models.EarlyAlert], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *EarlyAlertService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EarlyAlertService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// ReportAlertRequest raises an alert for a student.
type ReportAlertRequest struct {
	StudentName string `json:"studentName" validate:"required"`
	Grade       string `json:"grade" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	ReportedBy  string `json:"reportedBy" validate:"required"`
}

// UpdateAlertStatusRequest moves an alert through follow-up.
type UpdateAlertStatusRequest struct {
	Status models.AlertStatus `json:"status" validate:"required,oneof=activa en_seguimiento cerrada"`
}

// Report registers an alert with status activa.
func (s *EarlyAlertService) Report(ctx context.Context, req ReportAlertRequest) (*models.EarlyAlert, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	now := s.now().UTC()
	rec := &models.EarlyAlert{
		ID:          s.ids.NewID(prefixAlert),
		StudentName: req.StudentName,
		Grade:       req.Grade,
		Category:    req.Category,
		Description: req.Description,
		ReportedBy:  req.ReportedBy,
		Status:      models.AlertStatusActive,
		ReportDate:  now,
		LastUpdate:  now,
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns an alert by id.
func (s *EarlyAlertService) Get(ctx context.Context, id string) (*models.EarlyAlert, error) {
	return s.col.Get(id)
}

// List returns every alert in insertion order.
func (s *EarlyAlertService) List(ctx context.Context) ([]*models.EarlyAlert, error) {
	return s.col.All()
}

// UpdateStatus moves the alert to a new follow-up state.
func (s *EarlyAlertService) UpdateStatus(ctx context.Context, id string, req UpdateAlertStatusRequest) (*models.EarlyAlert, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, id, "status_updated", func(rec *models.EarlyAlert) error {
		rec.Status = req.Status
		rec.LastUpdate = s.now().UTC()
		return nil
	})
}
