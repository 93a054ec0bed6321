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

const prefixCounseling = "CIT"

// CounselingService schedules psychology department appointments.
type CounselingService struct {
	col       *registry.Collection[models.CounselingAppointment]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewCounselingService constructs the service.
func NewCounselingService(col *registry.Collection[models.CounselingAppointment], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *CounselingService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CounselingService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// ScheduleCounselingRequest describes an appointment request.
type ScheduleCounselingRequest struct {
	StudentName   string    `json:"studentName" validate:"required"`
	Grade         string    `json:"grade" validate:"required"`
	Topic         string    `json:"topic" validate:"required"`
	ScheduledDate time.Time `json:"scheduledDate" validate:"required"`
}

// UpdateCounselingStatusRequest closes or cancels an appointment.
type UpdateCounselingStatusRequest struct {
	Status models.CounselingStatus `json:"status" validate:"required,oneof=programada atendida cancelada"`
}

// Schedule books an appointment with status programada.
func (s *CounselingService) Schedule(ctx context.Context, req ScheduleCounselingRequest) (*models.CounselingAppointment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	now := s.now().UTC()
	rec := &models.CounselingAppointment{
		ID:            s.ids.NewID(prefixCounseling),
		StudentName:   req.StudentName,
		Grade:         req.Grade,
		Topic:         req.Topic,
		ScheduledDate: req.ScheduledDate,
		Status:        models.CounselingStatusScheduled,
		RequestDate:   now,
		LastUpdate:    now,
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns an appointment by id.
func (s *CounselingService) Get(ctx context.Context, id string) (*models.CounselingAppointment, error) {
	return s.col.Get(id)
}

// List returns every appointment in insertion order.
func (s *CounselingService) List(ctx context.Context) ([]*models.CounselingAppointment, error) {
	return s.col.All()
}

// UpdateStatus marks an appointment attended or cancelled.
func (s *CounselingService) UpdateStatus(ctx context.Context, id string, req UpdateCounselingStatusRequest) (*models.CounselingAppointment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, id, "status_updated", func(rec *models.CounselingAppointment) error {
		rec.Status = req.Status
		rec.LastUpdate = s.now().UTC()
		return nil
	})
}
