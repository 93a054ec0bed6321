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

const prefixNurseVisit = "NUR"

// HealthService registers infirmary attentions.
type HealthService struct {
	col       *registry.Collection[models.NurseVisit]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewHealthService constructs the service.
func NewHealthService(col *registry.Collection[models.NurseVisit], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *HealthService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// RegisterNurseVisitRequest describes one infirmary attention.
type RegisterNurseVisitRequest struct {
	StudentName string `json:"studentName" validate:"required"`
	Grade       string `json:"grade" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	Treatment   string `json:"treatment"`
}

// UpdateNurseVisitStatusRequest closes out a visit.
type UpdateNurseVisitStatusRequest struct {
	Status models.NurseVisitStatus `json:"status" validate:"required,oneof=atendido derivado"`
}

// Register records a visit with status atendido.
func (s *HealthService) Register(ctx context.Context, req RegisterNurseVisitRequest) (*models.NurseVisit, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	now := s.now().UTC()
	rec := &models.NurseVisit{
		ID:          s.ids.NewID(prefixNurseVisit),
		StudentName: req.StudentName,
		Grade:       req.Grade,
		Reason:      req.Reason,
		Treatment:   req.Treatment,
		Status:      models.NurseVisitStatusAttended,
		VisitDate:   now,
		LastUpdate:  now,
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a visit by id.
func (s *HealthService) Get(ctx context.Context, id string) (*models.NurseVisit, error) {
	return s.col.Get(id)
}

// List returns every visit in insertion order.
func (s *HealthService) List(ctx context.Context) ([]*models.NurseVisit, error) {
	return s.col.All()
}

// UpdateStatus marks a visit as referred or re-attended.
func (s *HealthService) UpdateStatus(ctx context.Context, id string, req UpdateNurseVisitStatusRequest) (*models.NurseVisit, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, id, "status_updated", func(rec *models.NurseVisit) error {
		rec.Status = req.Status
		rec.LastUpdate = s.now().UTC()
		return nil
	})
}
