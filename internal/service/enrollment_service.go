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

const prefixEnrollment = "MAT"

// EnrollmentService handles admission applications.
type EnrollmentService struct {
	col       *registry.Collection[models.Enrollment]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewEnrollmentService constructs the service.
func NewEnrollmentService(col *registry.Collection[models.Enrollment], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// CreateEnrollmentRequest describes an admission application.
type CreateEnrollmentRequest struct {
	StudentName  string `json:"studentName" validate:"required"`
	Grade        string `json:"grade" validate:"required"`
	GuardianName string `json:"guardianName" validate:"required"`
	Contact      string `json:"contact" validate:"required"`
}

// UpdateEnrollmentStatusRequest moves an application through review.
type UpdateEnrollmentStatusRequest struct {
	Status models.EnrollmentStatus `json:"status" validate:"required,oneof=pendiente en_evaluacion aprobada rechazada"`
}

// Create registers an application with status pendiente.
func (s *EnrollmentService) Create(ctx context.Context, req CreateEnrollmentRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	now := s.now().UTC()
	rec := &models.Enrollment{
		ID:           s.ids.NewID(prefixEnrollment),
		StudentName:  req.StudentName,
		Grade:        req.Grade,
		GuardianName: req.GuardianName,
		Contact:      req.Contact,
		Status:       models.EnrollmentStatusPending,
		RequestDate:  now,
		LastUpdate:   now,
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns an application by id.
func (s *EnrollmentService) Get(ctx context.Context, id string) (*models.Enrollment, error) {
	return s.col.Get(id)
}

// List returns every application in insertion order.
func (s *EnrollmentService) List(ctx context.Context) ([]*models.Enrollment, error) {
	return s.col.All()
}

// UpdateStatus moves the application to a new review state.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, id string, req UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, id, "status_updated", func(rec *models.Enrollment) error {
		rec.Status = req.Status
		rec.LastUpdate = s.now().UTC()
		return nil
	})
}
