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

const prefixIncident = "INC"

// IncidentService records security office reports.
type IncidentService struct {
	col       *registry.Collection[models.SecurityIncident]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewIncidentService constructs the service.
func NewIncidentService(col *registry.Collection[models.SecurityIncident], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *IncidentService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IncidentService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// ReportIncidentRequest describes an occurrence.
type ReportIncidentRequest struct {
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	ReportedBy  string `json:"reportedBy" validate:"required"`
}

// UpdateIncidentStatusRequest moves a report through investigation.
type UpdateIncidentStatusRequest struct {
	Status models.IncidentStatus `json:"status" validate:"required,oneof=reportado en_investigacion resuelto"`
}

// Report registers an incident with status reportado.
func (s *IncidentService) Report(ctx context.Context, req ReportIncidentRequest) (*models.SecurityIncident, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	now := s.now().UTC()
	rec := &models.SecurityIncident{
		ID:          s.ids.NewID(prefixIncident),
		Location:    req.Location,
		Description: req.Description,
		ReportedBy:  req.ReportedBy,
		Status:      models.IncidentStatusReported,
		ReportDate:  now,
		LastUpdate:  now,
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns an incident by id.
func (s *IncidentService) Get(ctx context.Context, id string) (*models.SecurityIncident, error) {
	return s.col.Get(id)
}

// List returns every incident in insertion order.
func (s *IncidentService) List(ctx context.Context) ([]*models.SecurityIncident, error) {
	return s.col.All()
}

// UpdateStatus moves the incident to a new investigation state.
func (s *IncidentService) UpdateStatus(ctx context.Context, id string, req UpdateIncidentStatusRequest) (*models.SecurityIncident, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, id, "status_updated", func(rec *models.SecurityIncident) error {
		rec.Status = req.Status
		rec.LastUpdate = s.now().UTC()
		return nil
	})
}
