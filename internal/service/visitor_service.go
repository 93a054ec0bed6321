package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iesanmartin/portal-core/internal/models"
	"github.com/iesanmartin/portal-core/internal/registry"
	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
	"github.com/iesanmartin/portal-core/pkg/idgen"
)

const prefixVisitor = "VISIT"

// VisitorService keeps the gate visitor book.
type VisitorService struct {
	col       *registry.Collection[models.VisitorLog]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewVisitorService constructs the service.
func NewVisitorService(col *registry.Collection[models.VisitorLog], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *VisitorService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitorService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// CheckInVisitorRequest registers a visitor at the gate.
type CheckInVisitorRequest struct {
	VisitorName string `json:"visitorName" validate:"required"`
	DNI         string `json:"dni" validate:"required"`
	Purpose     string `json:"purpose" validate:"required"`
	Area        string `json:"area" validate:"required"`
}

// CheckIn opens a visit with status active.
func (s *VisitorService) CheckIn(ctx context.Context, req CheckInVisitorRequest) (*models.VisitorLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	rec := &models.VisitorLog{
		ID:          s.ids.NewID(prefixVisitor),
		VisitorName: req.VisitorName,
		DNI:         req.DNI,
		Purpose:     req.Purpose,
		Area:        req.Area,
		Status:      models.VisitorStatusActive,
		CheckIn:     s.now().UTC(),
	}
	if err := s.col.Append(ctx, rec, "checked_in"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a visit by id.
func (s *VisitorService) Get(ctx context.Context, id string) (*models.VisitorLog, error) {
	return s.col.Get(id)
}

// List returns every visit in insertion order.
func (s *VisitorService) List(ctx context.Context) ([]*models.VisitorLog, error) {
	return s.col.All()
}

// ActiveVisitors returns visits still inside the premises.
func (s *VisitorService) ActiveVisitors(ctx context.Context) ([]*models.VisitorLog, error) {
	return s.col.Filter(func(rec *models.VisitorLog) bool { return rec.Status == models.VisitorStatusActive })
}

// Checkout closes the visit and stamps checkOut. An unknown id or a visit
// already completed is a silent no-op: nothing is written and no event is
// emitted.
func (s *VisitorService) Checkout(ctx context.Context, id string) error {
	_, err := s.col.Update(ctx, id, "checked_out", func(rec *models.VisitorLog) error {
		if rec.Status == models.VisitorStatusCompleted {
			return appErrors.Clone(appErrors.ErrConflict, "visit already completed")
		}
		now := s.now().UTC()
		rec.Status = models.VisitorStatusCompleted
		rec.CheckOut = &now
		return nil
	})
	if err != nil && !errors.Is(err, appErrors.ErrNotFound) && !errors.Is(err, appErrors.ErrConflict) {
		return err
	}
	return nil
}
