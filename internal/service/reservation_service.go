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

const prefixReservation = "RES"

// ReservationService books shared school spaces.
type ReservationService struct {
	col       *registry.Collection[models.Reservation]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewReservationService constructs the service.
func NewReservationService(col *registry.Collection[models.Reservation], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *ReservationService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReservationService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// RequestReservationRequest describes a space booking.
type RequestReservationRequest struct {
	Space       string    `json:"space" validate:"required"`
	RequestedBy string    `json:"requestedBy" validate:"required"`
	EventDate   time.Time `json:"eventDate" validate:"required"`
	Purpose     string    `json:"purpose" validate:"required"`
}

// UpdateReservationStatusRequest confirms or cancels a booking.
type UpdateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" validate:"required,oneof=pendiente confirmada cancelada"`
}

// Request registers a booking with status pendiente.
func (s *ReservationService) Request(ctx context.Context, req RequestReservationRequest) (*models.Reservation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	now := s.now().UTC()
	rec := &models.Reservation{
		ID:          s.ids.NewID(prefixReservation),
		Space:       req.Space,
		RequestedBy: req.RequestedBy,
		EventDate:   req.EventDate,
		Purpose:     req.Purpose,
		Status:      models.ReservationStatusPending,
		RequestDate: now,
		LastUpdate:  now,
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a booking by id.
func (s *ReservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	return s.col.Get(id)
}

// List returns every booking in insertion order.
func (s *ReservationService) List(ctx context.Context) ([]*models.Reservation, error) {
	return s.col.All()
}

// UpdateStatus confirms or cancels the booking.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, req UpdateReservationStatusRequest) (*models.Reservation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, id, "status_updated", func(rec *models.Reservation) error {
		rec.Status = req.Status
		rec.LastUpdate = s.now().UTC()
		return nil
	})
}
