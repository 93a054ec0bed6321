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

const prefixTicket = "TICK"

// TicketService handles platform support tickets.
type TicketService struct {
	col       *registry.Collection[models.SupportTicket]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTicketService constructs the service.
func NewTicketService(col *registry.Collection[models.SupportTicket], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *TicketService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// OpenTicketRequest describes a new support ticket.
type OpenTicketRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	Requester   string `json:"requester" validate:"required"`
}

// AddTicketCommentRequest appends a follow-up note without changing status.
type AddTicketCommentRequest struct {
	Text   string `json:"text" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// Open registers a ticket with status abierto.
func (s *TicketService) Open(ctx context.Context, req OpenTicketRequest) (*models.SupportTicket, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	rec := &models.SupportTicket{
		ID:          s.ids.NewID(prefixTicket),
		Subject:     req.Subject,
		Description: req.Description,
		Requester:   req.Requester,
		Status:      models.TicketStatusOpen,
		DateCreated: s.now().UTC(),
		Comments:    []models.Comment{},
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a ticket by id.
func (s *TicketService) Get(ctx context.Context, id string) (*models.SupportTicket, error) {
	return s.col.Get(id)
}

// List returns every ticket in insertion order.
func (s *TicketService) List(ctx context.Context) ([]*models.SupportTicket, error) {
	return s.col.All()
}

// FilterByStatus returns tickets with the given status, insertion order
// preserved.
func (s *TicketService) FilterByStatus(ctx context.Context, status models.TicketStatus) ([]*models.SupportTicket, error) {
	return s.col.Filter(func(rec *models.SupportTicket) bool { return rec.Status == status })
}

// AddComment appends a note to the ticket. Status is untouched, so staff can
// keep annotating a resolved ticket.
func (s *TicketService) AddComment(ctx context.Context, id string, req AddTicketCommentRequest) (*models.SupportTicket, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, id, "comment_added", func(rec *models.SupportTicket) error {
		rec.Comments = append(rec.Comments, models.Comment{
			Text:   req.Text,
			Date:   s.now().UTC(),
			Author: req.Author,
		})
		return nil
	})
}

// Resolve closes the ticket and stamps resolvedDate. Resolving an already
// resolved ticket returns ErrConflict and changes nothing.
func (s *TicketService) Resolve(ctx context.Context, id string) (*models.SupportTicket, error) {
	return s.col.Update(ctx, id, "resolved", func(rec *models.SupportTicket) error {
		if rec.Status == models.TicketStatusResolved {
			return appErrors.Clone(appErrors.ErrConflict, "ticket already resolved")
		}
		now := s.now().UTC()
		rec.Status = models.TicketStatusResolved
		rec.ResolvedDate = &now
		return nil
	})
}
