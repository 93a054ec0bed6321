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

const prefixParentMessage = "MSG"

// ParentMessageService handles the family contact inbox.
type ParentMessageService struct {
	col       *registry.Collection[models.ParentMessage]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewParentMessageService constructs the service.
func NewParentMessageService(col *registry.Collection[models.ParentMessage], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *ParentMessageService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParentMessageService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// SendParentMessageRequest describes a contact form submission.
type SendParentMessageRequest struct {
	ParentName  string `json:"parentName" validate:"required"`
	StudentName string `json:"studentName" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Body        string `json:"body" validate:"required"`
}

// Send registers a message with status nuevo.
func (s *ParentMessageService) Send(ctx context.Context, req SendParentMessageRequest) (*models.ParentMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	now := s.now().UTC()
	rec := &models.ParentMessage{
		ID:          s.ids.NewID(prefixParentMessage),
		ParentName:  req.ParentName,
		StudentName: req.StudentName,
		Subject:     req.Subject,
		Body:        req.Body,
		Status:      models.MessageStatusNew,
		SentDate:    now,
		LastUpdate:  now,
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a message by id.
func (s *ParentMessageService) Get(ctx context.Context, id string) (*models.ParentMessage, error) {
	return s.col.Get(id)
}

// List returns every message in insertion order.
func (s *ParentMessageService) List(ctx context.Context) ([]*models.ParentMessage, error) {
	return s.col.All()
}

// MarkRead moves a message from nuevo to leido. Messages already read or
// answered are returned unchanged so the status never moves backwards.
func (s *ParentMessageService) MarkRead(ctx context.Context, id string) (*models.ParentMessage, error) {
	rec, err := s.col.Get(id)
	if err != nil {
		return nil, err
	}
	if rec.Status != models.MessageStatusNew {
		return rec, nil
	}
	return s.col.Update(ctx, id, "read", func(rec *models.ParentMessage) error {
		rec.Status = models.MessageStatusRead
		rec.LastUpdate = s.now().UTC()
		return nil
	})
}

// MarkAnswered records that staff replied to the family.
func (s *ParentMessageService) MarkAnswered(ctx context.Context, id string) (*models.ParentMessage, error) {
	return s.col.Update(ctx, id, "answered", func(rec *models.ParentMessage) error {
		rec.Status = models.MessageStatusAnswered
		rec.LastUpdate = s.now().UTC()
		return nil
	})
}
