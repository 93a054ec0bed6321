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

const prefixDocumentRequest = "DOC"

// DocumentRequestService handles secretariat document request workflows.
type DocumentRequestService struct {
	col       *registry.Collection[models.DocumentRequest]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewDocumentRequestService constructs the service.
func NewDocumentRequestService(col *registry.Collection[models.DocumentRequest], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *DocumentRequestService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentRequestService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// CreateDocumentRequest describes the create payload.
type CreateDocumentRequest struct {
	StudentName  string `json:"studentName" validate:"required"`
	DocumentType string `json:"documentType" validate:"required"`
	Contact      string `json:"contact" validate:"required"`
}

// UpdateDocumentStatusRequest describes a status transition, optionally
// annotated with a staff comment.
type UpdateDocumentStatusRequest struct {
	Status  models.DocumentStatus `json:"status" validate:"required,oneof=pendiente en_proceso completado rechazado"`
	Comment string                `json:"comment"`
	Author  string                `json:"author"`
}

// Create registers a new document request with status pendiente.
func (s *DocumentRequestService) Create(ctx context.Context, req CreateDocumentRequest) (*models.DocumentRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	now := s.now().UTC()
	rec := &models.DocumentRequest{
		ID:           s.ids.NewID(prefixDocumentRequest),
		StudentName:  req.StudentName,
		DocumentType: req.DocumentType,
		Contact:      req.Contact,
		Status:       models.DocumentStatusPending,
		RequestDate:  now,
		LastUpdate:   now,
		Comments:     []models.Comment{},
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a document request by id.
func (s *DocumentRequestService) Get(ctx context.Context, id string) (*models.DocumentRequest, error) {
	return s.col.Get(id)
}

// List returns every document request in insertion order.
func (s *DocumentRequestService) List(ctx context.Context) ([]*models.DocumentRequest, error) {
	return s.col.All()
}

// FilterByStatus returns requests with the given status, insertion order
// preserved.
func (s *DocumentRequestService) FilterByStatus(ctx context.Context, status models.DocumentStatus) ([]*models.DocumentRequest, error) {
	return s.col.Filter(func(rec *models.DocumentRequest) bool { return rec.Status == status })
}

// UpdateStatus moves the request to a new status, stamping lastUpdate and
// appending a comment entry when one is provided.
func (s *DocumentRequestService) UpdateStatus(ctx context.Context, id string, req UpdateDocumentStatusRequest) (*models.DocumentRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, id, "status_updated", func(rec *models.DocumentRequest) error {
		now := s.now().UTC()
		rec.Status = req.Status
		rec.LastUpdate = now
		if req.Comment != "" {
			rec.Comments = append(rec.Comments, models.Comment{
				Text:   req.Comment,
				Date:   now,
				Author: req.Author,
			})
		}
		return nil
	})
}
