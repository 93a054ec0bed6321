package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iesanmartin/portal-core/internal/models"
	"github.com/iesanmartin/portal-core/internal/registry"
)

// LibraryService exposes the seeded book catalog. Display concerns live in
// the UI collaborator; only availability is mutable here.
type LibraryService struct {
	col       *registry.Collection[models.LibraryBook]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLibraryService constructs the service.
func NewLibraryService(col *registry.Collection[models.LibraryBook], validate *validator.Validate, logger *zap.Logger) *LibraryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LibraryService{col: col, validator: validate, logger: logger}
}

// Catalog returns the full inventory in catalog order.
func (s *LibraryService) Catalog(ctx context.Context) ([]*models.LibraryBook, error) {
	return s.col.All()
}

// Get returns one title by its catalog code.
func (s *LibraryService) Get(ctx context.Context, code string) (*models.LibraryBook, error) {
	return s.col.Get(code)
}

// SetAvailability marks a title lent out or returned.
func (s *LibraryService) SetAvailability(ctx context.Context, code string, available bool) (*models.LibraryBook, error) {
	return s.col.Update(ctx, code, "availability_updated", func(rec *models.LibraryBook) error {
		rec.Available = available
		return nil
	})
}
