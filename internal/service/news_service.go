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

const prefixNews = "NEWS"

// NewsService manages site announcements. News is the only collection whose
// records can be deleted.
type NewsService struct {
	col       *registry.Collection[models.NewsItem]
	ids       *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewNewsService constructs the service.
func NewNewsService(col *registry.Collection[models.NewsItem], ids *idgen.Generator, validate *validator.Validate, logger *zap.Logger) *NewsService {
	if ids == nil {
		ids = idgen.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsService{col: col, ids: ids, validator: validate, logger: logger, now: time.Now}
}

// AddNewsRequest describes a new announcement.
type AddNewsRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// Add publishes an announcement.
func (s *NewsService) Add(ctx context.Context, req AddNewsRequest) (*models.NewsItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	rec := &models.NewsItem{
		ID:    s.ids.NewID(prefixNews),
		Title: req.Title,
		Body:  req.Body,
		Date:  s.now().UTC(),
	}
	if err := s.col.Append(ctx, rec, "published"); err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns every announcement in insertion order.
func (s *NewsService) List(ctx context.Context) ([]*models.NewsItem, error) {
	return s.col.All()
}

// Latest returns the most recently published announcement.
func (s *NewsService) Latest(ctx context.Context) (*models.NewsItem, error) {
	items, err := s.col.All()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no news published")
	}
	return items[len(items)-1], nil
}

// Delete removes an announcement.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	return s.col.Remove(ctx, id, "deleted")
}
