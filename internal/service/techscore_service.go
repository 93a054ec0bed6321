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
)

// TechScoreService tracks work-based-learning progress per student and
// program. These records carry no minted id: the student plus program pair
// is the key.
type TechScoreService struct {
	col       *registry.Collection[models.TechScore]
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTechScoreService constructs the service.
func NewTechScoreService(col *registry.Collection[models.TechScore], validate *validator.Validate, logger *zap.Logger) *TechScoreService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TechScoreService{col: col, validator: validate, logger: logger, now: time.Now}
}

// EnrollTechScoreRequest opens a progress record.
type EnrollTechScoreRequest struct {
	StudentName string `json:"studentName" validate:"required"`
	Program     string `json:"program" validate:"required"`
}

// LogWBLHoursRequest appends one evidence entry.
type LogWBLHoursRequest struct {
	StudentName string  `json:"studentName" validate:"required"`
	Program     string  `json:"program" validate:"required"`
	Hours       float64 `json:"hours" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	EvidenceURL string  `json:"evidenceUrl"`
}

func scoreKey(studentName, program string) string {
	return studentName + "|" + program
}

// Enroll opens a record with status en_progreso. Enrolling the same student
// in the same program twice returns ErrConflict.
func (s *TechScoreService) Enroll(ctx context.Context, req EnrollTechScoreRequest) (*models.TechScore, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	if _, err := s.col.Get(scoreKey(req.StudentName, req.Program)); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student already enrolled in program")
	} else if !errors.Is(err, appErrors.ErrNotFound) {
		return nil, err
	}
	now := s.now().UTC()
	rec := &models.TechScore{
		StudentName:  req.StudentName,
		Program:      req.Program,
		HoursLogged:  0,
		Status:       models.TechScoreStatusInProgress,
		EnrolledDate: now,
		LastUpdate:   now,
		WBLLogs:      []models.WBLLog{},
	}
	if err := s.col.Append(ctx, rec, "created"); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the record for a student and program.
func (s *TechScoreService) Get(ctx context.Context, studentName, program string) (*models.TechScore, error) {
	return s.col.Get(scoreKey(studentName, program))
}

// List returns every record in insertion order.
func (s *TechScoreService) List(ctx context.Context) ([]*models.TechScore, error) {
	return s.col.All()
}

// LogHours appends an evidence entry and accumulates the hour total. Hours
// cannot be logged on a completed program.
func (s *TechScoreService) LogHours(ctx context.Context, req LogWBLHoursRequest) (*models.TechScore, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payload")
	}
	return s.col.Update(ctx, scoreKey(req.StudentName, req.Program), "hours_logged", func(rec *models.TechScore) error {
		if rec.Status == models.TechScoreStatusCompleted {
			return appErrors.Clone(appErrors.ErrConflict, "program already completed")
		}
		now := s.now().UTC()
		rec.WBLLogs = append(rec.WBLLogs, models.WBLLog{
			StudentName: req.StudentName,
			Hours:       req.Hours,
			Description: req.Description,
			Date:        now,
			EvidenceURL: req.EvidenceURL,
		})
		rec.HoursLogged += req.Hours
		rec.LastUpdate = now
		return nil
	})
}

// MarkCompleted closes the record and stamps completedDate. Completing twice
// returns ErrConflict and changes nothing.
func (s *TechScoreService) MarkCompleted(ctx context.Context, studentName, program string) (*models.TechScore, error) {
	return s.col.Update(ctx, scoreKey(studentName, program), "completed", func(rec *models.TechScore) error {
		if rec.Status == models.TechScoreStatusCompleted {
			return appErrors.Clone(appErrors.ErrConflict, "program already completed")
		}
		now := s.now().UTC()
		rec.Status = models.TechScoreStatusCompleted
		rec.CompletedDate = &now
		rec.LastUpdate = now
		return nil
	})
}
