package portal

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iesanmartin/portal-core/internal/assistant"
	"github.com/iesanmartin/portal-core/internal/notify"
	"github.com/iesanmartin/portal-core/internal/registry"
	"github.com/iesanmartin/portal-core/internal/service"
	"github.com/iesanmartin/portal-core/internal/store"
	"github.com/iesanmartin/portal-core/pkg/config"
	"github.com/iesanmartin/portal-core/pkg/idgen"
	appLogger "github.com/iesanmartin/portal-core/pkg/logger"
	"github.com/iesanmartin/portal-core/pkg/storage"
)

// Portal is the composition root of the module. It owns the single document
// store and hands out one service per collection plus the conversational
// assistant. Construct it once at startup, call Open, then pass the services
// to whatever delivery layer embeds this module.
type Portal struct {
	Store    *store.Store
	Notifier *notify.Notifier
	IDs      *idgen.Generator

	DocumentRequests *service.DocumentRequestService
	Enrollments      *service.EnrollmentService
	NurseVisits      *service.HealthService
	Counseling       *service.CounselingService
	EarlyAlerts      *service.EarlyAlertService
	SupportTickets   *service.TicketService
	Reservations     *service.ReservationService
	ParentMessages   *service.ParentMessageService
	VisitorLogs      *service.VisitorService
	Incidents        *service.IncidentService
	TechScores       *service.TechScoreService
	News             *service.NewsService
	Library          *service.LibraryService
	Exports          *service.ExportService
	Assistant        *assistant.Engine
}

// New builds a Portal persisting to the file path named by the config.
func New(cfg *config.Config, logger *zap.Logger) (*Portal, error) {
	return NewWithBackend(store.NewFileBackend(cfg.Store.Path), cfg, logger)
}

// NewWithBackend builds a Portal over an explicit persistence backend.
// Tests use it with an in-memory backend. A nil logger gets replaced with
// one built from the config's log block.
func NewWithBackend(backend store.Backend, cfg *config.Config, logger *zap.Logger) (*Portal, error) {
	if logger == nil {
		var err error
		logger, err = appLogger.New(cfg)
		if err != nil {
			return nil, err
		}
	}

	st := store.New(backend, store.Config{
		SchoolName:   cfg.School.Name,
		AcademicYear: cfg.School.AcademicYear,
	}, logger)
	notifier := notify.New(logger)
	ids := idgen.New()
	validate := validator.New()

	exportFiles, err := storage.NewLocalStorage(cfg.Exports.Dir)
	if err != nil {
		return nil, err
	}

	documents := service.NewDocumentRequestService(registry.DocumentRequests(st, notifier), ids, validate, logger)
	enrollments := service.NewEnrollmentService(registry.Enrollments(st, notifier), ids, validate, logger)
	visitors := service.NewVisitorService(registry.VisitorLogs(st, notifier), ids, validate, logger)
	tickets := service.NewTicketService(registry.SupportTickets(st, notifier), ids, validate, logger)

	return &Portal{
		Store:    st,
		Notifier: notifier,
		IDs:      ids,

		DocumentRequests: documents,
		Enrollments:      enrollments,
		NurseVisits:      service.NewHealthService(registry.NurseVisits(st, notifier), ids, validate, logger),
		Counseling:       service.NewCounselingService(registry.CounselingAppointments(st, notifier), ids, validate, logger),
		EarlyAlerts:      service.NewEarlyAlertService(registry.EarlyAlerts(st, notifier), ids, validate, logger),
		SupportTickets:   tickets,
		Reservations:     service.NewReservationService(registry.Reservations(st, notifier), ids, validate, logger),
		ParentMessages:   service.NewParentMessageService(registry.ParentMessages(st, notifier), ids, validate, logger),
		VisitorLogs:      visitors,
		Incidents:        service.NewIncidentService(registry.SecurityIncidents(st, notifier), ids, validate, logger),
		TechScores:       service.NewTechScoreService(registry.TechScores(st, notifier), validate, logger),
		News:             service.NewNewsService(registry.News(st, notifier), ids, validate, logger),
		Library:          service.NewLibraryService(registry.LibraryInventory(st, notifier), validate, logger),
		Exports: service.NewExportService(documents, enrollments, visitors, tickets, exportFiles, service.ExportConfig{
			SchoolName:   cfg.School.Name,
			AcademicYear: cfg.School.AcademicYear,
		}, logger, nil, nil),
		Assistant: assistant.New(st, logger),
	}, nil
}

// Open loads the persisted document, seeding a fresh one on first run.
func (p *Portal) Open(ctx context.Context) error {
	return p.Store.Open(ctx)
}
