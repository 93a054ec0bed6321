package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iesanmartin/portal-core/internal/models"
	appErrors "github.com/iesanmartin/portal-core/pkg/errors"
	"github.com/iesanmartin/portal-core/pkg/export"
)

// ExportKind selects which collection a CSV export covers.
type ExportKind string

const (
	ExportDocumentRequests ExportKind = "solicitudes_documentos"
	ExportEnrollments      ExportKind = "postulaciones"
	ExportVisitorLogs      ExportKind = "registro_visitas"
	ExportSupportTickets   ExportKind = "tickets_soporte"
)

type documentRequestReader interface {
	List(ctx context.Context) ([]*models.DocumentRequest, error)
	Get(ctx context.Context, id string) (*models.DocumentRequest, error)
}

type enrollmentReader interface {
	List(ctx context.Context) ([]*models.Enrollment, error)
}

type visitorReader interface {
	List(ctx context.Context) ([]*models.VisitorLog, error)
	Get(ctx context.Context, id string) (*models.VisitorLog, error)
}

type ticketReader interface {
	List(ctx context.Context) ([]*models.SupportTicket, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, subtitle string) ([]byte, error)
	RenderReceipt(title, subtitle string, fields []export.Field) ([]byte, error)
}

// ExportConfig carries the heading shown on rendered documents.
type ExportConfig struct {
	SchoolName   string
	AcademicYear int
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	Filename    string
	GeneratedAt time.Time
}

// ExportService renders collection dumps and printable receipts for the
// school office.
type ExportService struct {
	documents   documentRequestReader
	enrollments enrollmentReader
	visitors    visitorReader
	tickets     ticketReader
	storage     fileStorage
	csv         csvRenderer
	pdf         pdfRenderer
	logger      *zap.Logger
	cfg         ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(
	documents documentRequestReader,
	enrollments enrollmentReader,
	visitors visitorReader,
	tickets ticketReader,
	storage fileStorage,
	cfg ExportConfig,
	logger *zap.Logger,
	csv csvRenderer,
	pdf pdfRenderer,
) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		documents:   documents,
		enrollments: enrollments,
		visitors:    visitors,
		tickets:     tickets,
		storage:     storage,
		csv:         csv,
		pdf:         pdf,
		logger:      logger,
		cfg:         cfg,
	}
}

// GenerateCSV dumps the selected collection and stores the rendered file.
func (s *ExportService) GenerateCSV(ctx context.Context, kind ExportKind) (*ExportResult, error) {
	dataset, err := s.buildDataset(ctx, kind)
	if err != nil {
		return nil, err
	}
	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "render csv export")
	}
	return s.store(fmt.Sprintf("%s_%s.csv", kind, s.stamp()), payload)
}

// DocumentReceipt renders a printable constancia for one document request.
func (s *ExportService) DocumentReceipt(ctx context.Context, id string) (*ExportResult, error) {
	rec, err := s.documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	fields := []export.Field{
		{Label: "Solicitud N°", Value: rec.ID},
		{Label: "Alumno", Value: rec.StudentName},
		{Label: "Documento", Value: rec.DocumentType},
		{Label: "Contacto", Value: rec.Contact},
		{Label: "Estado", Value: string(rec.Status)},
		{Label: "Fecha de solicitud", Value: formatExportTime(rec.RequestDate)},
		{Label: "Última actualización", Value: formatExportTime(rec.LastUpdate)},
	}
	payload, err := s.pdf.RenderReceipt("Constancia de trámite", s.subtitle(), fields)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "render document receipt")
	}
	return s.store(fmt.Sprintf("constancia_%s.pdf", rec.ID), payload)
}

// VisitorBadge renders a printable gate pass for one visit.
func (s *ExportService) VisitorBadge(ctx context.Context, id string) (*ExportResult, error) {
	rec, err := s.visitors.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	fields := []export.Field{
		{Label: "Pase N°", Value: rec.ID},
		{Label: "Visitante", Value: rec.VisitorName},
		{Label: "DNI", Value: rec.DNI},
		{Label: "Motivo", Value: rec.Purpose},
		{Label: "Área", Value: rec.Area},
		{Label: "Ingreso", Value: formatExportTime(rec.CheckIn)},
	}
	payload, err := s.pdf.RenderReceipt("Pase de visitante", s.subtitle(), fields)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "render visitor badge")
	}
	return s.store(fmt.Sprintf("pase_%s.pdf", rec.ID), payload)
}

func (s *ExportService) buildDataset(ctx context.Context, kind ExportKind) (export.Dataset, error) {
	switch kind {
	case ExportDocumentRequests:
		return s.buildDocumentRequestDataset(ctx)
	case ExportEnrollments:
		return s.buildEnrollmentDataset(ctx)
	case ExportVisitorLogs:
		return s.buildVisitorDataset(ctx)
	case ExportSupportTickets:
		return s.buildTicketDataset(ctx)
	default:
		return export.Dataset{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export kind %s", kind))
	}
}

func (s *ExportService) buildDocumentRequestDataset(ctx context.Context) (export.Dataset, error) {
	rows, err := s.documents.List(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	dataRows := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		dataRows = append(dataRows, map[string]string{
			"ID":            row.ID,
			"Alumno":        row.StudentName,
			"Documento":     row.DocumentType,
			"Contacto":      row.Contact,
			"Estado":        string(row.Status),
			"Solicitud":     formatExportTime(row.RequestDate),
			"Actualización": formatExportTime(row.LastUpdate),
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "Alumno", "Documento", "Contacto", "Estado", "Solicitud", "Actualización"},
		Rows:    dataRows,
	}, nil
}

func (s *ExportService) buildEnrollmentDataset(ctx context.Context) (export.Dataset, error) {
	rows, err := s.enrollments.List(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	dataRows := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		dataRows = append(dataRows, map[string]string{
			"ID":        row.ID,
			"Alumno":    row.StudentName,
			"Grado":     row.Grade,
			"Apoderado": row.GuardianName,
			"Contacto":  row.Contact,
			"Estado":    string(row.Status),
			"Solicitud": formatExportTime(row.RequestDate),
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "Alumno", "Grado", "Apoderado", "Contacto", "Estado", "Solicitud"},
		Rows:    dataRows,
	}, nil
}

func (s *ExportService) buildVisitorDataset(ctx context.Context) (export.Dataset, error) {
	rows, err := s.visitors.List(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	dataRows := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		checkOut := ""
		if row.CheckOut != nil {
			checkOut = formatExportTime(*row.CheckOut)
		}
		dataRows = append(dataRows, map[string]string{
			"ID":        row.ID,
			"Visitante": row.VisitorName,
			"DNI":       row.DNI,
			"Motivo":    row.Purpose,
			"Área":      row.Area,
			"Estado":    string(row.Status),
			"Ingreso":   formatExportTime(row.CheckIn),
			"Salida":    checkOut,
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "Visitante", "DNI", "Motivo", "Área", "Estado", "Ingreso", "Salida"},
		Rows:    dataRows,
	}, nil
}

func (s *ExportService) buildTicketDataset(ctx context.Context) (export.Dataset, error) {
	rows, err := s.tickets.List(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	dataRows := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		resolved := ""
		if row.ResolvedDate != nil {
			resolved = formatExportTime(*row.ResolvedDate)
		}
		dataRows = append(dataRows, map[string]string{
			"ID":          row.ID,
			"Asunto":      row.Subject,
			"Solicitante": row.Requester,
			"Estado":      string(row.Status),
			"Creado":      formatExportTime(row.DateCreated),
			"Resuelto":    resolved,
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "Asunto", "Solicitante", "Estado", "Creado", "Resuelto"},
		Rows:    dataRows,
	}, nil
}

func (s *ExportService) store(filename string, payload []byte) (*ExportResult, error) {
	stored, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, "store export file")
	}
	return &ExportResult{Filename: stored, GeneratedAt: time.Now().UTC()}, nil
}

func (s *ExportService) subtitle() string {
	if s.cfg.AcademicYear > 0 {
		return fmt.Sprintf("%s / Año escolar %d", s.cfg.SchoolName, s.cfg.AcademicYear)
	}
	return s.cfg.SchoolName
}

func (s *ExportService) stamp() string {
	return time.Now().UTC().Format("20060102_150405")
}

func formatExportTime(t time.Time) string {
	return t.UTC().Format("02/01/2006 15:04")
}
