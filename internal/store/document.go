package store

import (
	"github.com/iesanmartin/portal-core/internal/models"
)

// Config is the institutional block embedded in the document.
type Config struct {
	SchoolName   string `json:"schoolName"`
	AcademicYear int    `json:"academicYear"`
}

// Document is the single serialized object holding every collection. One
// document exists per client context; every mutation rewrites it whole.
type Document struct {
	DocumentRequests       []*models.DocumentRequest       `json:"documentRequests"`
	Enrollments            []*models.Enrollment            `json:"enrollments"`
	NurseVisits            []*models.NurseVisit            `json:"nurseVisits"`
	CounselingAppointments []*models.CounselingAppointment `json:"counselingAppointments"`
	EarlyAlerts            []*models.EarlyAlert            `json:"earlyAlerts"`
	SupportTickets         []*models.SupportTicket         `json:"supportTickets"`
	Reservations           []*models.Reservation           `json:"reservations"`
	ParentMessages         []*models.ParentMessage         `json:"parentMessages"`
	VisitorLogs            []*models.VisitorLog            `json:"visitorLogs"`
	SecurityIncidents      []*models.SecurityIncident      `json:"securityIncidents"`
	TechScores             []*models.TechScore             `json:"techScores"`
	News                   []*models.NewsItem              `json:"news"`
	LibraryInventory       []*models.LibraryBook           `json:"libraryInventory"`

	Config        Config `json:"config"`
	FirstGreeting bool   `json:"firstGreeting"`
}

func newDocument(cfg Config) *Document {
	doc := &Document{
		Config:           cfg,
		FirstGreeting:    true,
		LibraryInventory: defaultCatalog(),
	}
	doc.normalize()
	return doc
}

// normalize initializes any collection missing from an older persisted
// document. Schema evolution is additive: unknown keys are dropped on load,
// absent ones become empty collections.
func (d *Document) normalize() {
	if d.DocumentRequests == nil {
		d.DocumentRequests = []*models.DocumentRequest{}
	}
	if d.Enrollments == nil {
		d.Enrollments = []*models.Enrollment{}
	}
	if d.NurseVisits == nil {
		d.NurseVisits = []*models.NurseVisit{}
	}
	if d.CounselingAppointments == nil {
		d.CounselingAppointments = []*models.CounselingAppointment{}
	}
	if d.EarlyAlerts == nil {
		d.EarlyAlerts = []*models.EarlyAlert{}
	}
	if d.SupportTickets == nil {
		d.SupportTickets = []*models.SupportTicket{}
	}
	if d.Reservations == nil {
		d.Reservations = []*models.Reservation{}
	}
	if d.ParentMessages == nil {
		d.ParentMessages = []*models.ParentMessage{}
	}
	if d.VisitorLogs == nil {
		d.VisitorLogs = []*models.VisitorLog{}
	}
	if d.SecurityIncidents == nil {
		d.SecurityIncidents = []*models.SecurityIncident{}
	}
	if d.TechScores == nil {
		d.TechScores = []*models.TechScore{}
	}
	if d.News == nil {
		d.News = []*models.NewsItem{}
	}
	if d.LibraryInventory == nil {
		d.LibraryInventory = defaultCatalog()
	}
}
