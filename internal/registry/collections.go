package registry

import (
	"github.com/iesanmartin/portal-core/internal/models"
	"github.com/iesanmartin/portal-core/internal/notify"
	"github.com/iesanmartin/portal-core/internal/store"
)

// Collection names as persisted in the store document.
const (
	NameDocumentRequests       = "documentRequests"
	NameEnrollments            = "enrollments"
	NameNurseVisits            = "nurseVisits"
	NameCounselingAppointments = "counselingAppointments"
	NameEarlyAlerts            = "earlyAlerts"
	NameSupportTickets         = "supportTickets"
	NameReservations           = "reservations"
	NameParentMessages         = "parentMessages"
	NameVisitorLogs            = "visitorLogs"
	NameSecurityIncidents      = "securityIncidents"
	NameTechScores             = "techScores"
	NameNews                   = "news"
	NameLibraryInventory       = "libraryInventory"
)

func DocumentRequests(st *store.Store, n *notify.Notifier) *Collection[models.DocumentRequest] {
	return NewCollection(st, n, NameDocumentRequests,
		func(doc *store.Document) *[]*models.DocumentRequest { return &doc.DocumentRequests },
		func(rec *models.DocumentRequest) string { return rec.ID },
	)
}

func Enrollments(st *store.Store, n *notify.Notifier) *Collection[models.Enrollment] {
	return NewCollection(st, n, NameEnrollments,
		func(doc *store.Document) *[]*models.Enrollment { return &doc.Enrollments },
		func(rec *models.Enrollment) string { return rec.ID },
	)
}

func NurseVisits(st *store.Store, n *notify.Notifier) *Collection[models.NurseVisit] {
	return NewCollection(st, n, NameNurseVisits,
		func(doc *store.Document) *[]*models.NurseVisit { return &doc.NurseVisits },
		func(rec *models.NurseVisit) string { return rec.ID },
	)
}

func CounselingAppointments(st *store.Store, n *notify.Notifier) *Collection[models.CounselingAppointment] {
	return NewCollection(st, n, NameCounselingAppointments,
		func(doc *store.Document) *[]*models.CounselingAppointment { return &doc.CounselingAppointments },
		func(rec *models.CounselingAppointment) string { return rec.ID },
	)
}

func EarlyAlerts(st *store.Store, n *notify.Notifier) *Collection[models.EarlyAlert] {
	return NewCollection(st, n, NameEarlyAlerts,
		func(doc *store.Document) *[]*models.EarlyAlert { return &doc.EarlyAlerts },
		func(rec *models.EarlyAlert) string { return rec.ID },
	)
}

func SupportTickets(st *store.Store, n *notify.Notifier) *Collection[models.SupportTicket] {
	return NewCollection(st, n, NameSupportTickets,
		func(doc *store.Document) *[]*models.SupportTicket { return &doc.SupportTickets },
		func(rec *models.SupportTicket) string { return rec.ID },
	)
}

func Reservations(st *store.Store, n *notify.Notifier) *Collection[models.Reservation] {
	return NewCollection(st, n, NameReservations,
		func(doc *store.Document) *[]*models.Reservation { return &doc.Reservations },
		func(rec *models.Reservation) string { return rec.ID },
	)
}

func ParentMessages(st *store.Store, n *notify.Notifier) *Collection[models.ParentMessage] {
	return NewCollection(st, n, NameParentMessages,
		func(doc *store.Document) *[]*models.ParentMessage { return &doc.ParentMessages },
		func(rec *models.ParentMessage) string { return rec.ID },
	)
}

func VisitorLogs(st *store.Store, n *notify.Notifier) *Collection[models.VisitorLog] {
	return NewCollection(st, n, NameVisitorLogs,
		func(doc *store.Document) *[]*models.VisitorLog { return &doc.VisitorLogs },
		func(rec *models.VisitorLog) string { return rec.ID },
	)
}

func SecurityIncidents(st *store.Store, n *notify.Notifier) *Collection[models.SecurityIncident] {
	return NewCollection(st, n, NameSecurityIncidents,
		func(doc *store.Document) *[]*models.SecurityIncident { return &doc.SecurityIncidents },
		func(rec *models.SecurityIncident) string { return rec.ID },
	)
}

// TechScores records carry no minted id; they are keyed by student plus
// program.
func TechScores(st *store.Store, n *notify.Notifier) *Collection[models.TechScore] {
	return NewCollection(st, n, NameTechScores,
		func(doc *store.Document) *[]*models.TechScore { return &doc.TechScores },
		func(rec *models.TechScore) string { return rec.Key() },
	)
}

func News(st *store.Store, n *notify.Notifier) *Collection[models.NewsItem] {
	return NewCollection(st, n, NameNews,
		func(doc *store.Document) *[]*models.NewsItem { return &doc.News },
		func(rec *models.NewsItem) string { return rec.ID },
	)
}

func LibraryInventory(st *store.Store, n *notify.Notifier) *Collection[models.LibraryBook] {
	return NewCollection(st, n, NameLibraryInventory,
		func(doc *store.Document) *[]*models.LibraryBook { return &doc.LibraryInventory },
		func(rec *models.LibraryBook) string { return rec.Code },
	)
}
