package models

import "time"

// IncidentStatus tracks a security incident report.
type IncidentStatus string

const (
	IncidentStatusReported      IncidentStatus = "reportado"
	IncidentStatusInvestigating IncidentStatus = "en_investigacion"
	IncidentStatusResolved      IncidentStatus = "resuelto"
)

// SecurityIncident is an occurrence reported to the security office.
type SecurityIncident struct {
	ID          string         `json:"id"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	ReportedBy  string         `json:"reportedBy"`
	Status      IncidentStatus `json:"status"`
	ReportDate  time.Time      `json:"reportDate"`
	LastUpdate  time.Time      `json:"lastUpdate"`
}
