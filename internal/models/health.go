package models

import "time"

// NurseVisitStatus records how an infirmary visit was closed out.
type NurseVisitStatus string

const (
	NurseVisitStatusAttended NurseVisitStatus = "atendido"
	NurseVisitStatusReferred NurseVisitStatus = "derivado"
)

// NurseVisit is one attention registered at the school infirmary.
type NurseVisit struct {
	ID          string           `json:"id"`
	StudentName string           `json:"studentName"`
	Grade       string           `json:"grade"`
	Reason      string           `json:"reason"`
	Treatment   string           `json:"treatment"`
	Status      NurseVisitStatus `json:"status"`
	VisitDate   time.Time        `json:"visitDate"`
	LastUpdate  time.Time        `json:"lastUpdate"`
}
