package models

import "time"

// EnrollmentStatus tracks an admission application.
type EnrollmentStatus string

const (
	EnrollmentStatusPending  EnrollmentStatus = "pendiente"
	EnrollmentStatusInReview EnrollmentStatus = "en_evaluacion"
	EnrollmentStatusApproved EnrollmentStatus = "aprobada"
	EnrollmentStatusRejected EnrollmentStatus = "rechazada"
)

// Enrollment is an application for a vacancy in a given grade.
type Enrollment struct {
	ID           string           `json:"id"`
	StudentName  string           `json:"studentName"`
	Grade        string           `json:"grade"`
	GuardianName string           `json:"guardianName"`
	Contact      string           `json:"contact"`
	Status       EnrollmentStatus `json:"status"`
	RequestDate  time.Time        `json:"requestDate"`
	LastUpdate   time.Time        `json:"lastUpdate"`
}
