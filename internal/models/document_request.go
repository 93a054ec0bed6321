package models

import "time"

// DocumentStatus tracks a document request through the secretariat workflow.
type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pendiente"
	DocumentStatusInProcess DocumentStatus = "en_proceso"
	DocumentStatusCompleted DocumentStatus = "completado"
	DocumentStatusRejected  DocumentStatus = "rechazado"
)

// DocumentRequest is a family's request for an official school document
// (constancia, certificado, traslado).
type DocumentRequest struct {
	ID           string         `json:"id"`
	StudentName  string         `json:"studentName"`
	DocumentType string         `json:"documentType"`
	Contact      string         `json:"contact"`
	Status       DocumentStatus `json:"status"`
	RequestDate  time.Time      `json:"requestDate"`
	LastUpdate   time.Time      `json:"lastUpdate"`
	Comments     []Comment      `json:"comments"`
}
