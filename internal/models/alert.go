package models

import "time"

// AlertStatus tracks an early alert raised for a student at risk.
type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "activa"
	AlertStatusFollowUp AlertStatus = "en_seguimiento"
	AlertStatusClosed   AlertStatus = "cerrada"
)

// EarlyAlert flags a student needing academic or attendance follow-up.
type EarlyAlert struct {
	ID          string      `json:"id"`
	StudentName string      `json:"studentName"`
	Grade       string      `json:"grade"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	ReportedBy  string      `json:"reportedBy"`
	Status      AlertStatus `json:"status"`
	ReportDate  time.Time   `json:"reportDate"`
	LastUpdate  time.Time   `json:"lastUpdate"`
}
