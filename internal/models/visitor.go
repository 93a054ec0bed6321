package models

import "time"

// VisitorStatus is the gate log state machine. Values stay in English for
// compatibility with the persisted documents already in the field.
type VisitorStatus string

const (
	VisitorStatusActive    VisitorStatus = "active"
	VisitorStatusCompleted VisitorStatus = "completed"
)

// VisitorLog is one entry in the gate visitor book.
type VisitorLog struct {
	ID          string        `json:"id"`
	VisitorName string        `json:"visitorName"`
	DNI         string        `json:"dni"`
	Purpose     string        `json:"purpose"`
	Area        string        `json:"area"`
	Status      VisitorStatus `json:"status"`
	CheckIn     time.Time     `json:"checkIn"`
	CheckOut    *time.Time    `json:"checkOut,omitempty"`
}
