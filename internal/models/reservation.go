package models

import "time"

// ReservationStatus tracks a school space booking.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pendiente"
	ReservationStatusConfirmed ReservationStatus = "confirmada"
	ReservationStatusCancelled ReservationStatus = "cancelada"
)

// Reservation books a shared space (auditorio, cancha, sala de cómputo).
type Reservation struct {
	ID          string            `json:"id"`
	Space       string            `json:"space"`
	RequestedBy string            `json:"requestedBy"`
	EventDate   time.Time         `json:"eventDate"`
	Purpose     string            `json:"purpose"`
	Status      ReservationStatus `json:"status"`
	RequestDate time.Time         `json:"requestDate"`
	LastUpdate  time.Time         `json:"lastUpdate"`
}
