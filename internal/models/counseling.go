package models

import "time"

// CounselingStatus tracks a psychology department appointment.
type CounselingStatus string

const (
	CounselingStatusScheduled CounselingStatus = "programada"
	CounselingStatusAttended  CounselingStatus = "atendida"
	CounselingStatusCancelled CounselingStatus = "cancelada"
)

// CounselingAppointment is a scheduled session with the school psychologist.
type CounselingAppointment struct {
	ID            string           `json:"id"`
	StudentName   string           `json:"studentName"`
	Grade         string           `json:"grade"`
	Topic         string           `json:"topic"`
	ScheduledDate time.Time        `json:"scheduledDate"`
	Status        CounselingStatus `json:"status"`
	RequestDate   time.Time        `json:"requestDate"`
	LastUpdate    time.Time        `json:"lastUpdate"`
}
