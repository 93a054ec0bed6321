package models

import "time"

// TechScoreStatus tracks progress in a work-based-learning program.
type TechScoreStatus string

const (
	TechScoreStatusInProgress TechScoreStatus = "en_progreso"
	TechScoreStatusCompleted  TechScoreStatus = "completado"
)

// WBLLog is one append-only work-based-learning evidence entry.
type WBLLog struct {
	StudentName string    `json:"studentName"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	EvidenceURL string    `json:"evidenceUrl"`
}

// TechScore accumulates a student's hours in one technical program. There is
// no minted id; records are keyed by student plus program.
type TechScore struct {
	StudentName   string          `json:"studentName"`
	Program       string          `json:"program"`
	HoursLogged   float64         `json:"hoursLogged"`
	Status        TechScoreStatus `json:"status"`
	EnrolledDate  time.Time       `json:"enrolledDate"`
	LastUpdate    time.Time       `json:"lastUpdate"`
	CompletedDate *time.Time      `json:"completedDate,omitempty"`
	WBLLogs       []WBLLog        `json:"wblLogs"`
}

// Key identifies a tech score record inside its collection.
func (t *TechScore) Key() string {
	return t.StudentName + "|" + t.Program
}
