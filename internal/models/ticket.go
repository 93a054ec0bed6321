package models

import "time"

// TicketStatus is the support ticket state machine: abierto is the only
// non-terminal state, resuelto is terminal.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "abierto"
	TicketStatusResolved TicketStatus = "resuelto"
)

// SupportTicket is a technical support request about the school platform.
type SupportTicket struct {
	ID           string       `json:"id"`
	Subject      string       `json:"subject"`
	Description  string       `json:"description"`
	Requester    string       `json:"requester"`
	Status       TicketStatus `json:"status"`
	DateCreated  time.Time    `json:"dateCreated"`
	ResolvedDate *time.Time   `json:"resolvedDate,omitempty"`
	Comments     []Comment    `json:"comments"`
}
