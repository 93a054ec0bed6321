package models

import "time"

// MessageStatus tracks a parent message through the inbox workflow.
type MessageStatus string

const (
	MessageStatusNew      MessageStatus = "nuevo"
	MessageStatusRead     MessageStatus = "leido"
	MessageStatusAnswered MessageStatus = "respondido"
)

// ParentMessage is a message sent by a family through the contact form.
type ParentMessage struct {
	ID          string        `json:"id"`
	ParentName  string        `json:"parentName"`
	StudentName string        `json:"studentName"`
	Subject     string        `json:"subject"`
	Body        string        `json:"body"`
	Status      MessageStatus `json:"status"`
	SentDate    time.Time     `json:"sentDate"`
	LastUpdate  time.Time     `json:"lastUpdate"`
}
