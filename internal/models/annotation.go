package models

import "time"

// Comment is an append-only annotation left by staff on a record that
// supports follow-up (document requests, support tickets).
type Comment struct {
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
	Author string    `json:"author"`
}
