package models

import "time"

// NewsItem is a site announcement. News is the only collection whose
// records can be deleted.
type NewsItem struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	Date  time.Time `json:"date"`
}
