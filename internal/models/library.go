package models

// LibraryBook is one title in the school library inventory. The catalog is
// seeded statically; Available is the only mutable field.
type LibraryBook struct {
	Code      string `json:"code"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}
