package models

// LegalSection is one static legal page.
type LegalSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	Version string `json:"version"`
	Updated string `json:"updated"` // YYYY-MM-DD
}
