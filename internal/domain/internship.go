package domain

import "github.com/google/uuid"

// Internship represents an internship posting in the catalog.
// Description, Location and Stipend are display-only and never scored.
type Internship struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Stipend     string    `json:"stipend,omitempty"`
	Skills      []string  `json:"skills"`
}

// MatchResult pairs an internship with its score against a student's
// preference set. Score is in [0, 1], rounded to 4 decimal digits.
// Results are computed per request and never persisted.
type MatchResult struct {
	Score      float64    `json:"score"`
	Internship Internship `json:"internship"`
}
