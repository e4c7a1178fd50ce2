package models

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is one logged block of study, as recorded by the logging
// flow. Immutable once created; DurationMinutes is validated non-negative
// at creation time.
type StudySession struct {
	ID              uuid.UUID  `json:"id"`
	Subject         string     `json:"subject"`
	MaterialID      *uuid.UUID `json:"material_id,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	DurationMinutes int        `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ReviewMaterial is an optional grouping anchor for sessions. The engine
// only reads its title for display; the reference from a session is weak
// and may dangle.
type ReviewMaterial struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}
