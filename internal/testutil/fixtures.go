// Package testutil holds fixture builders shared by the engine's package
// tests. Nothing here is part of the engine's contract.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"benkyo-engine/internal/models"
)

// Session builds a minutes-long session for subject starting at startedAt.
func Session(subject string, startedAt time.Time, minutes int) models.StudySession {
	return models.StudySession{
		ID:              uuid.New(),
		Subject:         subject,
		StartedAt:       startedAt,
		DurationMinutes: minutes,
		CreatedAt:       startedAt,
	}
}

// SessionWithMaterial is Session with a material reference attached.
func SessionWithMaterial(subject string, materialID uuid.UUID, startedAt time.Time, minutes int) models.StudySession {
	s := Session(subject, startedAt, minutes)
	s.MaterialID = &materialID
	return s
}

// ResetCompleted reverts completed tasks to pending so a fixture can be
// replayed. The engine itself never un-completes a task; this reversal is
// an administrative affordance for tests only and must stay out of the
// engine packages.
func ResetCompleted(tasks []models.ReviewTask) []models.ReviewTask {
	out := make([]models.ReviewTask, len(tasks))
	for i, t := range tasks {
		if t.Status == models.TaskCompleted {
			t.Status = models.TaskPending
		}
		out[i] = t
	}
	return out
}
