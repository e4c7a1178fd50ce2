package models

import (
	"time"

	"github.com/google/uuid"

	"benkyo-engine/internal/calendar"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// ReviewTask is one scheduled spaced review of a session. Created pending
// by the scheduler; transitions pending→completed exactly once, by the user
// marking it reviewed in the surrounding app.
type ReviewTask struct {
	ID        uuid.UUID         `json:"id"`
	SessionID uuid.UUID         `json:"session_id"`
	DueDay    calendar.StudyDay `json:"due_day"`
	Status    TaskStatus        `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// ReviewTaskDetail is a review task joined with its originating session and,
// when the session's material reference resolves, the material. Material is
// nil when the session has no material or the reference dangles.
type ReviewTaskDetail struct {
	Task     ReviewTask      `json:"task"`
	Session  StudySession    `json:"session"`
	Material *ReviewMaterial `json:"material,omitempty"`
}

// TaskGroup is a derived, never-persisted bundle of due tasks sharing a
// material (or, failing that, a subject). Rebuilt on every query.
type TaskGroup struct {
	Key      string       `json:"key"`
	Title    string       `json:"title"`
	Count    int          `json:"count"`
	DueTasks []ReviewTask `json:"due_tasks"`
}
