// Package review generates and organizes spaced-review tasks for logged
// study sessions. The scheduler emits pending tasks for the caller to
// persist; the grouper bundles whatever is currently due into the list the
// review screen shows. Nothing here touches storage or the wall clock.
package review

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"benkyo-engine/internal/calendar"
	"benkyo-engine/internal/models"
)

// DefaultIntervals is the product's review ladder: days after the studied
// day at which a session should be revisited.
var DefaultIntervals = []int{1, 3, 7, 16, 35}

// Scheduler derives review due days from sessions under a fixed day rule
// and interval ladder.
type Scheduler struct {
	rule      calendar.DayRule
	intervals []int
}

// NewScheduler validates the ladder: non-empty, all positive, strictly
// increasing. The slice is copied.
func NewScheduler(rule calendar.DayRule, intervalsDays []int) (*Scheduler, error) {
	if err := ValidateIntervals(intervalsDays); err != nil {
		return nil, err
	}
	return &Scheduler{rule: rule, intervals: append([]int(nil), intervalsDays...)}, nil
}

// ValidateIntervals checks a review ladder without building a Scheduler;
// the config package uses it to reject bad ladders at load time.
func ValidateIntervals(intervalsDays []int) error {
	if len(intervalsDays) == 0 {
		return fmt.Errorf("review: empty interval ladder: %w", ErrInvalidIntervals)
	}
	for i, d := range intervalsDays {
		if d <= 0 {
			return fmt.Errorf("review: interval %d days: %w", d, ErrInvalidIntervals)
		}
		if i > 0 && d <= intervalsDays[i-1] {
			return fmt.Errorf("review: ladder not strictly increasing at %d: %w", d, ErrInvalidIntervals)
		}
	}
	return nil
}

// Intervals returns a copy of the ladder.
func (s *Scheduler) Intervals() []int {
	return append([]int(nil), s.intervals...)
}

// ScheduleReviews emits one pending task per ladder interval for the
// session, due on the session's study day plus the interval. Any instant
// within one study day produces the same due days, so a session logged at
// 02:59 schedules identically to one logged an hour earlier. The caller
// persists the tasks; calling again with the same inputs yields the same
// sequence up to the generated ids.
func (s *Scheduler) ScheduleReviews(session models.StudySession, now time.Time) ([]models.ReviewTask, error) {
	if session.DurationMinutes < 0 {
		return nil, fmt.Errorf("review: session %s duration %d minutes: %w",
			session.ID, session.DurationMinutes, ErrNegativeDuration)
	}

	studied := s.rule.DayOf(session.StartedAt)
	tasks := make([]models.ReviewTask, 0, len(s.intervals))
	for _, d := range s.intervals {
		tasks = append(tasks, models.ReviewTask{
			ID:        uuid.New(),
			SessionID: session.ID,
			DueDay:    studied.AddDays(d),
			Status:    models.TaskPending,
			CreatedAt: now,
		})
	}
	return tasks, nil
}

// DueTasks filters to pending tasks due on or before asOf, ordered by due
// day ascending then creation time ascending, so the most overdue work
// comes first and the order never depends on storage order. The input is
// not mutated.
func DueTasks(tasks []models.ReviewTask, asOf calendar.StudyDay) []models.ReviewTask {
	due := make([]models.ReviewTask, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == models.TaskPending && !t.DueDay.After(asOf) {
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if c := due[i].DueDay.Compare(due[j].DueDay); c != 0 {
			return c < 0
		}
		return due[i].CreatedAt.Before(due[j].CreatedAt)
	})
	return due
}
