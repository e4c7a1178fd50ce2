// daycheck is the supported replacement for the pile of one-off scripts
// that used to re-derive the study-day boundary by hand. It answers three
// questions from the command line: which study day an instant belongs to,
// which instant range a study day covers, and what the engine computes for
// a recorded set of sessions.
//
//	daycheck -at 2026-02-10T18:00:00Z
//	daycheck -day 2026-02-11
//	daycheck -sessions sessions.json -now 2026-02-11T12:00:00Z
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"benkyo-engine/internal/calendar"
	"benkyo-engine/internal/config"
	"benkyo-engine/internal/models"
	"benkyo-engine/internal/review"
	"benkyo-engine/internal/stats"
)

func main() {
	atFlag := flag.String("at", "", "RFC3339 instant: print its study day and range")
	dayFlag := flag.String("day", "", "study day (YYYY-MM-DD): print its instant range")
	sessionsFlag := flag.String("sessions", "", "JSON file of study sessions to replay")
	nowFlag := flag.String("now", "", "RFC3339 instant used as the clock (default: current UTC time)")
	windowFlag := flag.Int("window", 7, "daily aggregate window in days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("✗ Configuration invalid: %v", err)
	}
	rule, err := cfg.DayRule()
	if err != nil {
		log.Fatalf("✗ Configuration invalid: %v", err)
	}
	log.Printf("✓ Day rule: start %02d:00, offset %+d minutes", cfg.DayStartHour, cfg.ReportingOffsetMinutes)

	// The only place the wall clock is read; everything below takes now
	// as a value.
	now := time.Now().UTC()
	if *nowFlag != "" {
		now, err = time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			log.Fatalf("✗ Bad -now instant: %v", err)
		}
	}

	if selectedModes(*atFlag, *dayFlag, *sessionsFlag) > 1 {
		log.Fatalf("✗ -at, -day and -sessions are mutually exclusive")
	}

	switch {
	case *atFlag != "":
		printDayOf(rule, *atFlag)
	case *dayFlag != "":
		printRange(rule, *dayFlag)
	case *sessionsFlag != "":
		replaySessions(cfg, rule, *sessionsFlag, *windowFlag, now)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// selectedModes counts how many of the mutually exclusive mode flags were
// supplied.
func selectedModes(flags ...string) int {
	n := 0
	for _, f := range flags {
		if f != "" {
			n++
		}
	}
	return n
}

func printDayOf(rule calendar.DayRule, raw string) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		log.Fatalf("✗ Bad -at instant: %v", err)
	}
	day := rule.DayOf(t)
	start, end := rule.Range(day)
	fmt.Printf("%s -> %s\n", t.Format(time.RFC3339), day)
	fmt.Printf("range [%s, %s)\n", start.Format(time.RFC3339), end.Format(time.RFC3339))
}

func printRange(rule calendar.DayRule, raw string) {
	day, err := calendar.ParseStudyDay(raw)
	if err != nil {
		log.Fatalf("✗ Bad -day value: %v", err)
	}
	start, end := rule.Range(day)
	fmt.Printf("%s covers [%s, %s)\n", day, start.Format(time.RFC3339), end.Format(time.RFC3339))
}

func replaySessions(cfg *config.Config, rule calendar.DayRule, path string, window int, now time.Time) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("✗ Failed to read sessions file: %v", err)
	}
	var sessions []models.StudySession
	if err := json.Unmarshal(data, &sessions); err != nil {
		log.Fatalf("✗ Failed to parse sessions file: %v", err)
	}
	log.Printf("✓ Loaded %d sessions", len(sessions))

	days := make([]calendar.StudyDay, 0, len(sessions))
	for _, s := range sessions {
		days = append(days, rule.DayOf(s.StartedAt))
	}
	asOf := rule.DayOf(now)

	streaks := stats.ComputeStreaks(days, asOf)
	fmt.Printf("as of %s: current streak %d, longest %d\n", asOf, streaks.Current, streaks.Longest)

	totals, err := stats.DailyAggregate(rule, sessions, window, now)
	if err != nil {
		log.Fatalf("✗ Daily aggregate failed: %v", err)
	}
	for _, t := range totals {
		fmt.Printf("  %s  %4d min\n", t.Day, t.Minutes)
	}

	for _, st := range stats.SubjectAggregate(sessions) {
		fmt.Printf("  %-20s %4d min\n", st.Subject, st.Minutes)
	}

	scheduler, err := cfg.NewScheduler()
	if err != nil {
		log.Fatalf("✗ Scheduler configuration invalid: %v", err)
	}

	var tasks []models.ReviewTask
	details := make([]models.ReviewTaskDetail, 0)
	for _, s := range sessions {
		scheduled, err := scheduler.ScheduleReviews(s, now)
		if err != nil {
			log.Fatalf("✗ Scheduling failed for session %s: %v", s.ID, err)
		}
		tasks = append(tasks, scheduled...)
		for _, t := range scheduled {
			details = append(details, models.ReviewTaskDetail{Task: t, Session: s})
		}
	}

	due := review.DueTasks(tasks, asOf)
	fmt.Printf("%d review tasks scheduled, %d due as of %s\n", len(tasks), len(due), asOf)

	byID := make(map[string]models.ReviewTaskDetail, len(details))
	for _, d := range details {
		byID[d.Task.ID.String()] = d
	}
	dueDetails := make([]models.ReviewTaskDetail, 0, len(due))
	for _, t := range due {
		dueDetails = append(dueDetails, byID[t.ID.String()])
	}
	for _, g := range review.GroupDueTasks(dueDetails) {
		fmt.Printf("  %-30s %s (%d due)\n", g.Key, g.Title, g.Count)
	}
}
