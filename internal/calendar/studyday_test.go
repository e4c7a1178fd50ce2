package calendar

import (
	"encoding/json"
	"testing"
)

func TestNewStudyDayNormalizes(t *testing.T) {
	if got := NewStudyDay(2026, 2, 29); got != NewStudyDay(2026, 3, 1) {
		t.Fatalf("expected 2026-02-29 to normalize to 2026-03-01, got %s", got)
	}
	if got := NewStudyDay(2026, 1, 0); got != NewStudyDay(2025, 12, 31) {
		t.Fatalf("expected day zero to normalize to previous day, got %s", got)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		day  StudyDay
		n    int
		want StudyDay
	}{
		{"same day", NewStudyDay(2026, 2, 11), 0, NewStudyDay(2026, 2, 11)},
		{"within month", NewStudyDay(2026, 2, 11), 7, NewStudyDay(2026, 2, 18)},
		{"month rollover", NewStudyDay(2026, 2, 11), 35, NewStudyDay(2026, 3, 18)},
		{"year rollover", NewStudyDay(2026, 12, 30), 3, NewStudyDay(2027, 1, 2)},
		{"leap february", NewStudyDay(2024, 2, 28), 1, NewStudyDay(2024, 2, 29)},
		{"backwards", NewStudyDay(2026, 3, 1), -1, NewStudyDay(2026, 2, 28)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.day.AddDays(tc.n); got != tc.want {
				t.Errorf("%s + %d days: expected %s, got %s", tc.day, tc.n, tc.want, got)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	a := NewStudyDay(2026, 2, 8)
	b := NewStudyDay(2026, 2, 11)

	if got := a.DaysUntil(b); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := b.DaysUntil(a); got != -3 {
		t.Fatalf("expected -3, got %d", got)
	}
	if got := a.DaysUntil(a); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}

	// Across a leap day.
	if got := NewStudyDay(2024, 2, 28).DaysUntil(NewStudyDay(2024, 3, 1)); got != 2 {
		t.Fatalf("expected 2 days across leap day, got %d", got)
	}
}

func TestOrdering(t *testing.T) {
	earlier := NewStudyDay(2026, 2, 10)
	later := NewStudyDay(2026, 2, 11)

	if !earlier.Before(later) || later.Before(earlier) {
		t.Fatalf("Before ordering wrong")
	}
	if !later.After(earlier) {
		t.Fatalf("After ordering wrong")
	}
	if earlier.Compare(later) != -1 || later.Compare(earlier) != 1 || earlier.Compare(earlier) != 0 {
		t.Fatalf("Compare ordering wrong")
	}
	if NewStudyDay(2025, 12, 31).Compare(NewStudyDay(2026, 1, 1)) != -1 {
		t.Fatalf("Compare wrong across year boundary")
	}
}

func TestStringAndParseRoundTrip(t *testing.T) {
	day := NewStudyDay(2026, 2, 9)

	if day.String() != "2026-02-09" {
		t.Fatalf("expected 2026-02-09, got %s", day.String())
	}

	parsed, err := ParseStudyDay("2026-02-09")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if parsed != day {
		t.Fatalf("round trip mismatch: %s", parsed)
	}

	if _, err := ParseStudyDay("2026-02-30"); err == nil {
		t.Fatalf("expected invalid date to be rejected")
	}
	if _, err := ParseStudyDay("not a date"); err == nil {
		t.Fatalf("expected garbage to be rejected")
	}
}

func TestStudyDayJSON(t *testing.T) {
	type record struct {
		Due StudyDay `json:"due"`
	}

	out, err := json.Marshal(record{Due: NewStudyDay(2026, 2, 11)})
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	if string(out) != `{"due":"2026-02-11"}` {
		t.Fatalf("expected date string encoding, got %s", out)
	}

	var in record
	if err := json.Unmarshal(out, &in); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if in.Due != NewStudyDay(2026, 2, 11) {
		t.Fatalf("round trip mismatch: %s", in.Due)
	}
}

func TestIsZero(t *testing.T) {
	var zero StudyDay
	if !zero.IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	if NewStudyDay(2026, 2, 11).IsZero() {
		t.Fatalf("real day should not report IsZero")
	}
}
