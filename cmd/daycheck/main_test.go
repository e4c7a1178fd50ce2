package main

import "testing"

func TestSelectedModes(t *testing.T) {
	tests := []struct {
		name     string
		at       string
		day      string
		sessions string
		expected int
	}{
		{"none", "", "", "", 0},
		{"single instant", "2026-02-10T18:00:00Z", "", "", 1},
		{"single day", "", "2026-02-11", "", 1},
		{"instant and day", "2026-02-10T18:00:00Z", "2026-02-11", "", 2},
		{"all three", "2026-02-10T18:00:00Z", "2026-02-11", "sessions.json", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectedModes(tc.at, tc.day, tc.sessions); got != tc.expected {
				t.Errorf("expected %d selected modes, got %d", tc.expected, got)
			}
		})
	}
}
