package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"benkyo-engine/internal/calendar"
	"benkyo-engine/internal/review"
)

// Config carries the engine's calendar and scheduling constants. They are
// product decisions supplied once at startup, not per-request options.
type Config struct {
	// Calendar
	DayStartHour           int
	ReportingOffsetMinutes int

	// Review scheduling
	ReviewIntervalsDays []int
}

// Load reads configuration from the environment (after loading .env if
// present), falling back to the product defaults: days start at 03:00 JST
// and reviews follow the 1/3/7/16/35 ladder. Malformed or out-of-range
// values are rejected, never clamped or silently defaulted.
func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	dayStartHour, err := getEnvAsInt("DAY_START_HOUR", calendar.DefaultDayStartHour)
	if err != nil {
		return nil, err
	}
	offsetMinutes, err := getEnvAsInt("REPORTING_OFFSET_MINUTES", calendar.DefaultOffsetMinutes)
	if err != nil {
		return nil, err
	}
	intervals, err := getEnvAsIntList("REVIEW_INTERVALS_DAYS", review.DefaultIntervals)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DayStartHour:           dayStartHour,
		ReportingOffsetMinutes: offsetMinutes,
		ReviewIntervalsDays:    intervals,
	}

	if _, err := cfg.DayRule(); err != nil {
		return nil, err
	}
	if err := review.ValidateIntervals(cfg.ReviewIntervalsDays); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DayRule builds the calendar rule for this configuration.
func (c *Config) DayRule() (calendar.DayRule, error) {
	return calendar.NewDayRule(c.DayStartHour, c.ReportingOffsetMinutes)
}

// NewScheduler builds a review scheduler for this configuration.
func (c *Config) NewScheduler() (*review.Scheduler, error) {
	rule, err := c.DayRule()
	if err != nil {
		return nil, err
	}
	return review.NewScheduler(rule, c.ReviewIntervalsDays)
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvAsInt uses the default only when the variable is unset. A value
// that fails to parse is an error: a typo in a calendar constant must not
// quietly become the product default.
func getEnvAsInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("config: %s value %q is not an integer", key, val)
	}
	return n, nil
}

// getEnvAsIntList parses a comma-separated integer list with the same
// strictness as getEnvAsInt.
func getEnvAsIntList(key string, defaultVal []int) ([]int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	parts := strings.Split(val, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("config: %s entry %q is not an integer", key, p)
		}
		out = append(out, n)
	}
	return out, nil
}
