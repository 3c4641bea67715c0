package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
)

// ErrInvalidClockTime is returned when a clock time is not in HH:MM form
var ErrInvalidClockTime = errors.New("clock time must be in HH:MM format")

// ClockTime is a wall-clock time of day with minute precision
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses an "HH:MM" string
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// MustParseClockTime is ParseClockTime for literals; it panics on bad input.
func MustParseClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockTimeOf returns the wall-clock part of t in loc.
func ClockTimeOf(t time.Time, loc *time.Location) ClockTime {
	t = t.In(loc)
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// String formats the clock time as HH:MM
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Before reports whether c is strictly earlier in the day than other.
func (c ClockTime) Before(other ClockTime) bool {
	return c.minutes() < other.minutes()
}

func (c ClockTime) minutes() int {
	return c.Hour*60 + c.Minute
}

// On combines the calendar date of day with c in loc.
func (c ClockTime) On(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, loc)
}

// RecurrenceRule is one weekly slot of a course: a weekday, a time range and a room.
// Rules are inputs to Materialize and are never stored on their own.
type RecurrenceRule struct {
	DayOfWeek time.Weekday
	Start     ClockTime
	End       ClockTime
	RoomID    uuid.UUID
}

// Duration is the wall-clock length of the rule; it is not positive for degenerate rules.
func (r RecurrenceRule) Duration() time.Duration {
	return time.Duration(r.End.minutes()-r.Start.minutes()) * time.Minute
}

// Validate checks the rule invariants. Materialize does not call it.
func (r RecurrenceRule) Validate() error {
	if r.DayOfWeek < time.Sunday || r.DayOfWeek > time.Saturday {
		return fmt.Errorf("%w: day_of_week must be between 0 and 6, got %d", apperrors.ErrValidationFailed, r.DayOfWeek)
	}
	if !r.Start.Before(r.End) {
		return fmt.Errorf("%w: start_time %s must be before end_time %s", apperrors.ErrValidationFailed, r.Start, r.End)
	}
	if r.RoomID == uuid.Nil {
		return fmt.Errorf("%w: room_id is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// ValidateRules validates every rule and reports the first offending index.
func ValidateRules(rules []RecurrenceRule) error {
	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("schedule %d: %w", i, err)
		}
	}
	return nil
}
