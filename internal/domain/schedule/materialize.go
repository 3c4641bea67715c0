package schedule

import (
	"time"

	"github.com/google/uuid"
)

const daysPerWeek = 7

// SessionDescriptor is a concrete, not yet persisted occurrence of a course meeting.
type SessionDescriptor struct {
	TeacherID uuid.UUID
	RoomID    uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
}

// Materialize expands weekly rules into dated sessions between startDate and endDate,
// both inclusive. Only the calendar date of the bounds is used; instants are built in loc.
//
// Output is grouped by rule (in input order) and chronological within a rule. It is not
// sorted across rules, and overlapping rules are all emitted. An inverted range yields nil.
func Materialize(startDate, endDate time.Time, teacherID uuid.UUID, rules []RecurrenceRule, loc *time.Location) []SessionDescriptor {
	if loc == nil {
		loc = time.UTC
	}

	// Walk calendar days in UTC so DST transitions in loc never skip or repeat a date.
	first := calendarDate(startDate)
	last := calendarDate(endDate)
	if first.After(last) {
		return nil
	}

	var descriptors []SessionDescriptor
	for _, rule := range rules {
		if rule.DayOfWeek < time.Sunday || rule.DayOfWeek > time.Saturday {
			continue
		}

		offset := (int(rule.DayOfWeek) - int(first.Weekday()) + daysPerWeek) % daysPerWeek
		for day := first.AddDate(0, 0, offset); !day.After(last); day = day.AddDate(0, 0, daysPerWeek) {
			start, end := rule.instants(day, loc)
			descriptors = append(descriptors, SessionDescriptor{
				TeacherID: teacherID,
				RoomID:    rule.RoomID,
				StartAt:   start,
				EndAt:     end,
			})
		}
	}

	return descriptors
}

// instants places the rule on day in loc. When a daylight-saving change moves either wall
// time (it falls in the skipped hour) or the range would not be increasing, the end is taken
// as start plus the rule's duration. Degenerate rules pass through unchanged.
func (r RecurrenceRule) instants(day time.Time, loc *time.Location) (time.Time, time.Time) {
	start := r.Start.On(day, loc)
	end := r.End.On(day, loc)

	d := r.Duration()
	if d <= 0 {
		return start, end
	}
	if ClockTimeOf(start, loc) != r.Start || ClockTimeOf(end, loc) != r.End || !end.After(start) {
		end = start.Add(d)
	}
	return start, end
}

// calendarDate drops the clock part of t, keeping the date as seen in t's own location.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
