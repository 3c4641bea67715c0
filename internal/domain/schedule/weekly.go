package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Slot is the part of a persisted session the weekly view cares about.
type Slot struct {
	RoomID  uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

// WeeklyPattern is a distinct weekly slot reconstructed from expanded sessions.
type WeeklyPattern struct {
	DayOfWeek time.Weekday
	Start     ClockTime
	End       ClockTime
	RoomID    uuid.UUID
	RoomName  string
}

type patternKey struct {
	day    time.Weekday
	start  ClockTime
	end    ClockTime
	roomID uuid.UUID
}

// SummarizeWeekly collapses slots into one pattern per (weekday, start, end, room),
// keeping the first representative and first-seen order. Weekday and clock times are
// read in loc.
func SummarizeWeekly(slots []Slot, loc *time.Location) []WeeklyPattern {
	if loc == nil {
		loc = time.UTC
	}

	seen := make(map[patternKey]struct{}, len(slots))
	patterns := make([]WeeklyPattern, 0)
	for _, slot := range slots {
		key := patternKey{
			day:    slot.StartAt.In(loc).Weekday(),
			start:  ClockTimeOf(slot.StartAt, loc),
			end:    ClockTimeOf(slot.EndAt, loc),
			roomID: slot.RoomID,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		patterns = append(patterns, WeeklyPattern{
			DayOfWeek: key.day,
			Start:     key.start,
			End:       key.end,
			RoomID:    key.roomID,
		})
	}
	return patterns
}

// WithRoomNames fills RoomName through lookup, falling back to the raw room id.
// It returns a new slice.
func WithRoomNames(patterns []WeeklyPattern, lookup func(uuid.UUID) (string, bool)) []WeeklyPattern {
	named := make([]WeeklyPattern, len(patterns))
	for i, p := range patterns {
		p.RoomName = p.RoomID.String()
		if lookup != nil {
			if name, ok := lookup(p.RoomID); ok && name != "" {
				p.RoomName = name
			}
		}
		named[i] = p
	}
	return named
}
