package models

import (
	"time"

	"github.com/google/uuid"
)

// LessonStatus is the lifecycle state of a single lesson session
type LessonStatus string

const (
	LessonStatusNotYetOccurred LessonStatus = "NOT_YET_OCCURRED"
	LessonStatusOccurred       LessonStatus = "OCCURRED"
	LessonStatusCancelled      LessonStatus = "CANCELLED"
)

// Valid reports whether s is a known status
func (s LessonStatus) Valid() bool {
	switch s {
	case LessonStatusNotYetOccurred, LessonStatusOccurred, LessonStatusCancelled:
		return true
	}
	return false
}

// LessonDetail is one dated occurrence of a course meeting.
// Course, room and time window are fixed at creation; status and teacher may change.
type LessonDetail struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	CourseID  uuid.UUID    `json:"course_id" db:"course_id"`
	TeacherID uuid.UUID    `json:"teacher_id" db:"teacher_id"`
	RoomID    uuid.UUID    `json:"room_id" db:"room_id"`
	StartTime time.Time    `json:"start_time" db:"start_time"`
	EndTime   time.Time    `json:"end_time" db:"end_time"`
	Status    LessonStatus `json:"status" db:"status"`

	// Relations (populated when needed)
	CourseName *string  `json:"course_name,omitempty"`
	Room       *Room    `json:"room,omitempty"`
	Teacher    *Teacher `json:"teacher,omitempty"`
}
