package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is a class run by one primary teacher between two calendar dates (inclusive).
type Course struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	CourseName string    `json:"course_name" db:"course_name"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	Tuition    float64   `json:"tuition" db:"tuition"`
	TeacherID  uuid.UUID `json:"teacher_id" db:"teacher_id"`

	// Relations (populated when needed)
	Teacher *Teacher `json:"teacher,omitempty"`
}
