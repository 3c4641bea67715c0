package models

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus tracks tuition payment for one enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusUnpaid EnrollmentStatus = "UNPAID"
	EnrollmentStatusPaid   EnrollmentStatus = "PAID"
)

// Enrollment links a student to a course
type Enrollment struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	StudentID uuid.UUID        `json:"student_id" db:"student_id"`
	CourseID  uuid.UUID        `json:"course_id" db:"course_id"`
	Status    EnrollmentStatus `json:"status" db:"status"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}
