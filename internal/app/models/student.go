package models

import (
	"time"

	"github.com/google/uuid"
)

// Student is a learner who can enroll in courses
type Student struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	FullName  string    `json:"full_name" db:"full_name"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
}
