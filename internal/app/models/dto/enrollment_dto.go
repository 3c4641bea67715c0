package dto

import (
	"time"

	"github.com/yigit/linguacrm/internal/app/models"
)

// EnrollRequest adds a student to the course in the path
type EnrollRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid" example:"3f9a3c55-8f0e-4f7d-9b7a-0c1d2e3f4a5b"`
}

// EnrollmentResponse represents an enrollment in API responses
type EnrollmentResponse struct {
	ID          string  `json:"id"`
	CourseID    string  `json:"course_id"`
	StudentID   string  `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	Status      string  `json:"status" example:"UNPAID"`
	CreatedAt   string  `json:"created_at"`
}

// NewEnrollmentResponse maps an enrollment model
func NewEnrollmentResponse(e models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:        e.ID.String(),
		CourseID:  e.CourseID.String(),
		StudentID: e.StudentID.String(),
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
	if e.Student != nil {
		name := e.Student.FullName
		resp.StudentName = &name
	}
	return resp
}

// NewEnrollmentResponses maps a list of enrollments
func NewEnrollmentResponses(list []models.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewEnrollmentResponse(e))
	}
	return out
}
