package dto

import (
	"time"

	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/helpers"
)

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	CourseName string  `json:"course_name" binding:"required,min=2,max=200" example:"IELTS Foundation"`
	StartDate  string  `json:"start_date" binding:"required,datetime=2006-01-02" example:"2025-01-06"`
	EndDate    string  `json:"end_date" binding:"required,datetime=2006-01-02" example:"2025-03-28"`
	Tuition    float64 `json:"tuition" binding:"gte=0" example:"4500000"`
	TeacherID  string  `json:"teacher_id" binding:"required,uuid" example:"7d0c9d61-1f6a-4c0b-8d3e-55a1f0b2c9aa"`
}

// CourseResponse represents a course in API responses
type CourseResponse struct {
	ID          string  `json:"id"`
	CourseName  string  `json:"course_name"`
	StartDate   string  `json:"start_date" example:"2025-01-06"`
	EndDate     string  `json:"end_date" example:"2025-03-28"`
	Tuition     float64 `json:"tuition"`
	TeacherID   string  `json:"teacher_id"`
	TeacherName *string `json:"teacher_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// NewCourseResponse maps a course model
func NewCourseResponse(c models.Course) CourseResponse {
	resp := CourseResponse{
		ID:         c.ID.String(),
		CourseName: c.CourseName,
		StartDate:  c.StartDate.Format(helpers.DateLayout),
		EndDate:    c.EndDate.Format(helpers.DateLayout),
		Tuition:    c.Tuition,
		TeacherID:  c.TeacherID.String(),
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
	if c.Teacher != nil {
		name := c.Teacher.FullName()
		resp.TeacherName = &name
	}
	return resp
}

// NewCourseResponses maps a list of courses
func NewCourseResponses(list []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// UpdateCourseRequest replaces every editable field of a course
type UpdateCourseRequest CreateCourseRequest
