package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/linguacrm/internal/app/models"
)

// LessonDetailResponse is the JSON form of a lesson session
type LessonDetailResponse struct {
	ID           string  `json:"id"`
	CourseID     string  `json:"course_id"`
	TeacherID    string  `json:"teacher_id"`
	RoomID       string  `json:"room_id"`
	StartTime    string  `json:"start_time" example:"2025-01-06T09:00:00Z"`
	EndTime      string  `json:"end_time" example:"2025-01-06T10:30:00Z"`
	Status       string  `json:"status" example:"NOT_YET_OCCURRED" enums:"NOT_YET_OCCURRED,OCCURRED,CANCELLED"`
	CourseName   *string `json:"course_name,omitempty"`
	RoomName     *string `json:"room_name,omitempty"`
	TeacherName  *string `json:"teacher_name,omitempty"`
	IsSubstitute *bool   `json:"is_substitute,omitempty"`
}

// NewLessonDetailResponse maps a model, including any joined relations
func NewLessonDetailResponse(l models.LessonDetail) LessonDetailResponse {
	resp := LessonDetailResponse{
		ID:         l.ID.String(),
		CourseID:   l.CourseID.String(),
		TeacherID:  l.TeacherID.String(),
		RoomID:     l.RoomID.String(),
		StartTime:  l.StartTime.Format(time.RFC3339),
		EndTime:    l.EndTime.Format(time.RFC3339),
		Status:     string(l.Status),
		CourseName: l.CourseName,
	}
	if l.Room != nil {
		name := l.Room.RoomName
		resp.RoomName = &name
	}
	if l.Teacher != nil {
		name := l.Teacher.FullName()
		resp.TeacherName = &name
	}
	return resp
}

// NewLessonDetailResponses maps a list; a nil input yields an empty list
func NewLessonDetailResponses(list []models.LessonDetail) []LessonDetailResponse {
	out := make([]LessonDetailResponse, 0, len(list))
	for _, l := range list {
		out = append(out, NewLessonDetailResponse(l))
	}
	return out
}

// CourseLessonDetailResponse marks sessions taught by someone other than the course teacher
func CourseLessonDetailResponse(l models.LessonDetail, courseTeacher uuid.UUID) LessonDetailResponse {
	resp := NewLessonDetailResponse(l)
	substitute := l.TeacherID != courseTeacher
	resp.IsSubstitute = &substitute
	return resp
}

// UpdateLessonStatusRequest changes the status of one session
type UpdateLessonStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NOT_YET_OCCURRED OCCURRED CANCELLED" example:"OCCURRED"`
}

// AssignTeacherRequest overrides the teacher of one session
type AssignTeacherRequest struct {
	TeacherID string `json:"teacher_id" binding:"required,uuid" example:"7d0c9d61-1f6a-4c0b-8d3e-55a1f0b2c9aa"`
}
