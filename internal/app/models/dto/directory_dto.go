package dto

import (
	"time"

	"github.com/yigit/linguacrm/internal/app/models"
)

// CreateTeacherRequest represents a request to add a teacher
type CreateTeacherRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100" example:"Linh"`
	LastName  string `json:"last_name" binding:"max=100" example:"Nguyen"`
	Email     string `json:"email" binding:"required,email" example:"linh.nguyen@school.vn"`
}

// TeacherResponse represents a teacher in API responses
type TeacherResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
}

// NewTeacherResponse maps a teacher model
func NewTeacherResponse(t models.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:        t.ID.String(),
		FirstName: t.FirstName,
		LastName:  t.LastName,
		FullName:  t.FullName(),
		Email:     t.Email,
	}
}

// NewTeacherResponses maps a list of teachers
func NewTeacherResponses(list []models.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTeacherResponse(t))
	}
	return out
}

// CreateRoomRequest represents a request to add a room
type CreateRoomRequest struct {
	RoomName string `json:"room_name" binding:"required,max=100" example:"Room D"`
	Capacity int    `json:"capacity" binding:"gte=0" example:"16"`
}

// RoomResponse represents a room in API responses
type RoomResponse struct {
	ID       string `json:"id"`
	RoomName string `json:"room_name"`
	Capacity int    `json:"capacity"`
}

// NewRoomResponse maps a room model
func NewRoomResponse(r models.Room) RoomResponse {
	return RoomResponse{ID: r.ID.String(), RoomName: r.RoomName, Capacity: r.Capacity}
}

// NewRoomResponses maps a list of rooms
func NewRoomResponses(list []models.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(list))
	for _, r := range list {
		out = append(out, NewRoomResponse(r))
	}
	return out
}

// CreateStudentRequest represents a request to register a student
type CreateStudentRequest struct {
	FullName string  `json:"full_name" binding:"required,min=2,max=200" example:"Tran Minh Anh"`
	Phone    *string `json:"phone" binding:"omitempty,max=30" example:"0901234567"`
}

// StudentResponse represents a student in API responses
type StudentResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// NewStudentResponse maps a student model
func NewStudentResponse(s models.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID.String(),
		FullName:  s.FullName,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

// NewStudentResponses maps a list of students
func NewStudentResponses(list []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
