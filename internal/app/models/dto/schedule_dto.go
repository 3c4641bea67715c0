package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/linguacrm/internal/domain/schedule"
)

// RecurrenceRuleRequest is one weekly slot of a schedule expansion request
type RecurrenceRuleRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6" example:"1"`
	StartTime string `json:"start_time" binding:"required,clocktime" example:"09:00"`
	EndTime   string `json:"end_time" binding:"required,clocktime" example:"10:30"`
	RoomID    string `json:"room_id" binding:"required,uuid" example:"4f1c2a0e-6f7b-4d58-9c1e-2b8f0a7d3c11"`
}

// ExpandScheduleRequest carries the weekly rules to expand over a course's date range
type ExpandScheduleRequest struct {
	Schedules []RecurrenceRuleRequest `json:"schedules" binding:"omitempty,dive"`
}

// ToRule converts the request into a domain rule. Binding has already checked the formats.
func (r RecurrenceRuleRequest) ToRule() (schedule.RecurrenceRule, error) {
	var rule schedule.RecurrenceRule

	if r.DayOfWeek == nil {
		return rule, fmt.Errorf("day_of_week is required")
	}
	start, err := schedule.ParseClockTime(r.StartTime)
	if err != nil {
		return rule, fmt.Errorf("start_time: %w", err)
	}
	end, err := schedule.ParseClockTime(r.EndTime)
	if err != nil {
		return rule, fmt.Errorf("end_time: %w", err)
	}
	roomID, err := uuid.Parse(r.RoomID)
	if err != nil {
		return rule, fmt.Errorf("room_id: %w", err)
	}

	rule.DayOfWeek = time.Weekday(*r.DayOfWeek)
	rule.Start = start
	rule.End = end
	rule.RoomID = roomID
	return rule, nil
}

// ToRules converts every entry, reporting the index of the first bad one
func (r ExpandScheduleRequest) ToRules() ([]schedule.RecurrenceRule, error) {
	rules := make([]schedule.RecurrenceRule, 0, len(r.Schedules))
	for i, s := range r.Schedules {
		rule, err := s.ToRule()
		if err != nil {
			return nil, fmt.Errorf("schedules[%d]: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ExpandScheduleResponse lists the sessions created by an expansion
type ExpandScheduleResponse struct {
	Created []LessonDetailResponse `json:"created"`
}

// WeeklyPatternResponse is one distinct weekly slot of a course
type WeeklyPatternResponse struct {
	DayOfWeek int    `json:"day_of_week" example:"1"`
	StartTime string `json:"start_time" example:"09:00"`
	EndTime   string `json:"end_time" example:"10:30"`
	RoomID    string `json:"room_id" example:"4f1c2a0e-6f7b-4d58-9c1e-2b8f0a7d3c11"`
	RoomName  string `json:"room_name" example:"Room A"`
}

// WeeklyScheduleResponse is the weekly view of a course
type WeeklyScheduleResponse struct {
	CourseID string                  `json:"course_id"`
	Patterns []WeeklyPatternResponse `json:"patterns"`
}

// NewWeeklyScheduleResponse maps domain patterns to their JSON form
func NewWeeklyScheduleResponse(courseID uuid.UUID, patterns []schedule.WeeklyPattern) WeeklyScheduleResponse {
	out := make([]WeeklyPatternResponse, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, WeeklyPatternResponse{
			DayOfWeek: int(p.DayOfWeek),
			StartTime: p.Start.String(),
			EndTime:   p.End.String(),
			RoomID:    p.RoomID.String(),
			RoomName:  p.RoomName,
		})
	}
	return WeeklyScheduleResponse{CourseID: courseID.String(), Patterns: out}
}
