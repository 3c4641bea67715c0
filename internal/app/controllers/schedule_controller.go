package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/linguacrm/internal/app/models/dto"
	"github.com/yigit/linguacrm/internal/app/services"
	"github.com/yigit/linguacrm/internal/middleware"
)

// ScheduleController exposes schedule expansion and the weekly view
type ScheduleController struct {
	scheduleService services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// ExpandSchedule creates one lesson session per matching day of the course range
// @Summary Expand weekly schedules into lesson sessions
// @Description Creates a lesson session for every date in the course range matching each weekly rule. Sessions are written one by one; if a write fails, the sessions already written are kept and the response reports how many were written.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.ExpandScheduleRequest true "Weekly rules"
// @Success 201 {object} dto.APIResponse{data=dto.ExpandScheduleResponse} "Sessions created"
// @Failure 400 {object} dto.ErrorResponse "Invalid rules"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Write failed part way (SRV_004) or internal error"
// @Router /courses/{id}/schedule [post]
func (c *ScheduleController) ExpandSchedule(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id", "course")
	if !ok {
		return
	}

	var req dto.ExpandScheduleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	rules, err := req.ToRules()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedules").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.scheduleService.ExpandSchedule(ctx, courseID, rules)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(
		dto.ExpandScheduleResponse{Created: dto.NewLessonDetailResponses(created)},
		"Schedule expanded successfully",
	))
}

// WeeklySchedule returns the distinct weekly slots of a course
// @Summary Weekly view of a course
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.WeeklyScheduleResponse} "Weekly schedule"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/weekly-schedule [get]
func (c *ScheduleController) WeeklySchedule(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id", "course")
	if !ok {
		return
	}

	patterns, err := c.scheduleService.WeeklySchedule(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewWeeklyScheduleResponse(courseID, patterns), ""))
}
