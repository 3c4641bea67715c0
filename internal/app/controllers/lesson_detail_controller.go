package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/app/models/dto"
	"github.com/yigit/linguacrm/internal/app/services"
	"github.com/yigit/linguacrm/internal/middleware"
)

// LessonDetailController handles per-session reads and overrides
type LessonDetailController struct {
	lessonDetailService services.LessonDetailService
	loc                 *time.Location
	now                 func() time.Time
}

// NewLessonDetailController creates a new LessonDetailController. loc resolves date-only query bounds.
func NewLessonDetailController(lessonDetailService services.LessonDetailService, loc *time.Location) *LessonDetailController {
	if loc == nil {
		loc = time.UTC
	}
	return &LessonDetailController{
		lessonDetailService: lessonDetailService,
		loc:                 loc,
		now:                 time.Now,
	}
}

// ListByCourse lists every session of a course
// @Summary List a course's lesson sessions
// @Description Sessions ordered by start time; is_substitute marks sessions taught by someone other than the course teacher.
// @Tags lesson-details
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]dto.LessonDetailResponse} "Sessions"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/lesson-details [get]
func (c *LessonDetailController) ListByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id", "course")
	if !ok {
		return
	}

	course, lessons, err := c.lessonDetailService.ListByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.LessonDetailResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, dto.CourseLessonDetailResponse(l, course.TeacherID))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(out, ""))
}

// ListByTeacher lists a teacher's sessions in a window
// @Summary List a teacher's lesson sessions
// @Tags lesson-details
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID" Format(uuid)
// @Param from query string false "Window start (RFC3339 or YYYY-MM-DD), default start of this week"
// @Param to query string false "Window end (RFC3339 or YYYY-MM-DD, inclusive day), default end of this week"
// @Success 200 {object} dto.APIResponse{data=[]dto.LessonDetailResponse} "Sessions"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/lesson-details [get]
func (c *LessonDetailController) ListByTeacher(ctx *gin.Context) {
	c.listInWindow(ctx, "teacher", c.lessonDetailService.ListByTeacher)
}

// ListByStudent lists the sessions of a student's enrolled courses in a window
// @Summary List a student's lesson sessions
// @Tags lesson-details
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" Format(uuid)
// @Param from query string false "Window start (RFC3339 or YYYY-MM-DD), default start of this week"
// @Param to query string false "Window end (RFC3339 or YYYY-MM-DD, inclusive day), default end of this week"
// @Success 200 {object} dto.APIResponse{data=[]dto.LessonDetailResponse} "Sessions"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/lesson-details [get]
func (c *LessonDetailController) ListByStudent(ctx *gin.Context) {
	c.listInWindow(ctx, "student", c.lessonDetailService.ListByStudent)
}

type windowLister func(ctx context.Context, id uuid.UUID, from, to time.Time) ([]models.LessonDetail, error)

func (c *LessonDetailController) listInWindow(ctx *gin.Context, label string, list windowLister) {
	id, ok := parseIDParam(ctx, "id", label)
	if !ok {
		return
	}
	from, to, ok := parseWindow(ctx, c.loc, c.now())
	if !ok {
		return
	}

	lessons, err := list(ctx, id, from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLessonDetailResponses(lessons), ""))
}

// UpdateStatus changes the status of one session
// @Summary Update a lesson session's status
// @Tags lesson-details
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson detail ID" Format(uuid)
// @Param request body dto.UpdateLessonStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.LessonDetailResponse} "Updated session"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Lesson detail not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lesson-details/{id}/status [patch]
func (c *LessonDetailController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "lesson detail")
	if !ok {
		return
	}

	var req dto.UpdateLessonStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	lesson, err := c.lessonDetailService.UpdateStatus(ctx, id, models.LessonStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLessonDetailResponse(*lesson), "Lesson status updated"))
}

// AssignTeacher overrides the teacher of one session
// @Summary Assign a substitute teacher to a lesson session
// @Tags lesson-details
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson detail ID" Format(uuid)
// @Param request body dto.AssignTeacherRequest true "Teacher"
// @Success 200 {object} dto.APIResponse{data=dto.LessonDetailResponse} "Updated session"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Lesson detail or teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lesson-details/{id}/teacher [patch]
func (c *LessonDetailController) AssignTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "lesson detail")
	if !ok {
		return
	}

	var req dto.AssignTeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	teacherID, _ := uuid.Parse(req.TeacherID)

	lesson, err := c.lessonDetailService.AssignTeacher(ctx, id, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLessonDetailResponse(*lesson), "Lesson teacher assigned"))
}
