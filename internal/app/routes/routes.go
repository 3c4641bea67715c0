package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/linguacrm/internal/app/controllers"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/app/models/dto"
	"github.com/yigit/linguacrm/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	scheduleController *controllers.ScheduleController,
	lessonDetailController *controllers.LessonDetailController,
	teacherController *controllers.TeacherController,
	roomController *controllers.RoomController,
	studentController *controllers.StudentController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(string(models.RoleAdmin))

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/lesson-details", lessonDetailController.ListByCourse)
		courses.GET("/:id/weekly-schedule", scheduleController.WeeklySchedule)
		courses.GET("/:id/enrollments", enrollmentController.ListByCourse)

		coursesAdmin := courses.Group("")
		coursesAdmin.Use(adminOnly)
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
			coursesAdmin.POST("/:id/schedule", scheduleController.ExpandSchedule)
			coursesAdmin.POST("/:id/enrollments", enrollmentController.Enroll)
		}
	}

	teachers := authenticated.Group("/teachers")
	{
		teachers.GET("", teacherController.ListTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.GET("/:id/courses", teacherController.ListCourses)
		teachers.GET("/:id/lesson-details", lessonDetailController.ListByTeacher)
		teachers.POST("", adminOnly, teacherController.CreateTeacher)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/:id/lesson-details", lessonDetailController.ListByStudent)
		students.POST("", adminOnly, studentController.CreateStudent)
	}

	rooms := authenticated.Group("/rooms")
	{
		rooms.GET("", roomController.ListRooms)
		rooms.POST("", adminOnly, roomController.CreateRoom)
	}

	authenticated.DELETE("/enrollments/:id", adminOnly, enrollmentController.Unenroll)

	lessonDetails := authenticated.Group("/lesson-details")
	lessonDetails.Use(adminOnly)
	{
		lessonDetails.PATCH("/:id/status", lessonDetailController.UpdateStatus)
		lessonDetails.PATCH("/:id/teacher", lessonDetailController.AssignTeacher)
	}
}
