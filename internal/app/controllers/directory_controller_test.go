package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
)

type stubCourseService struct {
	updated   *models.Course
	deleted   uuid.UUID
	byTeacher []models.Course
	err       error
}

func (s *stubCourseService) CreateCourse(_ context.Context, c *models.Course) error {
	c.ID = uuid.New()
	return s.err
}

func (s *stubCourseService) UpdateCourse(_ context.Context, c *models.Course) (*models.Course, error) {
	s.updated = c
	if s.err != nil {
		return nil, s.err
	}
	return c, nil
}

func (s *stubCourseService) DeleteCourse(_ context.Context, id uuid.UUID) error {
	s.deleted = id
	return s.err
}

func (s *stubCourseService) GetCourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Course{ID: id}, nil
}

func (s *stubCourseService) ListCourses(context.Context) ([]models.Course, error) {
	return nil, s.err
}

func (s *stubCourseService) ListCoursesByTeacher(context.Context, uuid.UUID) ([]models.Course, error) {
	return s.byTeacher, s.err
}

type stubTeacherService struct {
	created *models.Teacher
	err     error
}

func (s *stubTeacherService) CreateTeacher(_ context.Context, t *models.Teacher) error {
	s.created = t
	t.ID = uuid.New()
	return s.err
}

func (s *stubTeacherService) GetTeacherByID(_ context.Context, id uuid.UUID) (*models.Teacher, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Teacher{ID: id, FirstName: "Linh", LastName: "Nguyen"}, nil
}

func (s *stubTeacherService) ListTeachers(context.Context) ([]models.Teacher, error) {
	return []models.Teacher{{ID: uuid.New(), FirstName: "Linh"}}, s.err
}

type stubRoomService struct{ err error }

func (s *stubRoomService) CreateRoom(_ context.Context, r *models.Room) error {
	r.ID = uuid.New()
	return s.err
}

func (s *stubRoomService) ListRooms(context.Context) ([]models.Room, error) {
	return []models.Room{{ID: uuid.New(), RoomName: "Room A", Capacity: 12}}, s.err
}

type stubStudentService struct {
	created *models.Student
	err     error
}

func (s *stubStudentService) CreateStudent(_ context.Context, st *models.Student) error {
	s.created = st
	st.ID = uuid.New()
	return s.err
}

func (s *stubStudentService) GetStudentByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Student{ID: id, FullName: "Tran Minh Anh"}, nil
}

func (s *stubStudentService) ListStudents(context.Context) ([]models.Student, error) {
	return nil, s.err
}

type stubEnrollmentService struct {
	course, student uuid.UUID
	err             error
}

func (s *stubEnrollmentService) Enroll(_ context.Context, courseID, studentID uuid.UUID) (*models.Enrollment, error) {
	s.course, s.student = courseID, studentID
	if s.err != nil {
		return nil, s.err
	}
	return &models.Enrollment{ID: uuid.New(), CourseID: courseID, StudentID: studentID, Status: models.EnrollmentStatusUnpaid}, nil
}

func (s *stubEnrollmentService) ListByCourse(_ context.Context, courseID uuid.UUID) ([]models.Enrollment, error) {
	return []models.Enrollment{{
		ID: uuid.New(), CourseID: courseID, StudentID: uuid.New(), Status: models.EnrollmentStatusPaid,
		Student: &models.Student{FullName: "Le Bao"},
	}}, s.err
}

func (s *stubEnrollmentService) Unenroll(context.Context, uuid.UUID) error {
	return s.err
}

func courseBody(teacher string) map[string]interface{} {
	return map[string]interface{}{
		"course_name": "IELTS 6.5",
		"start_date":  "2025-01-06",
		"end_date":    "2025-03-28",
		"tuition":     4500000,
		"teacher_id":  teacher,
	}
}

func TestUpdateCourseHandler(t *testing.T) {
	svc := &stubCourseService{}
	r := gin.New()
	c := NewCourseController(svc)
	r.PUT("/courses/:id", c.UpdateCourse)
	r.DELETE("/courses/:id", c.DeleteCourse)
	id, teacher := uuid.New(), uuid.NewString()

	w, env := perform(t, r, http.MethodPut, "/courses/"+id.String(), courseBody(teacher))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, svc.updated)
	assert.Equal(t, id, svc.updated.ID)
	assert.Equal(t, teacher, svc.updated.TeacherID.String())
	assert.Contains(t, string(env.Data), `"start_date":"2025-01-06"`)

	bad := courseBody(teacher)
	bad["end_date"] = "28/03/2025"
	w, _ = perform(t, r, http.MethodPut, "/courses/"+id.String(), bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = apperrors.ErrCourseNotFound
	w, _ = perform(t, r, http.MethodPut, "/courses/"+id.String(), courseBody(teacher))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = perform(t, r, http.MethodDelete, "/courses/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RES_001", env.Error.Code)

	svc.err = nil
	w, env = perform(t, r, http.MethodDelete, "/courses/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, id, svc.deleted)
}

func teacherRouter(teachers *stubTeacherService, courses *stubCourseService) *gin.Engine {
	r := gin.New()
	c := NewTeacherController(teachers, courses)
	r.POST("/teachers", c.CreateTeacher)
	r.GET("/teachers", c.ListTeachers)
	r.GET("/teachers/:id", c.GetTeacherByID)
	r.GET("/teachers/:id/courses", c.ListCourses)
	return r
}

func TestCreateTeacherHandler(t *testing.T) {
	svc := &stubTeacherService{}
	r := teacherRouter(svc, &stubCourseService{})

	w, env := perform(t, r, http.MethodPost, "/teachers", map[string]string{
		"first_name": "Linh", "last_name": "Nguyen", "email": "linh@school.vn",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "linh@school.vn", svc.created.Email)
	assert.Contains(t, string(env.Data), `"full_name":"Linh Nguyen"`)

	w, _ = perform(t, r, http.MethodPost, "/teachers", map[string]string{"first_name": "Linh", "email": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = apperrors.ErrTeacherEmailExists
	w, _ = perform(t, r, http.MethodPost, "/teachers", map[string]string{"first_name": "Linh", "email": "linh@school.vn"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTeacherCourses(t *testing.T) {
	teacher := uuid.New()
	courses := &stubCourseService{byTeacher: []models.Course{{ID: uuid.New(), CourseName: "TOEIC 600", TeacherID: teacher}}}
	r := teacherRouter(&stubTeacherService{}, courses)

	w, env := perform(t, r, http.MethodGet, "/teachers/"+teacher.String()+"/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "TOEIC 600", data[0]["course_name"])

	courses.err = apperrors.ErrTeacherNotFound
	w, _ = perform(t, r, http.MethodGet, "/teachers/"+teacher.String()+"/courses", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = perform(t, r, http.MethodGet, "/teachers/t1/courses", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomHandlers(t *testing.T) {
	svc := &stubRoomService{}
	r := gin.New()
	c := NewRoomController(svc)
	r.POST("/rooms", c.CreateRoom)
	r.GET("/rooms", c.ListRooms)

	w, env := perform(t, r, http.MethodPost, "/rooms", map[string]interface{}{"room_name": "Room D", "capacity": 16})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(env.Data), `"capacity":16`)

	w, _ = perform(t, r, http.MethodPost, "/rooms", map[string]interface{}{"room_name": "Room D", "capacity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = apperrors.ErrRoomNameExists
	w, _ = perform(t, r, http.MethodPost, "/rooms", map[string]interface{}{"room_name": "Room A"})
	assert.Equal(t, http.StatusConflict, w.Code)

	svc.err = nil
	w, env = perform(t, r, http.MethodGet, "/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"room_name":"Room A"`)
}

func TestStudentHandlers(t *testing.T) {
	svc := &stubStudentService{}
	r := gin.New()
	c := NewStudentController(svc)
	r.POST("/students", c.CreateStudent)
	r.GET("/students/:id", c.GetStudentByID)

	w, _ := perform(t, r, http.MethodPost, "/students", map[string]interface{}{"full_name": "Tran Minh Anh", "phone": "0901234567"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created.Phone)
	assert.Equal(t, "0901234567", *svc.created.Phone)

	w, _ = perform(t, r, http.MethodPost, "/students", map[string]interface{}{"full_name": "A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = apperrors.ErrStudentNotFound
	w, env := perform(t, r, http.MethodGet, "/students/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func enrollmentRouter(svc *stubEnrollmentService) *gin.Engine {
	r := gin.New()
	c := NewEnrollmentController(svc)
	r.POST("/courses/:id/enrollments", c.Enroll)
	r.GET("/courses/:id/enrollments", c.ListByCourse)
	r.DELETE("/enrollments/:id", c.Unenroll)
	return r
}

func TestEnrollHandler(t *testing.T) {
	svc := &stubEnrollmentService{}
	r := enrollmentRouter(svc)
	course, student := uuid.New(), uuid.New()

	w, env := perform(t, r, http.MethodPost, "/courses/"+course.String()+"/enrollments", map[string]string{"student_id": student.String()})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, course, svc.course)
	assert.Equal(t, student, svc.student)
	assert.Contains(t, string(env.Data), `"status":"UNPAID"`)

	w, _ = perform(t, r, http.MethodPost, "/courses/"+course.String()+"/enrollments", map[string]string{"student_id": "s1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = apperrors.ErrAlreadyEnrolled
	w, _ = perform(t, r, http.MethodPost, "/courses/"+course.String()+"/enrollments", map[string]string{"student_id": student.String()})
	assert.Equal(t, http.StatusConflict, w.Code)

	svc.err = apperrors.ErrStudentNotFound
	w, _ = perform(t, r, http.MethodPost, "/courses/"+course.String()+"/enrollments", map[string]string{"student_id": student.String()})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnrollmentListAndRemove(t *testing.T) {
	svc := &stubEnrollmentService{}
	r := enrollmentRouter(svc)

	w, env := perform(t, r, http.MethodGet, "/courses/"+uuid.NewString()+"/enrollments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"student_name":"Le Bao"`)
	assert.Contains(t, string(env.Data), `"status":"PAID"`)

	w, _ = perform(t, r, http.MethodDelete, "/enrollments/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	svc.err = apperrors.ErrEnrollmentNotFound
	w, _ = perform(t, r, http.MethodDelete, "/enrollments/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
