package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/app/repositories"
	"github.com/yigit/linguacrm/internal/db"
)

// Store interfaces are declared here, on the consuming side, so services can be tested
// against in-memory fakes. The repositories package provides the PostgreSQL versions.

// CourseReader looks up one course
type CourseReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

// CourseStore reads and writes courses
type CourseStore interface {
	CourseReader
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Course, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error)
}

// LessonDetailCreator inserts one session
type LessonDetailCreator interface {
	Create(ctx context.Context, l *models.LessonDetail) error
}

// LessonDetailStore reads and updates sessions
type LessonDetailStore interface {
	LessonDetailCreator
	GetByID(ctx context.Context, id uuid.UUID) (*models.LessonDetail, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.LessonDetail, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.LessonStatus) error
	UpdateTeacher(ctx context.Context, id, teacherID uuid.UUID) error
}

// RoomDirectory resolves room names
type RoomDirectory interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Room, error)
}

// RoomStore reads and writes rooms
type RoomStore interface {
	RoomDirectory
	Create(ctx context.Context, room *models.Room) error
	List(ctx context.Context) ([]models.Room, error)
}

// TeacherDirectory answers whether a teacher exists
type TeacherDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// TeacherStore reads and writes teachers
type TeacherStore interface {
	TeacherDirectory
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Teacher, error)
	List(ctx context.Context) ([]models.Teacher, error)
}

// StudentStore reads and writes students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// EnrollmentStore reads and writes enrollments
type EnrollmentStore interface {
	Create(ctx context.Context, e *models.Enrollment) error
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Enrollment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Transactor runs fn inside one database transaction; *db.PostgresDB satisfies it
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// isNotFound reports a repository miss
func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}
