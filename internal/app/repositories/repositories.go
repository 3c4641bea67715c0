package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a single-row lookup matches nothing
var ErrNotFound = errors.New("record not found")

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so a repository can run inside a transaction
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql is the shared statement builder using PostgreSQL placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository       *CourseRepository
	EnrollmentRepository   *EnrollmentRepository
	LessonDetailRepository *LessonDetailRepository
	RoomRepository         *RoomRepository
	StudentRepository      *StudentRepository
	TeacherRepository      *TeacherRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:       NewCourseRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		LessonDetailRepository: NewLessonDetailRepository(db),
		RoomRepository:         NewRoomRepository(db),
		StudentRepository:      NewStudentRepository(db),
		TeacherRepository:      NewTeacherRepository(db),
	}
}
