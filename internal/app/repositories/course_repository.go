package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: psql,
	}
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.created_at", "c.course_name", "c.start_date", "c.end_date", "c.tuition", "c.teacher_id",
		"t.first_name", "t.last_name", "t.email",
	).
		From("courses c").
		Join("teachers t ON t.id = c.teacher_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{Teacher: &models.Teacher{}}
	err := row.Scan(
		&course.ID, &course.CreatedAt, &course.CourseName, &course.StartDate, &course.EndDate, &course.Tuition, &course.TeacherID,
		&course.Teacher.FirstName, &course.Teacher.LastName, &course.Teacher.Email,
	)
	if err != nil {
		return nil, err
	}
	course.Teacher.ID = course.TeacherID
	return course, nil
}

// Create inserts a course and fills in its generated id and creation time
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_name", "start_date", "end_date", "tuition", "teacher_id").
		Values(course.CourseName, course.StartDate, course.EndDate, course.Tuition, course.TeacherID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course with its primary teacher
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return course, nil
}

// List returns every course, most recent start first
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	return r.query(ctx, r.selectCourses())
}

// ListByTeacher returns the courses whose primary teacher is teacherID, most recent start first
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	return r.query(ctx, r.selectCourses().Where(squirrel.Eq{"c.teacher_id": teacherID}))
}

func (r *CourseRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]models.Course, error) {
	sql, args, err := q.
		OrderBy("c.start_date DESC", "c.course_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// Update overwrites the editable fields of a course. Existing lesson sessions are left as they are.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("course_name", course.CourseName).
		Set("start_date", course.StartDate).
		Set("end_date", course.EndDate).
		Set("tuition", course.Tuition).
		Set("teacher_id", course.TeacherID).
		Where(squirrel.Eq{"id": course.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// Delete removes a course; its enrollments and lesson sessions go with it
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error deleting course")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
