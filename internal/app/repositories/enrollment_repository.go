package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: psql,
	}
}

// Create inserts an enrollment and fills in its id, creation time and status
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	if e.Status == "" {
		e.Status = models.EnrollmentStatusUnpaid
	}

	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "status").
		Values(e.StudentID, e.CourseID, e.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// ListByCourse returns the enrollments of a course with their students, by student name
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.created_at", "e.student_id", "e.course_id", "e.status",
		"s.created_at", "s.full_name", "s.phone",
	).
		From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Where(squirrel.Eq{"e.course_id": courseID}).
		OrderBy("s.full_name ASC", "e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", courseID.String()).Msg("Error querying enrollments")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []models.Enrollment{}
	for rows.Next() {
		e := models.Enrollment{Student: &models.Student{}}
		err := rows.Scan(
			&e.ID, &e.CreatedAt, &e.StudentID, &e.CourseID, &e.Status,
			&e.Student.CreatedAt, &e.Student.FullName, &e.Student.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		e.Student.ID = e.StudentID
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return enrollments, nil
}

// Delete removes one enrollment
func (r *EnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("enrollmentID", id.String()).Msg("Error deleting enrollment")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
