package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/logger"
)

// LessonDetailRepository handles lesson session database operations
type LessonDetailRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewLessonDetailRepository creates a new LessonDetailRepository
func NewLessonDetailRepository(db DBTX) *LessonDetailRepository {
	return &LessonDetailRepository{
		db: db,
		sb: psql,
	}
}

// WithTx returns a copy of the repository bound to tx
func (r *LessonDetailRepository) WithTx(tx pgx.Tx) *LessonDetailRepository {
	return &LessonDetailRepository{db: tx, sb: r.sb}
}

var lessonColumns = []string{
	"l.id", "l.created_at", "l.course_id", "l.teacher_id", "l.room_id", "l.start_time", "l.end_time", "l.status",
}

// selectJoined loads sessions with course name, room and teacher attached
func (r *LessonDetailRepository) selectJoined() squirrel.SelectBuilder {
	cols := append(append([]string{}, lessonColumns...),
		"c.course_name",
		"rm.room_name", "rm.capacity",
		"t.first_name", "t.last_name", "t.email",
	)
	return r.sb.Select(cols...).
		From("lesson_details l").
		Join("courses c ON c.id = l.course_id").
		Join("rooms rm ON rm.id = l.room_id").
		Join("teachers t ON t.id = l.teacher_id")
}

func scanJoinedLesson(row pgx.Row) (*models.LessonDetail, error) {
	var (
		l          models.LessonDetail
		courseName string
		room       models.Room
		teacher    models.Teacher
	)
	err := row.Scan(
		&l.ID, &l.CreatedAt, &l.CourseID, &l.TeacherID, &l.RoomID, &l.StartTime, &l.EndTime, &l.Status,
		&courseName,
		&room.RoomName, &room.Capacity,
		&teacher.FirstName, &teacher.LastName, &teacher.Email,
	)
	if err != nil {
		return nil, err
	}
	room.ID = l.RoomID
	teacher.ID = l.TeacherID
	l.CourseName = &courseName
	l.Room = &room
	l.Teacher = &teacher
	return &l, nil
}

func (r *LessonDetailRepository) queryJoined(ctx context.Context, q squirrel.SelectBuilder) ([]models.LessonDetail, error) {
	sql, args, err := q.OrderBy("l.start_time ASC", "l.id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list lesson details SQL")
		return nil, fmt.Errorf("failed to build list lesson details query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list lesson details query")
		return nil, fmt.Errorf("error querying lesson details: %w", err)
	}
	defer rows.Close()

	lessons := []models.LessonDetail{}
	for rows.Next() {
		l, err := scanJoinedLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning lesson detail row: %w", err)
		}
		lessons = append(lessons, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson detail rows: %w", err)
	}
	return lessons, nil
}

// Create inserts one session and fills in its generated id and creation time
func (r *LessonDetailRepository) Create(ctx context.Context, l *models.LessonDetail) error {
	sql, args, err := r.sb.Insert("lesson_details").
		Columns("course_id", "teacher_id", "room_id", "start_time", "end_time", "status").
		Values(l.CourseID, l.TeacherID, l.RoomID, l.StartTime, l.EndTime, l.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create lesson detail SQL")
		return fmt.Errorf("failed to build create lesson detail query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&l.ID, &l.CreatedAt); err != nil {
		return fmt.Errorf("error creating lesson detail: %w", err)
	}
	return nil
}

// GetByID retrieves one session with its relations
func (r *LessonDetailRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LessonDetail, error) {
	sql, args, err := r.selectJoined().
		Where(squirrel.Eq{"l.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get lesson detail query: %w", err)
	}

	l, err := scanJoinedLesson(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("lessonDetailID", id.String()).Msg("Error scanning lesson detail row")
		return nil, fmt.Errorf("error getting lesson detail by ID: %w", err)
	}
	return l, nil
}

// ListByCourse returns every session of a course ordered by start
func (r *LessonDetailRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.LessonDetail, error) {
	return r.queryJoined(ctx, r.selectJoined().Where(squirrel.Eq{"l.course_id": courseID}))
}

// ListByTeacher returns the sessions a teacher runs entirely inside [from, to]
func (r *LessonDetailRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error) {
	return r.queryJoined(ctx, r.selectJoined().Where(squirrel.And{
		squirrel.Eq{"l.teacher_id": teacherID},
		squirrel.GtOrEq{"l.start_time": from},
		squirrel.LtOrEq{"l.end_time": to},
	}))
}

// ListByStudent returns the sessions of every course the student is enrolled in, inside [from, to]
func (r *LessonDetailRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error) {
	return r.queryJoined(ctx, r.selectJoined().
		Join("enrollments e ON e.course_id = l.course_id").
		Where(squirrel.And{
			squirrel.Eq{"e.student_id": studentID},
			squirrel.GtOrEq{"l.start_time": from},
			squirrel.LtOrEq{"l.end_time": to},
		}))
}

// UpdateStatus sets the status of one session
func (r *LessonDetailRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LessonStatus) error {
	return r.update(ctx, id, "status", status)
}

// UpdateTeacher overrides the teacher of one session
func (r *LessonDetailRepository) UpdateTeacher(ctx context.Context, id, teacherID uuid.UUID) error {
	return r.update(ctx, id, "teacher_id", teacherID)
}

func (r *LessonDetailRepository) update(ctx context.Context, id uuid.UUID, column string, value interface{}) error {
	sql, args, err := r.sb.Update("lesson_details").
		Set(column, value).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update lesson detail query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("lessonDetailID", id.String()).Str("column", column).Msg("Error updating lesson detail")
		return fmt.Errorf("error updating lesson detail: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
