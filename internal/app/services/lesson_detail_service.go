package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
	"github.com/yigit/linguacrm/internal/pkg/dberrors"
)

// LessonDetailService defines the operations on individual lesson sessions
type LessonDetailService interface {
	ListByCourse(ctx context.Context, courseID uuid.UUID) (*models.Course, []models.LessonDetail, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.LessonStatus) (*models.LessonDetail, error)
	AssignTeacher(ctx context.Context, id, teacherID uuid.UUID) (*models.LessonDetail, error)
}

// lessonDetailServiceImpl implements the LessonDetailService interface
type lessonDetailServiceImpl struct {
	courses  CourseReader
	lessons  LessonDetailStore
	teachers TeacherDirectory
	logger   zerolog.Logger
}

// NewLessonDetailService creates a new lesson detail service instance
func NewLessonDetailService(courses CourseReader, lessons LessonDetailStore, teachers TeacherDirectory, logger zerolog.Logger) LessonDetailService {
	return &lessonDetailServiceImpl{
		courses:  courses,
		lessons:  lessons,
		teachers: teachers,
		logger:   logger,
	}
}

// ListByCourse returns the course together with its sessions ordered by start.
// Callers compare each session's teacher with the course teacher to flag substitutes.
func (s *lessonDetailServiceImpl) ListByCourse(ctx context.Context, courseID uuid.UUID) (*models.Course, []models.LessonDetail, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, apperrors.ErrCourseNotFound
		}
		return nil, nil, fmt.Errorf("error retrieving course: %w", err)
	}

	lessons, err := s.lessons.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving lesson details: %w", err)
	}
	return course, lessons, nil
}

// ListByTeacher returns the sessions a teacher runs inside [from, to]
func (s *lessonDetailServiceImpl) ListByTeacher(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error) {
	if err := validateWindow(from, to); err != nil {
		return nil, err
	}

	exists, err := s.teachers.Exists(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error checking teacher: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeacherNotFound
	}

	lessons, err := s.lessons.ListByTeacher(ctx, teacherID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher lesson details: %w", err)
	}
	return lessons, nil
}

// ListByStudent returns the sessions of the student's enrolled courses inside [from, to].
// A student with no enrollments gets an empty list.
func (s *lessonDetailServiceImpl) ListByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error) {
	if err := validateWindow(from, to); err != nil {
		return nil, err
	}

	lessons, err := s.lessons.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student lesson details: %w", err)
	}
	return lessons, nil
}

// UpdateStatus records attendance or cancellation of one session
func (s *lessonDetailServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LessonStatus) (*models.LessonDetail, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidLessonStatus, status)
	}

	if err := s.lessons.UpdateStatus(ctx, id, status); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrLessonDetailNotFound
		}
		return nil, fmt.Errorf("error updating lesson status: %w", err)
	}

	s.logger.Info().Str("lessonDetailID", id.String()).Str("status", string(status)).Msg("Lesson status updated")
	return s.reload(ctx, id)
}

// AssignTeacher sets a substitute teacher on one session
func (s *lessonDetailServiceImpl) AssignTeacher(ctx context.Context, id, teacherID uuid.UUID) (*models.LessonDetail, error) {
	exists, err := s.teachers.Exists(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error checking teacher: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeacherNotFound
	}

	if err := s.lessons.UpdateTeacher(ctx, id, teacherID); err != nil {
		switch {
		case isNotFound(err):
			return nil, apperrors.ErrLessonDetailNotFound
		case dberrors.IsForeignKeyViolation(err):
			// teacher removed between the check and the update
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error assigning teacher: %w", err)
	}

	s.logger.Info().Str("lessonDetailID", id.String()).Str("teacherID", teacherID.String()).Msg("Lesson teacher assigned")
	return s.reload(ctx, id)
}

func (s *lessonDetailServiceImpl) reload(ctx context.Context, id uuid.UUID) (*models.LessonDetail, error) {
	lesson, err := s.lessons.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrLessonDetailNotFound
		}
		return nil, fmt.Errorf("error retrieving lesson detail: %w", err)
	}
	return lesson, nil
}

func validateWindow(from, to time.Time) error {
	if from.After(to) {
		return fmt.Errorf("%w: from must not be after to", apperrors.ErrValidationFailed)
	}
	return nil
}
