package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
	"github.com/yigit/linguacrm/internal/pkg/dberrors"
	"github.com/yigit/linguacrm/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListCoursesByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses  CourseStore
	teachers TeacherDirectory
	logger   zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, teachers TeacherDirectory, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courses:  courses,
		teachers: teachers,
		logger:   logger,
	}
}

// validateCourse validates course data before database operations
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	course.CourseName = strings.TrimSpace(course.CourseName)
	nameOK := validation.NewStringValidation(course.CourseName).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !nameOK {
		return fmt.Errorf("%w: course_name must be %d-%d characters", apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	if course.StartDate.After(course.EndDate) {
		return apperrors.ErrInvalidCourseRange
	}

	if course.Tuition < 0 {
		return fmt.Errorf("%w: tuition must not be negative", apperrors.ErrValidationFailed)
	}

	if course.TeacherID == uuid.Nil {
		return fmt.Errorf("%w: teacher_id is required", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}
	if err := s.checkTeacher(ctx, course.TeacherID); err != nil {
		return err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		if mapped := courseWriteError(err, course.TeacherID); mapped != nil {
			return mapped
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("courseID", course.ID.String()).Str("courseName", course.CourseName).Msg("Course created")
	return nil
}

// UpdateCourse overwrites a course and returns it reloaded with its teacher.
// Sessions already expanded keep their dates and teacher.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}
	if err := s.checkTeacher(ctx, course.TeacherID); err != nil {
		return nil, err
	}

	if err := s.courses.Update(ctx, course); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		if mapped := courseWriteError(err, course.TeacherID); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	s.logger.Info().Str("courseID", course.ID.String()).Msg("Course updated")
	return s.GetCourseByID(ctx, course.ID)
}

// DeleteCourse removes a course together with its enrollments and sessions
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Str("courseID", id.String()).Msg("Course deleted")
	return nil
}

func (s *courseServiceImpl) checkTeacher(ctx context.Context, teacherID uuid.UUID) error {
	exists, err := s.teachers.Exists(ctx, teacherID)
	if err != nil {
		return fmt.Errorf("error checking teacher: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: teacher %s does not exist", apperrors.ErrValidationFailed, teacherID)
	}
	return nil
}

// courseWriteError maps constraint failures on the courses table, or returns nil
func courseWriteError(err error, teacherID uuid.UUID) error {
	switch {
	case dberrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: teacher %s does not exist", apperrors.ErrValidationFailed, teacherID)
	case dberrors.IsCheckViolation(err):
		return fmt.Errorf("%w: constraint %s", apperrors.ErrValidationFailed, dberrors.ConstraintName(err))
	}
	return nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// ListCourses retrieves all courses
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// ListCoursesByTeacher retrieves the courses a teacher leads
func (s *courseServiceImpl) ListCoursesByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	exists, err := s.teachers.Exists(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error checking teacher: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeacherNotFound
	}

	courses, err := s.courses.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}
