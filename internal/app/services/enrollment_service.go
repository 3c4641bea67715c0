package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
	"github.com/yigit/linguacrm/internal/pkg/dberrors"
)

// EnrollmentService defines the operations linking students to courses
type EnrollmentService interface {
	Enroll(ctx context.Context, courseID, studentID uuid.UUID) (*models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Enrollment, error)
	Unenroll(ctx context.Context, id uuid.UUID) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	courses     CourseReader
	students    StudentStore
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(courses CourseReader, students StudentStore, enrollments EnrollmentStore, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		courses:     courses,
		students:    students,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Enroll adds a student to a course as UNPAID. A student is enrolled in a course at most once.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, courseID, studentID uuid.UUID) (*models.Enrollment, error) {
	if err := s.checkCourse(ctx, courseID); err != nil {
		return nil, err
	}

	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	enrollment := &models.Enrollment{
		CourseID:  courseID,
		StudentID: studentID,
		Status:    models.EnrollmentStatusUnpaid,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return nil, apperrors.ErrAlreadyEnrolled
		case dberrors.IsForeignKeyViolation(err):
			return nil, fmt.Errorf("%w: constraint %s", apperrors.ErrValidationFailed, dberrors.ConstraintName(err))
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	s.logger.Info().
		Str("courseID", courseID.String()).
		Str("studentID", studentID.String()).
		Str("enrollmentID", enrollment.ID.String()).
		Msg("Student enrolled")
	return enrollment, nil
}

// ListByCourse returns a course's enrollments with their students
func (s *enrollmentServiceImpl) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Enrollment, error) {
	if err := s.checkCourse(ctx, courseID); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// Unenroll removes one enrollment
func (s *enrollmentServiceImpl) Unenroll(ctx context.Context, id uuid.UUID) error {
	if err := s.enrollments.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	s.logger.Info().Str("enrollmentID", id.String()).Msg("Enrollment removed")
	return nil
}

func (s *enrollmentServiceImpl) checkCourse(ctx context.Context, courseID uuid.UUID) error {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if isNotFound(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error retrieving course: %w", err)
	}
	return nil
}
