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

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) error
	GetTeacherByID(ctx context.Context, id uuid.UUID) (*models.Teacher, error)
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teachers TeacherStore
	logger   zerolog.Logger
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers TeacherStore, logger zerolog.Logger) TeacherService {
	return &teacherServiceImpl{
		teachers: teachers,
		logger:   logger,
	}
}

// CreateTeacher validates and stores a teacher. Emails are unique and stored lower-cased.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	if teacher == nil {
		return fmt.Errorf("%w: teacher is nil", apperrors.ErrValidationFailed)
	}

	teacher.FirstName = strings.TrimSpace(teacher.FirstName)
	teacher.LastName = strings.TrimSpace(teacher.LastName)
	teacher.Email = strings.ToLower(strings.TrimSpace(teacher.Email))

	if !validation.NewStringValidation(teacher.FirstName).WithMaxLength(validation.PersonNameMaxLength).Validate() {
		return fmt.Errorf("%w: first_name must be 1-%d characters", apperrors.ErrValidationFailed, validation.PersonNameMaxLength)
	}
	if !validation.NewStringValidation(teacher.LastName).WithRequired(false).WithMaxLength(validation.PersonNameMaxLength).Validate() {
		return fmt.Errorf("%w: last_name must be at most %d characters", apperrors.ErrValidationFailed, validation.PersonNameMaxLength)
	}
	if !validation.NewStringValidation(teacher.Email).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return fmt.Errorf("%w: email is not a valid address", apperrors.ErrValidationFailed)
	}

	if err := s.teachers.Create(ctx, teacher); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTeacherEmailExists
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}

	s.logger.Info().Str("teacherID", teacher.ID.String()).Msg("Teacher created")
	return nil
}

// GetTeacherByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id uuid.UUID) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

// ListTeachers retrieves all teachers
func (s *teacherServiceImpl) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}
