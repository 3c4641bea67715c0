package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
	"github.com/yigit/linguacrm/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students StudentStore
	logger   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		students: students,
		logger:   logger,
	}
}

// CreateStudent validates and stores a student. A blank phone is stored as NULL.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	student.FullName = strings.TrimSpace(student.FullName)
	if !validation.NewStringValidation(student.FullName).WithMinLength(validation.NameMinLength).WithMaxLength(validation.NameMaxLength).Validate() {
		return fmt.Errorf("%w: full_name must be %d-%d characters", apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if student.Phone != nil {
		phone := strings.TrimSpace(*student.Phone)
		student.Phone = &phone
		if phone == "" {
			student.Phone = nil
		}
	}

	if err := s.students.Create(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Str("studentID", student.ID.String()).Msg("Student created")
	return nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// ListStudents retrieves all students
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}
