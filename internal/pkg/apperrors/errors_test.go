package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialWriteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("persist sessions: %w", &PartialWriteError{Written: 2, Remaining: 3, Err: cause})

	assert.True(t, errors.Is(err, ErrPartialWrite))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrResourceNotFound))
	assert.Contains(t, err.Error(), "wrote 2 of 5 records")

	var pw *PartialWriteError
	assert.True(t, errors.As(err, &pw))
	assert.Equal(t, 2, pw.Written)
}

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewResourceNotFoundError("course 42 not found")
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, "course 42 not found", err.Error())

	assert.True(t, Is(NewValidationError("bad"), ErrBadRequest, ErrValidationFailed))
	assert.False(t, Is(NewBadRequestError("bad"), ErrConflict))

	ce := NewCustomError(ErrConflict, "").WithCode("X").WithStatusMsg("nope")
	assert.Equal(t, "conflict", ce.Error())
	assert.Equal(t, "X", ce.Code)
}

func TestEntitySentinelsMatchTaxonomy(t *testing.T) {
	for _, err := range []error{ErrCourseNotFound, ErrLessonDetailNotFound, ErrTeacherNotFound, ErrRoomNotFound, ErrStudentNotFound, ErrEnrollmentNotFound} {
		assert.ErrorIs(t, fmt.Errorf("lookup: %w", err), ErrResourceNotFound)
	}
	for _, err := range []error{ErrTeacherEmailExists, ErrRoomNameExists, ErrAlreadyEnrolled} {
		assert.ErrorIs(t, err, ErrResourceAlreadyExists)
	}
	assert.ErrorIs(t, ErrInvalidCourseRange, ErrValidationFailed)
	assert.ErrorIs(t, ErrInvalidLessonStatus, ErrValidationFailed)
	assert.Equal(t, "course: resource not found", ErrCourseNotFound.Error())
}
