package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/domain/schedule"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
)

func descriptors(n int) []schedule.SessionDescriptor {
	teacher, room := uuid.New(), uuid.New()
	base := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	out := make([]schedule.SessionDescriptor, n)
	for i := range out {
		start := base.AddDate(0, 0, 7*i)
		out[i] = schedule.SessionDescriptor{TeacherID: teacher, RoomID: room, StartAt: start, EndAt: start.Add(90 * time.Minute)}
	}
	return out
}

func TestSessionPersister_WritesInOrder(t *testing.T) {
	store := &fakeLessonStore{}
	courseID := uuid.New()
	in := descriptors(3)

	out, err := NewSessionPersister(store, zerolog.Nop()).Persist(context.Background(), courseID, in)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for i, l := range out {
		assert.Equal(t, in[i].StartAt, l.StartTime)
		assert.Equal(t, in[i].EndAt, l.EndTime)
		assert.Equal(t, courseID, l.CourseID)
		assert.Equal(t, models.LessonStatusNotYetOccurred, l.Status)
		assert.Equal(t, store.rows[i].ID, l.ID)
	}
}

func TestSessionPersister_Empty(t *testing.T) {
	store := &fakeLessonStore{}
	out, err := NewSessionPersister(store, zerolog.Nop()).Persist(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, store.calls)
}

func TestSessionPersister_FirstWriteFails(t *testing.T) {
	store := &fakeLessonStore{failOn: 1}
	out, err := NewSessionPersister(store, zerolog.Nop()).Persist(context.Background(), uuid.New(), descriptors(4))

	assert.ErrorIs(t, err, apperrors.ErrPartialWrite)
	assert.Empty(t, out)
	assert.Equal(t, 1, store.calls)
	assert.Contains(t, err.Error(), "wrote 0 of 4 records")
}
