package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/domain/schedule"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
)

type scheduleFixture struct {
	course  models.Course
	room    models.Room
	courses *fakeCourseStore
	lessons *fakeLessonStore
	rooms   *fakeRooms
}

func newScheduleFixture(start, end time.Time) *scheduleFixture {
	course := models.Course{
		ID:         uuid.New(),
		CourseName: "IELTS Foundation",
		StartDate:  start,
		EndDate:    end,
		TeacherID:  uuid.New(),
	}
	room := models.Room{ID: uuid.New(), RoomName: "Room A", Capacity: 12}
	return &scheduleFixture{
		course:  course,
		room:    room,
		courses: newFakeCourseStore(course),
		lessons: &fakeLessonStore{},
		rooms:   newFakeRooms(room),
	}
}

func (f *scheduleFixture) service(opts ScheduleOptions) ScheduleService {
	return NewScheduleService(f.courses, f.lessons, f.rooms, nil, nil, opts, zerolog.Nop())
}

func (f *scheduleFixture) rule(day time.Weekday, start, end string) schedule.RecurrenceRule {
	return schedule.RecurrenceRule{
		DayOfWeek: day,
		Start:     schedule.MustParseClockTime(start),
		End:       schedule.MustParseClockTime(end),
		RoomID:    f.room.ID,
	}
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandSchedule_PersistsEverySession(t *testing.T) {
	f := newScheduleFixture(utcDate(2024, 1, 1), utcDate(2024, 1, 14))
	svc := f.service(ScheduleOptions{})

	created, err := svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{
		f.rule(time.Monday, "08:00", "10:00"),
		f.rule(time.Wednesday, "14:00", "15:30"),
	})
	require.NoError(t, err)
	require.Len(t, created, 4)
	assert.Len(t, f.lessons.rows, 4)

	want := []time.Time{
		time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC),
	}
	for i, l := range created {
		assert.Equal(t, want[i], l.StartTime, "session %d", i)
		assert.Equal(t, f.course.ID, l.CourseID)
		assert.Equal(t, f.course.TeacherID, l.TeacherID)
		assert.Equal(t, f.room.ID, l.RoomID)
		assert.Equal(t, models.LessonStatusNotYetOccurred, l.Status)
		assert.NotEqual(t, uuid.Nil, l.ID)
		assert.True(t, l.StartTime.Before(l.EndTime))
	}
}

func TestExpandSchedule_UsesConfiguredLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	f := newScheduleFixture(utcDate(2024, 1, 2), utcDate(2024, 1, 2))
	svc := f.service(ScheduleOptions{Location: loc})

	created, err := svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{
		f.rule(time.Tuesday, "18:00", "19:30"),
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC), created[0].StartTime.UTC())
}

func TestExpandSchedule_CourseNotFound(t *testing.T) {
	f := newScheduleFixture(utcDate(2024, 1, 1), utcDate(2024, 1, 14))
	svc := f.service(ScheduleOptions{})

	created, err := svc.ExpandSchedule(context.Background(), uuid.New(), []schedule.RecurrenceRule{
		f.rule(time.Monday, "08:00", "10:00"),
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Empty(t, created)
	assert.Zero(t, f.lessons.calls)
}

func TestExpandSchedule_StopsAtFirstFailedWrite(t *testing.T) {
	// five Mondays
	f := newScheduleFixture(utcDate(2025, 1, 6), utcDate(2025, 2, 3))
	f.lessons.failOn = 3
	svc := f.service(ScheduleOptions{})

	created, err := svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{
		f.rule(time.Monday, "09:00", "10:00"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPartialWrite)
	assert.ErrorIs(t, err, errStoreDown)

	var pw *apperrors.PartialWriteError
	require.True(t, errors.As(err, &pw))
	assert.Equal(t, 2, pw.Written)
	assert.Equal(t, 3, pw.Remaining)

	require.Len(t, created, 2)
	require.Len(t, f.lessons.rows, 2)
	assert.Equal(t, time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC), f.lessons.rows[0].StartTime)
	assert.Equal(t, time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC), f.lessons.rows[1].StartTime)
	assert.Equal(t, 3, f.lessons.calls)
}

func TestExpandSchedule_AtomicRollsBackWholeBatch(t *testing.T) {
	f := newScheduleFixture(utcDate(2025, 1, 6), utcDate(2025, 2, 3))
	staged := &fakeLessonStore{failOn: 3}
	tx := &fakeTransactor{staged: staged, target: f.lessons}
	svc := NewScheduleService(f.courses, f.lessons, f.rooms, tx,
		func(pgx.Tx) LessonDetailCreator { return staged },
		ScheduleOptions{AtomicExpansion: true}, zerolog.Nop())

	created, err := svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{
		f.rule(time.Monday, "09:00", "10:00"),
	})
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, apperrors.ErrPartialWrite)
	assert.Empty(t, created)
	assert.Empty(t, f.lessons.rows)
	assert.Equal(t, 1, tx.calls)
}

func TestExpandSchedule_AtomicCommits(t *testing.T) {
	f := newScheduleFixture(utcDate(2025, 1, 6), utcDate(2025, 2, 3))
	staged := &fakeLessonStore{}
	tx := &fakeTransactor{staged: staged, target: f.lessons}
	svc := NewScheduleService(f.courses, f.lessons, f.rooms, tx,
		func(pgx.Tx) LessonDetailCreator { return staged },
		ScheduleOptions{AtomicExpansion: true}, zerolog.Nop())

	created, err := svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{
		f.rule(time.Monday, "09:00", "10:00"),
	})
	require.NoError(t, err)
	assert.Len(t, created, 5)
	assert.Len(t, f.lessons.rows, 5)
}

func TestExpandSchedule_EmptyRules(t *testing.T) {
	f := newScheduleFixture(utcDate(2024, 1, 1), utcDate(2024, 1, 14))
	svc := f.service(ScheduleOptions{})

	created, err := svc.ExpandSchedule(context.Background(), f.course.ID, nil)
	require.NoError(t, err)
	assert.NotNil(t, created)
	assert.Empty(t, created)
	assert.Zero(t, f.lessons.calls)
}

func TestExpandSchedule_RejectsBadRulesBeforeWriting(t *testing.T) {
	f := newScheduleFixture(utcDate(2024, 1, 1), utcDate(2024, 1, 14))
	svc := f.service(ScheduleOptions{})

	inverted := f.rule(time.Monday, "10:00", "08:00")
	_, err := svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{inverted})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	unknownRoom := f.rule(time.Monday, "08:00", "10:00")
	unknownRoom.RoomID = uuid.New()
	_, err = svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{
		f.rule(time.Tuesday, "08:00", "10:00"),
		unknownRoom,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.ErrorContains(t, err, "schedule 1")

	assert.Zero(t, f.lessons.calls)
}

func TestExpandSchedule_RerunDuplicates(t *testing.T) {
	f := newScheduleFixture(utcDate(2024, 1, 1), utcDate(2024, 1, 14))
	svc := f.service(ScheduleOptions{})
	rules := []schedule.RecurrenceRule{f.rule(time.Monday, "08:00", "10:00")}

	_, err := svc.ExpandSchedule(context.Background(), f.course.ID, rules)
	require.NoError(t, err)
	_, err = svc.ExpandSchedule(context.Background(), f.course.ID, rules)
	require.NoError(t, err)

	assert.Len(t, f.lessons.rows, 4)
}

func TestWeeklySchedule(t *testing.T) {
	f := newScheduleFixture(utcDate(2024, 1, 1), utcDate(2024, 1, 28))
	svc := f.service(ScheduleOptions{})

	ghost := uuid.New()
	f.rooms.rooms[ghost] = models.Room{ID: ghost}
	ghostRule := f.rule(time.Friday, "17:00", "18:00")
	ghostRule.RoomID = ghost

	_, err := svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{
		f.rule(time.Monday, "08:00", "10:00"),
		f.rule(time.Wednesday, "14:00", "15:30"),
		ghostRule,
	})
	require.NoError(t, err)
	delete(f.rooms.rooms, ghost)

	patterns, err := svc.WeeklySchedule(context.Background(), f.course.ID)
	require.NoError(t, err)
	require.Len(t, patterns, 3)

	byDay := map[time.Weekday]schedule.WeeklyPattern{}
	for _, p := range patterns {
		byDay[p.DayOfWeek] = p
	}
	assert.Equal(t, "Room A", byDay[time.Monday].RoomName)
	assert.Equal(t, "08:00", byDay[time.Monday].Start.String())
	assert.Equal(t, "15:30", byDay[time.Wednesday].End.String())
	assert.Equal(t, ghost.String(), byDay[time.Friday].RoomName)
}

func TestWeeklySchedule_RoomLookupFailureFallsBack(t *testing.T) {
	f := newScheduleFixture(utcDate(2024, 1, 1), utcDate(2024, 1, 14))
	svc := f.service(ScheduleOptions{})
	_, err := svc.ExpandSchedule(context.Background(), f.course.ID, []schedule.RecurrenceRule{
		f.rule(time.Monday, "08:00", "10:00"),
	})
	require.NoError(t, err)

	f.rooms.err = errStoreDown
	patterns, err := svc.WeeklySchedule(context.Background(), f.course.ID)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, f.room.ID.String(), patterns[0].RoomName)
}

func TestWeeklySchedule_CourseNotFound(t *testing.T) {
	f := newScheduleFixture(utcDate(2024, 1, 1), utcDate(2024, 1, 14))
	_, err := f.service(ScheduleOptions{}).WeeklySchedule(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
