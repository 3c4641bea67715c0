package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/domain/schedule"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
)

// ScheduleService expands weekly rules into lesson sessions and reads them back as a weekly view
type ScheduleService interface {
	ExpandSchedule(ctx context.Context, courseID uuid.UUID, rules []schedule.RecurrenceRule) ([]models.LessonDetail, error)
	WeeklySchedule(ctx context.Context, courseID uuid.UUID) ([]schedule.WeeklyPattern, error)
}

// ScheduleOptions configures expansion
type ScheduleOptions struct {
	// Location is the school's zone; session instants are built in it
	Location *time.Location
	// AtomicExpansion writes a batch in one transaction instead of row by row
	AtomicExpansion bool
}

// TxLessonDetails binds a session writer to a transaction
type TxLessonDetails func(tx pgx.Tx) LessonDetailCreator

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	courses   CourseReader
	lessons   LessonDetailStore
	rooms     RoomDirectory
	tx        Transactor
	txLessons TxLessonDetails
	opts      ScheduleOptions
	logger    zerolog.Logger
}

// NewScheduleService creates a new schedule service instance.
// tx and txLessons are only used when opts.AtomicExpansion is set.
func NewScheduleService(
	courses CourseReader,
	lessons LessonDetailStore,
	rooms RoomDirectory,
	tx Transactor,
	txLessons TxLessonDetails,
	opts ScheduleOptions,
	logger zerolog.Logger,
) ScheduleService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &scheduleServiceImpl{
		courses:   courses,
		lessons:   lessons,
		rooms:     rooms,
		tx:        tx,
		txLessons: txLessons,
		opts:      opts,
		logger:    logger,
	}
}

// ExpandSchedule materializes rules over the course's date range with the course's primary
// teacher and persists every session. Re-running it creates the sessions again.
func (s *scheduleServiceImpl) ExpandSchedule(ctx context.Context, courseID uuid.UUID, rules []schedule.RecurrenceRule) ([]models.LessonDetail, error) {
	if err := schedule.ValidateRules(rules); err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if len(rules) == 0 {
		s.logger.Info().Str("courseID", courseID.String()).Msg("No schedules supplied, nothing to expand")
		return []models.LessonDetail{}, nil
	}

	if err := s.checkRooms(ctx, rules); err != nil {
		return nil, err
	}

	descriptors := schedule.Materialize(course.StartDate, course.EndDate, course.TeacherID, rules, s.opts.Location)

	var created []models.LessonDetail
	if s.opts.AtomicExpansion {
		created, err = s.persistAtomic(ctx, course.ID, descriptors)
	} else {
		created, err = NewSessionPersister(s.lessons, s.logger).Persist(ctx, course.ID, descriptors)
	}
	if err != nil {
		return created, fmt.Errorf("error expanding schedule for course %s: %w", courseID, err)
	}

	s.logger.Info().
		Str("courseID", courseID.String()).
		Int("rules", len(rules)).
		Int("sessions", len(created)).
		Bool("atomic", s.opts.AtomicExpansion).
		Msg("Course schedule expanded")
	return created, nil
}

// persistAtomic writes the batch in one transaction. On failure nothing is kept and the
// underlying write error is returned without partial-write details.
func (s *scheduleServiceImpl) persistAtomic(ctx context.Context, courseID uuid.UUID, descriptors []schedule.SessionDescriptor) ([]models.LessonDetail, error) {
	if s.tx == nil || s.txLessons == nil {
		return nil, errors.New("atomic expansion requires a transactor")
	}

	var created []models.LessonDetail
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := NewSessionPersister(s.txLessons(tx), s.logger).Persist(ctx, courseID, descriptors)
		if err != nil {
			var pw *apperrors.PartialWriteError
			if errors.As(err, &pw) {
				return pw.Err
			}
			return err
		}
		created = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// checkRooms rejects rules naming a room that is not on file, before anything is written
func (s *scheduleServiceImpl) checkRooms(ctx context.Context, rules []schedule.RecurrenceRule) error {
	ids := distinctRoomIDs(rules)
	rooms, err := s.rooms.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error resolving rooms: %w", err)
	}
	for i, rule := range rules {
		if _, ok := rooms[rule.RoomID]; !ok {
			return fmt.Errorf("schedule %d: %w: room %s does not exist", i, apperrors.ErrValidationFailed, rule.RoomID)
		}
	}
	return nil
}

func distinctRoomIDs(rules []schedule.RecurrenceRule) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rules))
	ids := make([]uuid.UUID, 0, len(rules))
	for _, r := range rules {
		if _, ok := seen[r.RoomID]; ok {
			continue
		}
		seen[r.RoomID] = struct{}{}
		ids = append(ids, r.RoomID)
	}
	return ids
}

// WeeklySchedule returns the distinct weekly slots of a course's sessions with room names
func (s *scheduleServiceImpl) WeeklySchedule(ctx context.Context, courseID uuid.UUID) ([]schedule.WeeklyPattern, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	lessons, err := s.lessons.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lesson details: %w", err)
	}

	slots := make([]schedule.Slot, 0, len(lessons))
	for _, l := range lessons {
		slots = append(slots, schedule.Slot{RoomID: l.RoomID, StartAt: l.StartTime, EndAt: l.EndTime})
	}
	patterns := schedule.SummarizeWeekly(slots, s.opts.Location)

	ids := make([]uuid.UUID, 0, len(patterns))
	for _, p := range patterns {
		ids = append(ids, p.RoomID)
	}
	rooms, err := s.rooms.GetByIDs(ctx, ids)
	if err != nil {
		// unresolved names fall back to room ids
		s.logger.Warn().Err(err).Str("courseID", courseID.String()).Msg("Could not resolve room names for weekly schedule")
		rooms = nil
	}

	return schedule.WithRoomNames(patterns, func(id uuid.UUID) (string, bool) {
		room, ok := rooms[id]
		return room.RoomName, ok
	}), nil
}
