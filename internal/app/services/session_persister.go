package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/domain/schedule"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
)

// SessionPersister writes materialized sessions one at a time
type SessionPersister struct {
	store  LessonDetailCreator
	logger zerolog.Logger
}

// NewSessionPersister creates a SessionPersister writing through store
func NewSessionPersister(store LessonDetailCreator, logger zerolog.Logger) *SessionPersister {
	return &SessionPersister{
		store:  store,
		logger: logger,
	}
}

// Persist creates one NOT_YET_OCCURRED lesson detail per descriptor, in input order, waiting for
// each write before the next. The first failure stops the batch: the rows already created are
// returned together with a *apperrors.PartialWriteError and are not removed.
func (p *SessionPersister) Persist(ctx context.Context, courseID uuid.UUID, descriptors []schedule.SessionDescriptor) ([]models.LessonDetail, error) {
	created := make([]models.LessonDetail, 0, len(descriptors))

	for i, d := range descriptors {
		lesson := models.LessonDetail{
			CourseID:  courseID,
			TeacherID: d.TeacherID,
			RoomID:    d.RoomID,
			StartTime: d.StartAt,
			EndTime:   d.EndAt,
			Status:    models.LessonStatusNotYetOccurred,
		}

		p.logger.Debug().
			Str("courseID", courseID.String()).
			Int("index", i).
			Time("startAt", d.StartAt).
			Msg("Creating lesson detail")

		if err := p.store.Create(ctx, &lesson); err != nil {
			p.logger.Error().Err(err).
				Str("courseID", courseID.String()).
				Int("written", len(created)).
				Int("remaining", len(descriptors)-len(created)).
				Msg("Lesson detail write failed, stopping batch")
			return created, &apperrors.PartialWriteError{
				Written:   len(created),
				Remaining: len(descriptors) - len(created),
				Err:       err,
			}
		}
		created = append(created, lesson)
	}

	return created, nil
}
