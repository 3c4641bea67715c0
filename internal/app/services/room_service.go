package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
	"github.com/yigit/linguacrm/internal/pkg/dberrors"
	"github.com/yigit/linguacrm/internal/pkg/validation"
)

// RoomService defines the interface for room-related operations
type RoomService interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// roomServiceImpl implements the RoomService interface
type roomServiceImpl struct {
	rooms  RoomStore
	logger zerolog.Logger
}

// NewRoomService creates a new room service instance
func NewRoomService(rooms RoomStore, logger zerolog.Logger) RoomService {
	return &roomServiceImpl{
		rooms:  rooms,
		logger: logger,
	}
}

// CreateRoom validates and stores a room; room names are unique
func (s *roomServiceImpl) CreateRoom(ctx context.Context, room *models.Room) error {
	if room == nil {
		return fmt.Errorf("%w: room is nil", apperrors.ErrValidationFailed)
	}

	room.RoomName = strings.TrimSpace(room.RoomName)
	if !validation.NewStringValidation(room.RoomName).WithMaxLength(validation.PersonNameMaxLength).Validate() {
		return fmt.Errorf("%w: room_name must be 1-%d characters", apperrors.ErrValidationFailed, validation.PersonNameMaxLength)
	}
	if room.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", apperrors.ErrValidationFailed)
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoomNameExists
		}
		return fmt.Errorf("error creating room: %w", err)
	}

	s.logger.Info().Str("roomID", room.ID.String()).Str("roomName", room.RoomName).Msg("Room created")
	return nil
}

// ListRooms retrieves all rooms
func (s *roomServiceImpl) ListRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}
	return rooms, nil
}
