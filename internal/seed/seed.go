package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/linguacrm/internal/app/models"
)

// DefaultRooms are created on first boot so schedules can be expanded right away
var DefaultRooms = []models.Room{
	{RoomName: "Room A", Capacity: 12},
	{RoomName: "Room B", Capacity: 12},
	{RoomName: "Room C", Capacity: 20},
	{RoomName: "Online", Capacity: 30},
}

// RoomStore is the part of the room repository seeding needs
type RoomStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, room *models.Room) error
}

// CreateDefaultData creates the default rooms when the rooms table is empty.
// Individual failures are collected and returned together.
func CreateDefaultData(ctx context.Context, rooms RoomStore, lgr zerolog.Logger) error {
	n, err := rooms.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if n > 0 {
		lgr.Debug().Int("rooms", n).Msg("Rooms present, skipping default data")
		return nil
	}

	lgr.Info().Msg("Creating default rooms...")
	var finalErr error
	for _, r := range DefaultRooms {
		room := r
		if err := rooms.Create(ctx, &room); err != nil {
			lgr.Error().Err(err).Str("room", room.RoomName).Msg("Error creating default room")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("room", room.RoomName).Str("id", room.ID.String()).Msg("Default room created")
	}
	return finalErr
}
