package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/pkg/logger"
)

// RoomRepository handles room database operations
type RoomRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: psql,
	}
}

// Create inserts a room and fills in its id
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Insert("rooms").
		Columns("room_name", "capacity").
		Values(room.RoomName, room.Capacity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create room query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&room.ID); err != nil {
		return fmt.Errorf("error creating room: %w", err)
	}
	return nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	sql, args, err := r.sb.Select("id", "room_name", "capacity").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room := &models.Room{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&room.ID, &room.RoomName, &room.Capacity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting room by ID: %w", err)
	}
	return room, nil
}

// GetByIDs resolves a set of rooms in one query. Unknown ids are absent from the map.
func (r *RoomRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Room, error) {
	rooms := make(map[uuid.UUID]models.Room, len(ids))
	if len(ids) == 0 {
		return rooms, nil
	}

	sql, args, err := r.sb.Select("id", "room_name", "capacity").
		From("rooms").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("count", len(ids)).Msg("Error querying rooms")
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.RoomName, &room.Capacity); err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms[room.ID] = room
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}
	return rooms, nil
}

// List returns every room ordered by name
func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	sql, args, err := r.sb.Select("id", "room_name", "capacity").
		From("rooms").
		OrderBy("room_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying rooms")
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []models.Room{}
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.RoomName, &room.Capacity); err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}
	return rooms, nil
}

// Count returns the number of rooms
func (r *RoomRepository) Count(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("rooms").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count rooms query: %w", err)
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting rooms: %w", err)
	}
	return n, nil
}
