package models

import "github.com/google/uuid"

// Room is a classroom of the school
type Room struct {
	ID       uuid.UUID `json:"id" db:"id"`
	RoomName string    `json:"room_name" db:"room_name"`
	Capacity int       `json:"capacity" db:"capacity"`
}
