package room

import (
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/models"
)

// CreateRoomInput contains parameters for storing a new room
type CreateRoomInput struct {
	// Room is stored as given; its ID is assigned by the repository
	Room *models.Room
}

// CreateRoomOutput contains the result of storing a new room
type CreateRoomOutput struct {
	RoomID string
}

type GetRoomInput struct {
	RoomID string
}

type GetRoomsByOwnerInput struct {
	OwnerID string
}

type GetRoomsByOwnerOutput struct {
	Rooms []*models.Room
}

type GetRoomByOwnerAndCodeInput struct {
	OwnerID string
	Code    string
}

type GetRoomByCodeInput struct {
	Code string
}

// UpdateRoomFieldInput contains parameters for editing one field of a room
type UpdateRoomFieldInput struct {
	RoomID string
	Field  models.RoomField

	// Value is the new code, host name or enum label
	Value string
}

type RenewRoomInput struct {
	RoomID    string
	CreatedAt time.Time
}

type DeleteRoomInput struct {
	RoomID string
}

type ListRoomsInput struct {
}

type ListRoomsOutput struct {
	Rooms []*models.Room
}
