package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lobbyboard/internal/repositories/room Repository

import (
	"context"

	"github.com/KirkDiggler/lobbyboard/internal/models"
)

// Repository defines the interface for room persistence
type Repository interface {
	// CreateRoom stores a new room and returns its generated ID
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// GetRoomsByOwner retrieves every room published by a user
	GetRoomsByOwner(ctx context.Context, input *GetRoomsByOwnerInput) (*GetRoomsByOwnerOutput, error)

	// GetRoomByOwnerAndCode retrieves the owner's room with the given code
	GetRoomByOwnerAndCode(ctx context.Context, input *GetRoomByOwnerAndCodeInput) (*models.Room, error)

	// GetRoomByCode retrieves any room with the given code
	GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error)

	// UpdateRoomField sets a single editable field
	UpdateRoomField(ctx context.Context, input *UpdateRoomFieldInput) error

	// RenewRoom moves the creation time forward so a restart honours a renewal
	RenewRoom(ctx context.Context, input *RenewRoomInput) error

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// ListRooms retrieves all rooms, oldest first
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)
}
