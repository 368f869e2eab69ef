package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/lobbyboard/internal/common/uuid Generator

// Generator hands out identifiers for new records
type Generator interface {
	NewID() string
}

// Random generates random (version 4) UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewID returns a new random UUID string
func (r *Random) NewID() string {
	return uuid.NewString()
}
