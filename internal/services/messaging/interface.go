package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lobbyboard/internal/services/messaging Service

import (
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/models"
)

// Service renders every user-facing text
type Service interface {
	// Get returns a catalog message without template data
	Get(id MessageID) string

	// Format renders a catalog message with template data
	Format(id MessageID, data map[string]any) string

	// RoomList renders the published rooms, or the empty notice when there are none
	RoomList(listings []RoomListing) string

	// AdminList renders the admin IDs
	AdminList(userIDs []string) string

	// RoomAnnouncement tells subscribers a room opened
	RoomAnnouncement(room *models.Room) string

	// ExpiryWarning tells the owner the room goes away after remaining
	ExpiryWarning(room *models.Room, remaining time.Duration) string

	// ExpiryNotice tells the owner the room was removed
	ExpiryNotice(room *models.Room) string
}
