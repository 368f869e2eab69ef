package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lobbyboard/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/lobbyboard/internal/models"
)

// Repository defines the interface for user persistence
type Repository interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// GetOrCreateUser retrieves a user, storing an empty record first if none exists
	GetOrCreateUser(ctx context.Context, input *GetOrCreateUserInput) (*models.User, error)

	// SetAdmin grants or revokes admin rights, creating the user if needed
	SetAdmin(ctx context.Context, input *SetAdminInput) error

	// ListAdmins retrieves every user with admin rights
	ListAdmins(ctx context.Context, input *ListAdminsInput) (*ListAdminsOutput, error)

	// AddSubscriber adds a chat to a user's subscribers
	AddSubscriber(ctx context.Context, input *AddSubscriberInput) (*AddSubscriberOutput, error)

	// RemoveSubscriber removes a chat from a user's subscribers
	RemoveSubscriber(ctx context.Context, input *RemoveSubscriberInput) (*RemoveSubscriberOutput, error)

	// RateUser records one rater's opinion of a user
	RateUser(ctx context.Context, input *RateUserInput) error
}
