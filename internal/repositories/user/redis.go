package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix = "user:"
	adminsKey     = "admins"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func userKey(userID string) string {
	return userKeyPrefix + userID
}

// GetUser retrieves a user by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, userKey(input.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return decodeUser(userJSON)
}

// GetOrCreateUser retrieves a user from Redis, creating an empty one if it does not exist
func (r *redisRepository) GetOrCreateUser(ctx context.Context, input *GetOrCreateUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := json.Marshal(newUser(input.UserID))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	// SETNX leaves an existing record untouched
	if err := r.client.SetNX(ctx, userKey(input.UserID), userJSON, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetUser(ctx, &GetUserInput{
		UserID: input.UserID,
	})
}

// SetAdmin updates the admin flag and the admin index in Redis
func (r *redisRepository) SetAdmin(ctx context.Context, input *SetAdminInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	return r.updateUser(ctx, input.UserID, func(user *models.User) bool {
		user.IsAdmin = input.IsAdmin
		return true
	}, func(pipe redis.Pipeliner) {
		if input.IsAdmin {
			pipe.SAdd(ctx, adminsKey, input.UserID)
		} else {
			pipe.SRem(ctx, adminsKey, input.UserID)
		}
	})
}

// ListAdmins retrieves every admin from Redis
func (r *redisRepository) ListAdmins(ctx context.Context, input *ListAdminsInput) (*ListAdminsOutput, error) {
	userIDs, err := r.client.SMembers(ctx, adminsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin IDs: %w", err)
	}

	if len(userIDs) == 0 {
		return &ListAdminsOutput{Users: []*models.User{}}, nil
	}

	sort.Strings(userIDs)

	pipe := r.client.Pipeline()
	userCommands := make([]*redis.StringCmd, len(userIDs))
	for i, userID := range userIDs {
		userCommands[i] = pipe.Get(ctx, userKey(userID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get admins: %w", err)
	}

	users := make([]*models.User, 0, len(userIDs))
	for i, cmd := range userCommands {
		userJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get admin %s: %w", userIDs[i], err)
		}

		user, err := decodeUser(userJSON)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return &ListAdminsOutput{
		Users: users,
	}, nil
}

// AddSubscriber adds a chat to the user's subscribers in Redis
func (r *redisRepository) AddSubscriber(ctx context.Context, input *AddSubscriberInput) (*AddSubscriberOutput, error) {
	if input == nil || input.UserID == "" || input.Chat.ChatID == "" {
		return nil, errors.New("input, user ID and chat ID cannot be empty")
	}

	var added bool
	err := r.updateUser(ctx, input.UserID, func(user *models.User) bool {
		added = user.Subscribe(input.Chat)
		return added
	}, nil)
	if err != nil {
		return nil, err
	}

	return &AddSubscriberOutput{
		Added: added,
	}, nil
}

// RemoveSubscriber removes a chat from the user's subscribers in Redis
func (r *redisRepository) RemoveSubscriber(ctx context.Context, input *RemoveSubscriberInput) (*RemoveSubscriberOutput, error) {
	if input == nil || input.UserID == "" || input.Chat.ChatID == "" {
		return nil, errors.New("input, user ID and chat ID cannot be empty")
	}

	var removed bool
	err := r.updateUser(ctx, input.UserID, func(user *models.User) bool {
		removed = user.Unsubscribe(input.Chat)
		return removed
	}, nil)
	if err != nil {
		return nil, err
	}

	return &RemoveSubscriberOutput{
		Removed: removed,
	}, nil
}

// RateUser stores a rating on the user in Redis
func (r *redisRepository) RateUser(ctx context.Context, input *RateUserInput) error {
	if input == nil || input.UserID == "" || input.RaterID == "" {
		return errors.New("input, user ID and rater ID cannot be empty")
	}

	return r.updateUser(ctx, input.UserID, func(user *models.User) bool {
		user.Rate(input.RaterID, input.Liked)
		return true
	}, nil)
}

// updateUser applies mutate to a user under WATCH, starting from an empty user if none is stored.
// Nothing is written when mutate returns false.
func (r *redisRepository) updateUser(ctx context.Context, userID string, mutate func(user *models.User) bool, extra func(pipe redis.Pipeliner)) error {
	key := userKey(userID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		user := newUser(userID)

		userJSON, err := tx.Get(ctx, key).Result()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("failed to get user: %w", err)
		default:
			if user, err = decodeUser(userJSON); err != nil {
				return err
			}
		}

		if !mutate(user) {
			return nil
		}

		updatedJSON, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			if extra != nil {
				extra(pipe)
			}
			return nil
		})
		return err
	}, key)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func newUser(userID string) *models.User {
	return &models.User{
		ID:          userID,
		Subscribers: []models.Chat{},
		Rating:      []models.Rating{},
	}
}

func decodeUser(userJSON string) (*models.User, error) {
	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}
