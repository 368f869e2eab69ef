package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/lobbyboard/internal/common/uuid"
	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix       = "room:"
	ownerRoomsKeyPrefix = "owner_rooms:"
	codeRoomsKeyPrefix  = "code_rooms:"
	allRoomsKey         = "rooms"
)

var (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidField is returned when an update names an unknown field or an unknown enum label
	ErrInvalidField = errors.New("invalid room field")
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// IDGenerator assigns IDs to new rooms; defaults to random UUIDs
	IDGenerator uuid.Generator
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ids    uuid.Generator
}

// NewRedis creates a new Redis-backed room repository
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

	ids := cfg.IDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ids:    ids,
	}, nil
}

func roomKey(roomID string) string {
	return roomKeyPrefix + roomID
}

func ownerRoomsKey(ownerID string) string {
	return ownerRoomsKeyPrefix + ownerID
}

func codeRoomsKey(code string) string {
	return codeRoomsKeyPrefix + strings.ToUpper(code)
}

// CreateRoom stores a new room in Redis
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || input.Room == nil {
		return nil, errors.New("input and room cannot be nil")
	}

	if input.Room.Owner.ID == "" {
		return nil, errors.New("room owner ID cannot be empty")
	}

	room := *input.Room
	room.ID = r.ids.NewID()

	roomJSON, err := json.Marshal(room)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal room: %w", err)
	}

	// The room and its indexes are written in one MULTI/EXEC
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, roomKey(room.ID), roomJSON, 0)
	pipe.SAdd(ctx, allRoomsKey, room.ID)
	pipe.SAdd(ctx, ownerRoomsKey(room.Owner.ID), room.ID)
	pipe.SAdd(ctx, codeRoomsKey(room.Code), room.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return &CreateRoomOutput{
		RoomID: room.ID,
	}, nil
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := r.client.Get(ctx, roomKey(input.RoomID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// GetRoomsByOwner retrieves all rooms of an owner from Redis
func (r *redisRepository) GetRoomsByOwner(ctx context.Context, input *GetRoomsByOwnerInput) (*GetRoomsByOwnerOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	rooms, err := r.getRoomsInSet(ctx, ownerRoomsKey(input.OwnerID))
	if err != nil {
		return nil, err
	}

	return &GetRoomsByOwnerOutput{
		Rooms: rooms,
	}, nil
}

// GetRoomByOwnerAndCode retrieves the owner's room with the given code
func (r *redisRepository) GetRoomByOwnerAndCode(ctx context.Context, input *GetRoomByOwnerAndCodeInput) (*models.Room, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	rooms, err := r.getRoomsInSet(ctx, ownerRoomsKey(input.OwnerID))
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(input.Code)
	for _, room := range rooms {
		if strings.EqualFold(room.Code, code) {
			return room, nil
		}
	}

	return nil, ErrRoomNotFound
}

// GetRoomByCode retrieves the oldest room with the given code
func (r *redisRepository) GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error) {
	if input == nil || strings.TrimSpace(input.Code) == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	rooms, err := r.getRoomsInSet(ctx, codeRoomsKey(strings.TrimSpace(input.Code)))
	if err != nil {
		return nil, err
	}

	if len(rooms) == 0 {
		return nil, ErrRoomNotFound
	}

	return rooms[0], nil
}

// UpdateRoomField sets a single field of a room in Redis
func (r *redisRepository) UpdateRoomField(ctx context.Context, input *UpdateRoomFieldInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.updateRoom(ctx, input.RoomID, func(room *models.Room) error {
		switch input.Field {
		case models.RoomFieldCode:
			room.Code = strings.ToUpper(strings.TrimSpace(input.Value))
		case models.RoomFieldHost:
			room.Host = strings.TrimSpace(input.Value)
		case models.RoomFieldMap:
			m, ok := models.ParseMap(input.Value)
			if !ok {
				return fmt.Errorf("%w: unknown map %q", ErrInvalidField, input.Value)
			}
			room.Map = m
		case models.RoomFieldGameMode:
			g, ok := models.ParseGameMode(input.Value)
			if !ok {
				return fmt.Errorf("%w: unknown game mode %q", ErrInvalidField, input.Value)
			}
			room.GameMode = g
		default:
			return fmt.Errorf("%w: %q", ErrInvalidField, input.Field)
		}
		return nil
	})
}

// RenewRoom resets the creation time of a room in Redis
func (r *redisRepository) RenewRoom(ctx context.Context, input *RenewRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.updateRoom(ctx, input.RoomID, func(room *models.Room) error {
		room.CreatedAt = input.CreatedAt
		return nil
	})
}

// DeleteRoom removes a room and its index entries from Redis
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	// Get the room first to find its index entries
	room, err := r.GetRoom(ctx, &GetRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, roomKey(room.ID))
	pipe.SRem(ctx, allRoomsKey, room.ID)
	pipe.SRem(ctx, ownerRoomsKey(room.Owner.ID), room.ID)
	pipe.SRem(ctx, codeRoomsKey(room.Code), room.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// ListRooms retrieves all rooms from Redis
func (r *redisRepository) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	rooms, err := r.getRoomsInSet(ctx, allRoomsKey)
	if err != nil {
		return nil, err
	}

	return &ListRoomsOutput{
		Rooms: rooms,
	}, nil
}

// updateRoom applies mutate to a room under WATCH so concurrent writers cannot interleave
func (r *redisRepository) updateRoom(ctx context.Context, roomID string, mutate func(room *models.Room) error) error {
	key := roomKey(roomID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		roomJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to get room: %w", err)
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		oldCode := room.Code
		if err := mutate(&room); err != nil {
			return err
		}

		updatedJSON, err := json.Marshal(room)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			if !strings.EqualFold(oldCode, room.Code) {
				pipe.SRem(ctx, codeRoomsKey(oldCode), room.ID)
				pipe.SAdd(ctx, codeRoomsKey(room.Code), room.ID)
			}
			return nil
		})
		return err
	}, key)

	if err != nil {
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrInvalidField) {
			return err
		}
		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

// getRoomsInSet loads every room whose ID is a member of the given set, oldest first
func (r *redisRepository) getRoomsInSet(ctx context.Context, setKey string) ([]*models.Room, error) {
	roomIDs, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room IDs: %w", err)
	}

	if len(roomIDs) == 0 {
		return []*models.Room{}, nil
	}

	// Get all room records in one round trip
	pipe := r.client.Pipeline()
	roomCommands := make(map[string]*redis.StringCmd, len(roomIDs))

	for _, roomID := range roomIDs {
		roomCommands[roomID] = pipe.Get(ctx, roomKey(roomID))
	}

	// redis.Nil for a single key is expected when a room vanished between the two reads
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	rooms := make([]*models.Room, 0, len(roomIDs))
	for roomID, cmd := range roomCommands {
		roomJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get room %s: %w", roomID, err)
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return nil, fmt.Errorf("failed to unmarshal room %s: %w", roomID, err)
		}

		rooms = append(rooms, &room)
	}

	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].CreatedAt.Equal(rooms[j].CreatedAt) {
			return rooms[i].ID < rooms[j].ID
		}
		return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
	})

	return rooms, nil
}
