package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/redis/go-redis/v9"
)

// chatsKey is the set of every chat ID the bot has seen
const chatsKey = "chats"

// Config holds configuration for the Redis chat repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed chat repository
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

// SaveChat adds the chat to the known chats set
func (r *redisRepository) SaveChat(ctx context.Context, input *SaveChatInput) error {
	if input == nil || input.Chat.ChatID == "" {
		return errors.New("input and chat ID cannot be empty")
	}

	if err := r.client.SAdd(ctx, chatsKey, input.Chat.ChatID).Err(); err != nil {
		return fmt.Errorf("failed to save chat: %w", err)
	}

	return nil
}

// ListChats retrieves every known chat from Redis
func (r *redisRepository) ListChats(ctx context.Context, input *ListChatsInput) (*ListChatsOutput, error) {
	chatIDs, err := r.client.SMembers(ctx, chatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}

	sort.Strings(chatIDs)

	chats := make([]models.Chat, 0, len(chatIDs))
	for _, chatID := range chatIDs {
		chats = append(chats, models.Chat{ChatID: chatID})
	}

	return &ListChatsOutput{
		Chats: chats,
	}, nil
}
