// Package config loads the bot settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the bot reads at startup
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// RootAdminID is the only user who can grant admin rights
	RootAdminID string `env:"ROOT_ADMIN_ID"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Rooms
	RoomLifetime      time.Duration `env:"ROOM_LIFETIME" envDefault:"2h"`
	RoomWarningWindow time.Duration `env:"ROOM_WARNING_WINDOW" envDefault:"5m"`

	// Language picks the message catalog
	Language string `env:"BOT_LANGUAGE" envDefault:"ru"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	// MetricsAddr serves /metrics; empty disables it
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`
}

// Load reads the optional .env files, then parses the environment
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		// Variables already set in the environment win
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.RoomLifetime <= 0 {
		return nil, fmt.Errorf("ROOM_LIFETIME must be positive, got %s", cfg.RoomLifetime)
	}

	if cfg.RoomWarningWindow < 0 || cfg.RoomWarningWindow >= cfg.RoomLifetime {
		return nil, fmt.Errorf("ROOM_WARNING_WINDOW must be between 0 and ROOM_LIFETIME, got %s", cfg.RoomWarningWindow)
	}

	return cfg, nil
}
