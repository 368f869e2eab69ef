package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/lobbyboard/internal/config"
	"github.com/KirkDiggler/lobbyboard/internal/handlers/discord"
	"github.com/KirkDiggler/lobbyboard/internal/logging"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/chat"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/room"
	"github.com/KirkDiggler/lobbyboard/internal/repositories/user"
	"github.com/KirkDiggler/lobbyboard/internal/services/conversation"
	"github.com/KirkDiggler/lobbyboard/internal/services/expiration"
	"github.com/KirkDiggler/lobbyboard/internal/services/messaging"
	"github.com/KirkDiggler/lobbyboard/internal/services/rooms"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// shutdownTimeout bounds waiting for in-flight deletions and the metrics server
const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, logCloser := logging.New(&logging.Config{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
	})
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("Bot stopped with error", "error", err)
		logCloser.Close()
		os.Exit(1)
	}

	logCloser.Close()
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Initialize repositories; each one pings Redis
	roomRepo, err := room.NewRedis(&room.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return err
	}

	userRepo, err := user.NewRedis(&user.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return err
	}

	chatRepo, err := chat.NewRedis(&chat.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return err
	}

	messages, err := messaging.New(&messaging.Config{
		Language:      cfg.Language,
		Lifetime:      cfg.RoomLifetime,
		WarningWindow: cfg.RoomWarningWindow,
	})
	if err != nil {
		return err
	}

	// The session is shared by the bot and the notifier
	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}

	notifier, err := discord.NewNotifier(session)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	scheduler, err := expiration.New(&expiration.Config{
		RoomRepo:      roomRepo,
		Notifier:      notifier,
		Messages:      messages,
		Metrics:       expiration.NewMetrics(registry),
		Lifetime:      cfg.RoomLifetime,
		WarningWindow: cfg.RoomWarningWindow,
	})
	if err != nil {
		return err
	}

	conversationSvc, err := conversation.New(&conversation.Config{
		RoomRepo: roomRepo,
	})
	if err != nil {
		return err
	}

	roomsSvc, err := rooms.New(&rooms.Config{
		RoomRepo:     roomRepo,
		UserRepo:     userRepo,
		ChatRepo:     chatRepo,
		Conversation: conversationSvc,
		Scheduler:    scheduler,
		Notifier:     notifier,
		Messages:     messages,
		Lifetime:     cfg.RoomLifetime,
		RootAdminID:  cfg.RootAdminID,
	})
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Session:       session,
		Rooms:         roomsSvc,
		Messages:      messages,
	})
	if err != nil {
		return err
	}

	if err := bot.Start(); err != nil {
		return err
	}

	// Rooms published before a restart pick up their remaining lifetime
	restored, err := scheduler.RestoreAll(ctx)
	if err != nil {
		slog.Error("Failed to restore room removals", "error", err)
	} else {
		slog.Info("Restored room removals",
			"scheduled", restored.Scheduled,
			"expired", restored.Expired,
		)
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	slog.Info("Bot is now running. Press CTRL-C to exit.")
	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// In-flight deletions may still notify owners through the session
	if err := scheduler.Stop(shutdownCtx); err != nil {
		slog.Warn("Failed to stop scheduler cleanly", "error", err)
	}

	if err := bot.Stop(); err != nil {
		slog.Warn("Failed to stop bot cleanly", "error", err)
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Failed to stop metrics server cleanly", "error", err)
		}
	}

	return nil
}
