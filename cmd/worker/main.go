package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketsystem/internal/infrastructure/config"
	"ticketsystem/internal/infrastructure/database"
	"ticketsystem/internal/infrastructure/repository"
	"ticketsystem/internal/shared/logger"
)

const (
	// Read notifications older than this are deleted.
	retentionWindow = 30 * 24 * time.Hour

	pruneInterval = 24 * time.Hour

	// Only one worker instance prunes at a time.
	pruneLockKey = "notification_prune_lock"
	pruneLockTTL = 10 * time.Minute
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting notification retention worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	notificationRepo := repository.NewNotificationRepository(database.Get())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	log.Infow("running initial notification prune")
	pruneOnce(ctx, redisClient, notificationRepo, log)

	log.Infow("notification retention worker started",
		"retention", retentionWindow.String(),
		"interval", pruneInterval.String())

	for {
		select {
		case <-ticker.C:
			pruneOnce(ctx, redisClient, notificationRepo, log)

		case sig := <-sigChan:
			log.Infow("received signal, shutting down", "signal", sig)
			return
		}
	}
}

func pruneOnce(ctx context.Context, redisClient *redis.Client, repo *repository.NotificationRepository, log logger.Interface) {
	acquired, err := redisClient.SetNX(ctx, pruneLockKey, "1", pruneLockTTL).Result()
	if err != nil {
		log.Errorw("failed to acquire prune lock", "error", err)
		return
	}
	if !acquired {
		log.Debugw("prune lock held by another worker, skipping")
		return
	}
	defer redisClient.Del(ctx, pruneLockKey)

	cutoff := time.Now().Add(-retentionWindow)
	deleted, err := repo.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		log.Errorw("notification prune failed", "error", err)
		return
	}

	log.Infow("notification prune completed",
		"deleted", deleted,
		"cutoff", cutoff.Format(time.RFC3339))
}
