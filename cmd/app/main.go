package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/config"
	"github.com/fstagno77/travel-organizer-sub001/internal/bootstrap"
	"github.com/fstagno77/travel-organizer-sub001/internal/cache"
	"github.com/fstagno77/travel-organizer-sub001/internal/kafka"
	"github.com/fstagno77/travel-organizer-sub001/internal/repository"
	"github.com/fstagno77/travel-organizer-sub001/internal/service/share"
	"github.com/fstagno77/travel-organizer-sub001/internal/service/trips"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Timeline.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tripRepo := repository.NewTripRepository(pool)
	shareRepo := repository.NewShareRepository(pool)
	tripService := trips.NewTripService(tripRepo, redisCache)
	shareService := share.NewShareService(
		shareRepo,
		tripRepo,
		redisCache,
		producer,
		cfg.Kafka.ShareTopic,
		time.Duration(cfg.Share.LockTTLSeconds)*time.Second,
		time.Duration(cfg.Share.LinkTTLHours)*time.Hour,
		share.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, tripService, shareService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
