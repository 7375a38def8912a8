package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/config"
	"github.com/fstagno77/travel-organizer-sub001/internal/cache"
	"github.com/fstagno77/travel-organizer-sub001/internal/email"
	"github.com/fstagno77/travel-organizer-sub001/internal/kafka"
	"github.com/fstagno77/travel-organizer-sub001/internal/repository"
	"github.com/fstagno77/travel-organizer-sub001/internal/service/share"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Timeline.CacheTTLSeconds)*time.Second)

	tripRepo := repository.NewTripRepository(pool)
	shareRepo := repository.NewShareRepository(pool)
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.ShareEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("decode event error: %v", err)
				return nil
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	expireTicker := time.NewTicker(time.Duration(cfg.Worker.ExpirationSweepMinutes) * time.Minute)
	defer expireTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-expireTicker.C:
			expired, err := shareService.ExpireStaleShares(ctx)
			if err != nil {
				log.Printf("expire shares error: %v", err)
				continue
			}
			if len(expired) > 0 {
				log.Printf("expired %d share links", len(expired))
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
