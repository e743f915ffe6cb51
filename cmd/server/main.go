package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"aaru/internal/config"
	"aaru/internal/handler"
	"aaru/internal/httpserver"
	"aaru/internal/service"
	"aaru/internal/snapshot"
	"aaru/internal/store"
	"aaru/pkg/db"
	"aaru/pkg/logger"
	"aaru/pkg/mq"
	"aaru/pkg/redisclient"
)

func main() {
	configPath := flag.String("config", "config/base.yaml", "path to config file")
	flag.Parse()

	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Config load failed", zap.Error(err))
	}

	ctx := context.Background()

	// Redis serves as a snapshot backend and as the wisdom cache; only
	// dial it when something needs it.
	var rdb *redis.Client
	if cfg.Storage.Backend == "redis" || cfg.Redis.Addr != "" {
		rdb = redisclient.New(cfg.Redis)
		defer rdb.Close()
	}

	snapshots, err := newSnapshotStore(ctx, cfg, rdb, log)
	if err != nil {
		log.Fatal("Snapshot store initialization failed", zap.Error(err))
	}

	st := store.New(snapshots, log)
	if err := st.Load(ctx); err != nil {
		log.Fatal("State hydration failed", zap.Error(err))
	}

	// Change events are optional; the tracker runs fine without a broker.
	var publisher *mq.Publisher
	if cfg.MQ.Enabled {
		publisher, err = mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Warn("RabbitMQ unavailable, change events disabled", zap.Error(err))
		} else {
			defer publisher.Close()
		}
	}

	var events service.EventPublisher
	if publisher != nil {
		events = publisher
	}
	tracker := service.NewTracker(st, events, log)
	wisdom := service.NewWisdom(
		cfg.Wisdom.URL,
		time.Duration(cfg.Wisdom.TimeoutSeconds)*time.Second,
		rdb,
		log,
	)

	authHandler := handler.NewAuthHandler(cfg.Auth.PasswordHash, cfg.JWT.Secret)
	trackerHandler := handler.NewTrackerHandler(tracker)
	wisdomHandler := handler.NewWisdomHandler(wisdom)

	router := httpserver.NewRouter(authHandler, trackerHandler, wisdomHandler, snapshots, cfg.JWT.Secret, log)

	log.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Backend))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("Server start failed", zap.Error(err))
	}
}

func newSnapshotStore(ctx context.Context, cfg *config.Config, rdb *redis.Client, log *zap.Logger) (snapshot.Store, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := db.NewPool(cfg.DB, log)
		if err != nil {
			return nil, err
		}
		pg := snapshot.NewPostgresStore(pool, log)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return pg, nil
	case "redis":
		return snapshot.NewRedisStore(rdb, log), nil
	case "memory":
		return snapshot.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
