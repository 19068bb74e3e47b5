package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/campaign-desk/backend/internal/config"
	"github.com/campaign-desk/backend/internal/db"
	"github.com/campaign-desk/backend/internal/events"
	apphttp "github.com/campaign-desk/backend/internal/http"
	"github.com/campaign-desk/backend/internal/http/handlers"
	"github.com/campaign-desk/backend/internal/repositories"
	"github.com/campaign-desk/backend/internal/services"
	"github.com/campaign-desk/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage: in-memory by default, postgres when configured
	var campaignRepo repositories.CampaignRepo
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
		if err != nil {
			log.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer pool.Close()

		if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		campaignRepo = repositories.NewPostgresCampaignRepo(pool)
	default:
		campaignRepo = repositories.NewMemoryCampaignRepo()
		log.Info("using in-memory campaign store")
	}

	// Redis: rate limiting + event fan-out. Optional; without it the API
	// still validates and stores, just without live updates.
	var rdb *redis.Client
	var publisher events.Publisher
	var subscriber events.Subscriber
	if cfg.RedisURL != "" {
		var err error
		rdb, err = db.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		publisher = events.NewRedisPublisher(rdb, log)
		subscriber = events.NewRedisSubscriber(rdb, log)
	}

	// Validation pipeline
	policy := validation.NewPolicyChecker(cfg.ExtraProhibitedWords)
	pipeline := validation.NewPipeline(policy)

	// Services
	campaignService := services.NewCampaignService(campaignRepo, pipeline, publisher, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, campaignHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
