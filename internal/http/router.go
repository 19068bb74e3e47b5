package http

import (
	"time"

	"github.com/campaign-desk/backend/internal/config"
	"github.com/campaign-desk/backend/internal/http/handlers"
	"github.com/campaign-desk/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	campaignHandler *handlers.CampaignHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/token", authHandler.Token)

	if rdb != nil {
		api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))
	}

	// Meta (public): field limits a form client may mirror
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/validation", metaHandler.GetValidationMeta)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Post("/campaigns/validate", campaignHandler.ValidateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Post("/campaigns/:id/status", campaignHandler.UpdateStatus)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
