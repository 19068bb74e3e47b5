package handlers

import (
	"crypto/subtle"

	"github.com/campaign-desk/backend/internal/auth"
	"github.com/campaign-desk/backend/internal/config"
	"github.com/campaign-desk/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	cfg *config.Config
	log *zap.Logger
}

func NewAuthHandler(cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, log: log}
}

// Token exchanges configured client credentials for a signed JWT. The user
// id is derived from the client id, so the same client always owns the same
// campaigns across token refreshes.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.AuthTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	if req.ClientID == "" || req.ClientSecret == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "client_id and client_secret are required"})
	}

	secret, ok := h.cfg.ClientSecret(req.ClientID)
	if !ok || subtle.ConstantTimeCompare([]byte(secret), []byte(req.ClientSecret)) != 1 {
		h.log.Debug("auth rejected", zap.String("client_id", req.ClientID))
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}

	userID := auth.UserIDForClient(req.ClientID)
	token, err := auth.GenerateJWT(h.cfg.JWTSecret, userID, req.ClientID, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.AuthResponse{Token: token})
}
