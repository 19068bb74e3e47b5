package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/campaign-desk/backend/internal/auth"
	"github.com/campaign-desk/backend/internal/config"
	"github.com/campaign-desk/backend/internal/events"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WSHub fans campaign lifecycle events out to the owning user's open
// websocket connections, so form frontends can reflect changes live.
type WSHub struct {
	cfg         *config.Config
	subscriber  events.Subscriber
	log         *zap.Logger
	mu          sync.RWMutex
	connections map[uuid.UUID][]*websocket.Conn
}

func NewWSHub(cfg *config.Config, subscriber events.Subscriber, log *zap.Logger) *WSHub {
	return &WSHub{
		cfg:         cfg,
		subscriber:  subscriber,
		log:         log,
		connections: make(map[uuid.UUID][]*websocket.Conn),
	}
}

func (h *WSHub) Start(ctx context.Context) {
	if h.subscriber == nil {
		return
	}
	_ = h.subscriber.Subscribe(ctx, events.StreamCampaign, func(event events.Event) {
		h.dispatch(event)
	})
}

// dispatch routes an event to its owner's connections only; campaign events
// carry the owner id in the payload.
func (h *WSHub) dispatch(event events.Event) {
	ownerStr, _ := event.Payload["owner_user_id"].(string)
	ownerID, err := uuid.Parse(ownerStr)
	if err != nil {
		h.log.Debug("event without valid owner, dropped", zap.String("type", event.Type))
		return
	}
	h.SendToUser(ownerID, event)
}

func (h *WSHub) SendToUser(userID uuid.UUID, event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.connections[userID] {
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}

// WSUpgradeMiddleware checks for websocket upgrade
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *WSHub) HandleWS(conn *websocket.Conn) {
	// Extract token from query
	tokenStr := conn.Query("token")
	if tokenStr == "" {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"missing token"}`))
		conn.Close()
		return
	}

	claims, err := auth.ParseJWT(h.cfg.JWTSecret, tokenStr)
	if err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
		conn.Close()
		return
	}

	userID := claims.UserID

	// Register
	h.mu.Lock()
	h.connections[userID] = append(h.connections[userID], conn)
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		conns := h.connections[userID]
		for i, c := range conns {
			if c == conn {
				h.connections[userID] = append(conns[:i], conns[i+1:]...)
				break
			}
		}
		if len(h.connections[userID]) == 0 {
			delete(h.connections, userID)
		}
		h.mu.Unlock()
		conn.Close()
	}()

	// Read loop (keep alive / pings)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
