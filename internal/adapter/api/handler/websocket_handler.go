package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"servilink/internal/infrastructure/auth"
	ws "servilink/internal/infrastructure/websocket"
	"servilink/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager *ws.Manager
	tokens  *auth.TokenManager
}

func NewWebSocketHandler(manager *ws.Manager, tokens *auth.TokenManager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		tokens:  tokens,
	}
}

// HandleConnection upgrades the request and registers the socket for
// message push. Browsers cannot set headers on websocket requests,
// so the token travels as a query parameter.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is required")
	}

	claims, err := h.tokens.Validate(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Failed to upgrade websocket for %s: %v", claims.UserID, err)
		return err
	}

	client := &ws.Client{
		UserID: claims.UserID,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}

	h.manager.Register <- client

	go client.WritePump()
	client.ReadPump(h.manager)

	return nil
}
