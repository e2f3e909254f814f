package router

import (
	"github.com/labstack/echo/v4"

	"servilink/internal/adapter/api/handler"
	"servilink/internal/adapter/api/middleware"
)

// SetupChatRouter sets up all chat-related routes (excluding WebSocket)
func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.GET("", chatHandler.GetUserChats)
	chats.GET("/:id/messages", chatHandler.GetChatMessages)
	chats.PUT("/:id/read", chatHandler.MarkChatAsRead)

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.POST("", chatHandler.SendMessage)
}
