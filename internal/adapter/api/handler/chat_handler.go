package handler

import (
	"github.com/labstack/echo/v4"

	"servilink/internal/usecase"
	"servilink/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

func (h *ChatHandler) GetUserChats(c echo.Context) error {
	chats, err := h.chatUseCase.GetChats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chats)
}

func (h *ChatHandler) GetChatMessages(c echo.Context) error {
	messages, err := h.chatUseCase.GetMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *ChatHandler) MarkChatAsRead(c echo.Context) error {
	if err := h.chatUseCase.MarkChatAsRead(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "ok"})
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), req.ReceiverID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	if message == nil {
		// Blank content or no session: dropped without error.
		return response.Success(c, nil)
	}

	return response.Created(c, message)
}
