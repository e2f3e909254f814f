package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/samber/lo"

	"servilink/internal/domain/entity"
	"servilink/internal/domain/repository"
	ws "servilink/internal/infrastructure/websocket"
	"servilink/pkg/errors"
	"servilink/pkg/logger"
)

type ChatUseCase struct {
	chatRepo  repository.ChatRepository
	userRepo  repository.UserRepository
	session   *Session
	wsManager *ws.Manager
}

func NewChatUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository, session *Session, wsManager *ws.Manager) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:  chatRepo,
		userRepo:  userRepo,
		session:   session,
		wsManager: wsManager,
	}
}

type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// ChatSummary is the derived per-chat view: it is recomputed from the
// message ledger on every read instead of being maintained
// incrementally, so it can never drift from the ledger.
type ChatSummary struct {
	ID                   string      `json:"id"`
	ParticipantIDs       []string    `json:"participant_ids"`
	LastMessage          string      `json:"last_message,omitempty"`
	LastMessageTimestamp *time.Time  `json:"last_message_timestamp,omitempty"`
	UnreadCount          int         `json:"unread_count"`
	OtherParticipant     Participant `json:"other_participant"`
}

// GetChats returns a summary for every chat the current user
// participates in. Logged out, it returns an empty slice.
func (uc *ChatUseCase) GetChats(ctx context.Context) ([]*ChatSummary, error) {
	user := uc.session.Current()
	if user == nil {
		return []*ChatSummary{}, nil
	}

	chats, err := uc.chatRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary, err := uc.summarize(ctx, user, chat)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (uc *ChatUseCase) summarize(ctx context.Context, user *entity.User, chat *entity.Chat) (*ChatSummary, error) {
	otherID := chat.OtherParticipant(user.ID)

	messages, err := uc.chatRepo.ListMessagesBetween(ctx, user.ID, otherID)
	if err != nil {
		return nil, err
	}

	summary := &ChatSummary{
		ID:               chat.ID,
		ParticipantIDs:   chat.ParticipantIDs,
		OtherParticipant: Participant{ID: otherID, Name: "Usuário"},
	}

	if len(messages) > 0 {
		last := messages[len(messages)-1]
		summary.LastMessage = last.Content
		ts := last.Timestamp
		summary.LastMessageTimestamp = &ts
	}

	summary.UnreadCount = lo.CountBy(messages, func(m *entity.Message) bool {
		return m.ReceiverID == user.ID && !m.Read
	})

	// The participant may have been seeded as a bare id with no
	// account behind it; the placeholder name is kept in that case.
	if other, err := uc.userRepo.GetByID(ctx, otherID); err == nil {
		summary.OtherParticipant.Name = other.Name
		summary.OtherParticipant.Avatar = other.ProfilePicture
	}

	return summary, nil
}

// GetMessages returns the chat's messages ascending by timestamp.
// Unknown chat ids, chats the user is not part of, and a missing
// session all yield an empty slice.
func (uc *ChatUseCase) GetMessages(ctx context.Context, chatID string) ([]*entity.Message, error) {
	user := uc.session.Current()
	if user == nil {
		return []*entity.Message{}, nil
	}

	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return []*entity.Message{}, nil
		}
		return nil, err
	}

	otherID := chat.OtherParticipant(user.ID)
	if otherID == "" {
		return []*entity.Message{}, nil
	}

	return uc.chatRepo.ListMessagesBetween(ctx, user.ID, otherID)
}

// SendMessage appends an unread message from the current user and
// makes sure exactly one chat exists for the participant pair. Blank
// content or a missing session is a silent no-op.
func (uc *ChatUseCase) SendMessage(ctx context.Context, receiverID, content string) (*entity.Message, error) {
	user := uc.session.Current()
	if user == nil || strings.TrimSpace(content) == "" {
		return nil, nil
	}

	message := &entity.Message{
		SenderID:   user.ID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
		Read:       false,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	_, err := uc.chatRepo.GetByParticipants(ctx, user.ID, receiverID)
	if errors.Is(err, "NOT_FOUND") {
		err = uc.chatRepo.Create(ctx, &entity.Chat{
			ParticipantIDs: []string{user.ID, receiverID},
		})
	}
	if err != nil {
		return nil, err
	}

	uc.pushToReceiver(message)

	return message, nil
}

// MarkChatAsRead flips the read flag on every message addressed to
// the current user within the chat's pair. Reapplying it is a no-op,
// as is an unknown chat id or a missing session.
func (uc *ChatUseCase) MarkChatAsRead(ctx context.Context, chatID string) error {
	user := uc.session.Current()
	if user == nil {
		return nil
	}

	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}

	otherID := chat.OtherParticipant(user.ID)
	if otherID == "" {
		return nil
	}

	messages, err := uc.chatRepo.ListMessagesBetween(ctx, user.ID, otherID)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if message.ReceiverID != user.ID || message.Read {
			continue
		}
		message.Read = true
		if err := uc.chatRepo.UpdateMessage(ctx, message); err != nil {
			return err
		}
	}

	return nil
}

// pushToReceiver notifies the recipient's open socket, if any. The
// ledger is already written; push failures only cost immediacy.
func (uc *ChatUseCase) pushToReceiver(message *entity.Message) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "new_message",
		"message": message,
	})
	if err != nil {
		logger.Warn("Failed to encode message push: %v", err)
		return
	}
	uc.wsManager.SendToUser(message.ReceiverID, payload)
}
