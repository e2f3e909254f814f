package repository

import (
	"context"

	"servilink/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	GetByParticipants(ctx context.Context, userID, otherID string) (*entity.Chat, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error)

	// Message methods
	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessagesBetween(ctx context.Context, userID, otherID string) ([]*entity.Message, error)
	UpdateMessage(ctx context.Context, message *entity.Message) error
}
