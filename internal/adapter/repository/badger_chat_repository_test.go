package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"servilink/internal/domain/entity"
	"servilink/pkg/errors"
)

func TestBadgerChatRepository_PairLookup(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerChatRepository(newTestDB(t))
	ctx := context.Background()

	chat := &entity.Chat{ParticipantIDs: []string{"1", "2"}}
	req.NoError(repo.Create(ctx, chat))
	req.NotEmpty(chat.ID)

	// Lookup works in both orders
	found, err := repo.GetByParticipants(ctx, "1", "2")
	req.NoError(err)
	req.Equal(chat.ID, found.ID)

	found, err = repo.GetByParticipants(ctx, "2", "1")
	req.NoError(err)
	req.Equal(chat.ID, found.ID)

	_, err = repo.GetByParticipants(ctx, "1", "9")
	req.True(errors.Is(err, "NOT_FOUND"))
}

func TestBadgerChatRepository_ListByUserID(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerChatRepository(newTestDB(t))
	ctx := context.Background()

	req.NoError(repo.Create(ctx, &entity.Chat{ParticipantIDs: []string{"1", "2"}}))
	req.NoError(repo.Create(ctx, &entity.Chat{ParticipantIDs: []string{"2", "3"}}))

	chats, err := repo.ListByUserID(ctx, "2")
	req.NoError(err)
	req.Len(chats, 2)

	chats, err = repo.ListByUserID(ctx, "1")
	req.NoError(err)
	req.Len(chats, 1)

	chats, err = repo.ListByUserID(ctx, "9")
	req.NoError(err)
	req.Empty(chats)
}

func TestBadgerChatRepository_MessagesAscending(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerChatRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2023, 6, 10, 9, 0, 0, 0, time.UTC)
	req.NoError(repo.CreateMessage(ctx, &entity.Message{
		SenderID: "1", ReceiverID: "2", Content: "oldest", Timestamp: base,
	}))
	req.NoError(repo.CreateMessage(ctx, &entity.Message{
		SenderID: "2", ReceiverID: "1", Content: "newest", Timestamp: base.Add(time.Hour),
	}))
	// Unrelated pair must not leak in
	req.NoError(repo.CreateMessage(ctx, &entity.Message{
		SenderID: "1", ReceiverID: "9", Content: "elsewhere", Timestamp: base.Add(time.Minute),
	}))

	messages, err := repo.ListMessagesBetween(ctx, "1", "2")
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("oldest", messages[0].Content)
	req.Equal("newest", messages[1].Content)
}

func TestBadgerChatRepository_UpdateMessage(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerChatRepository(newTestDB(t))
	ctx := context.Background()

	message := &entity.Message{
		SenderID: "1", ReceiverID: "2", Content: "hi",
		Timestamp: time.Date(2023, 6, 10, 9, 0, 0, 0, time.UTC),
	}
	req.NoError(repo.CreateMessage(ctx, message))

	message.Read = true
	req.NoError(repo.UpdateMessage(ctx, message))

	messages, err := repo.ListMessagesBetween(ctx, "1", "2")
	req.NoError(err)
	req.Len(messages, 1)
	req.True(messages[0].Read)
}
