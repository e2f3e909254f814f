package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"servilink/internal/domain/entity"
	"servilink/internal/domain/repository"
	"servilink/pkg/errors"
)

const (
	chatKeyPrefix    = "chat:"
	messageKeyPrefix = "message:"
)

type badgerChatRepository struct {
	db *badger.DB
}

func NewBadgerChatRepository(db *badger.DB) repository.ChatRepository {
	return &badgerChatRepository{
		db: db,
	}
}

func chatKey(id string) []byte {
	return []byte(chatKeyPrefix + id)
}

// messageKey orders the ledger by send time so prefix iteration
// yields messages ascending.
func messageKey(message *entity.Message) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", messageKeyPrefix, message.Timestamp.UnixNano(), message.ID))
}

func (r *badgerChatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}
	if chat.CreatedAt.IsZero() {
		chat.CreatedAt = time.Now()
	}

	data, err := json.Marshal(chat)
	if err != nil {
		return errors.Internal("Failed to encode chat", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chatKey(chat.ID), data)
	})
	if err != nil {
		return errors.Internal("Failed to store chat", err)
	}

	return nil
}

func (r *badgerChatRepository) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	var chat entity.Chat

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chatKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &chat)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.NotFound("Chat", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get chat", err)
	}

	return &chat, nil
}

func (r *badgerChatRepository) GetByParticipants(ctx context.Context, userID, otherID string) (*entity.Chat, error) {
	chats, err := r.listChats(func(chat *entity.Chat) bool {
		return chat.HasParticipant(userID) && chat.HasParticipant(otherID)
	})
	if err != nil {
		return nil, err
	}
	if len(chats) == 0 {
		return nil, errors.NotFound("Chat", nil)
	}
	return chats[0], nil
}

func (r *badgerChatRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error) {
	return r.listChats(func(chat *entity.Chat) bool {
		return chat.HasParticipant(userID)
	})
}

func (r *badgerChatRepository) listChats(match func(*entity.Chat) bool) ([]*entity.Chat, error) {
	chats := []*entity.Chat{}

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(chatKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var chat entity.Chat
				if err := json.Unmarshal(val, &chat); err != nil {
					return err
				}
				if match(&chat) {
					chats = append(chats, &chat)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Internal("Failed to scan chats", err)
	}

	return chats, nil
}

func (r *badgerChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	data, err := json.Marshal(message)
	if err != nil {
		return errors.Internal("Failed to encode message", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(message), data)
	})
	if err != nil {
		return errors.Internal("Failed to store message", err)
	}

	return nil
}

// ListMessagesBetween returns every message exchanged between the two
// users, ascending by timestamp.
func (r *badgerChatRepository) ListMessagesBetween(ctx context.Context, userID, otherID string) ([]*entity.Message, error) {
	messages := []*entity.Message{}

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(messageKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var message entity.Message
				if err := json.Unmarshal(val, &message); err != nil {
					return err
				}
				between := (message.SenderID == userID && message.ReceiverID == otherID) ||
					(message.SenderID == otherID && message.ReceiverID == userID)
				if between {
					messages = append(messages, &message)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Internal("Failed to scan messages", err)
	}

	return messages, nil
}

// UpdateMessage rewrites a message in place. The key is derived from
// the immutable timestamp and id, so only the value changes.
func (r *badgerChatRepository) UpdateMessage(ctx context.Context, message *entity.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return errors.Internal("Failed to encode message", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(message), data)
	})
	if err != nil {
		return errors.Internal("Failed to update message", err)
	}

	return nil
}
