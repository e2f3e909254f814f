package usecase

import (
	"context"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	adapter "servilink/internal/adapter/repository"
	"servilink/internal/domain/repository"
	"servilink/internal/infrastructure/auth"
	"servilink/internal/infrastructure/websocket"
)

// testStore wires the full store over an in-memory Badger instance,
// seeded with the demo dataset.
type testStore struct {
	db       *badger.DB
	userRepo repository.UserRepository
	session  *Session
	auth     *AuthUseCase
	ratings  *RatingUseCase
	chats    *ChatUseCase
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := adapter.NewBadgerUserRepository(db)
	ratingRepo := adapter.NewBadgerRatingRepository(db)
	chatRepo := adapter.NewBadgerChatRepository(db)

	require.NoError(t, adapter.SeedDemoData(context.Background(), userRepo, ratingRepo, chatRepo))

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	session := NewSession()

	return &testStore{
		db:       db,
		userRepo: userRepo,
		session:  session,
		auth:     NewAuthUseCase(userRepo, tokens, session),
		ratings:  NewRatingUseCase(ratingRepo, userRepo, session),
		chats:    NewChatUseCase(chatRepo, userRepo, session, websocket.NewManager()),
	}
}

// reopen builds a fresh session over the same storage, as a process
// restart would, and hydrates it.
func (s *testStore) reopen(t *testing.T) *AuthUseCase {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	authUC := NewAuthUseCase(s.userRepo, tokens, NewSession())
	require.NoError(t, authUC.Hydrate(context.Background()))

	return authUC
}

func (s *testStore) loginAs(t *testing.T, email string) {
	t.Helper()

	_, err := s.auth.Login(context.Background(), email, adapter.SeedPassword)
	require.NoError(t, err)
}
