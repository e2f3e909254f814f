package repository

import (
	"context"
	"testing"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"servilink/internal/domain/entity"
	"servilink/pkg/errors"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestBadgerUserRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &entity.User{
		Name:         "Jane Smith",
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleWorker,
	}
	req.NoError(repo.Create(ctx, user))
	req.NotEmpty(user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	req.NoError(err)
	req.Equal("Jane Smith", got.Name)
	req.Equal("hash", got.PasswordHash)

	byEmail, err := repo.GetByEmail(ctx, "jane@example.com")
	req.NoError(err)
	req.Equal(user.ID, byEmail.ID)
}

func TestBadgerUserRepository_GetUnknown(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	req.True(errors.Is(err, "NOT_FOUND"))

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	req.True(errors.Is(err, "NOT_FOUND"))
}

func TestBadgerUserRepository_Update(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &entity.User{Name: "Old", Email: "u@example.com", Role: entity.RoleCustomer}
	req.NoError(repo.Create(ctx, user))

	user.Name = "New"
	req.NoError(repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	req.NoError(err)
	req.Equal("New", got.Name)
}

func TestBadgerUserRepository_Session(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerUserRepository(newTestDB(t))
	ctx := context.Background()

	// No session yet
	current, err := repo.GetSession(ctx)
	req.NoError(err)
	req.Nil(current)

	user := &entity.User{Name: "John", Email: "j@example.com", Role: entity.RoleCustomer}
	req.NoError(repo.Create(ctx, user))
	req.NoError(repo.SaveSession(ctx, user.ID))

	current, err = repo.GetSession(ctx)
	req.NoError(err)
	req.NotNil(current)
	req.Equal(user.ID, current.ID)

	req.NoError(repo.ClearSession(ctx))

	current, err = repo.GetSession(ctx)
	req.NoError(err)
	req.Nil(current)

	// Clearing twice stays clean
	req.NoError(repo.ClearSession(ctx))
}

func TestBadgerUserRepository_Count(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerUserRepository(newTestDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	req.NoError(err)
	req.Zero(count)

	req.NoError(repo.Create(ctx, &entity.User{Email: "a@example.com"}))
	req.NoError(repo.Create(ctx, &entity.User{Email: "b@example.com"}))

	count, err = repo.Count(ctx)
	req.NoError(err)
	req.Equal(2, count)
}
