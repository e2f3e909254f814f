package repository

import (
	"context"
	"encoding/json"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"servilink/internal/domain/entity"
	"servilink/internal/domain/repository"
	"servilink/pkg/errors"
)

const (
	userKeyPrefix = "user:"
	sessionKey    = "session:current"
)

// storedUser carries the password hash, which is stripped from the
// entity's JSON form.
type storedUser struct {
	*entity.User
	PasswordHash string `json:"password_hash,omitempty"`
}

type badgerUserRepository struct {
	db *badger.DB
}

func NewBadgerUserRepository(db *badger.DB) repository.UserRepository {
	return &badgerUserRepository{
		db: db,
	}
}

func userKey(id string) []byte {
	return []byte(userKeyPrefix + id)
}

func marshalUser(user *entity.User) ([]byte, error) {
	return json.Marshal(storedUser{User: user, PasswordHash: user.PasswordHash})
}

func unmarshalUser(data []byte) (*entity.User, error) {
	var stored storedUser
	stored.User = &entity.User{}
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	stored.User.PasswordHash = stored.PasswordHash
	return stored.User, nil
}

func (r *badgerUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	data, err := marshalUser(user)
	if err != nil {
		return errors.Internal("Failed to encode user", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(user.ID), data)
	})
	if err != nil {
		return errors.Internal("Failed to store user", err)
	}

	return nil
}

func (r *badgerUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user *entity.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			user, err = unmarshalUser(val)
			return err
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.NotFound("User", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get user", err)
	}

	return user, nil
}

func (r *badgerUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var found *entity.User

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(userKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				user, err := unmarshalUser(val)
				if err != nil {
					return err
				}
				if user.Email == email {
					found = user
				}
				return nil
			})
			if err != nil {
				return err
			}
			if found != nil {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Internal("Failed to scan users", err)
	}
	if found == nil {
		return nil, errors.NotFound("User", nil)
	}

	return found, nil
}

func (r *badgerUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	data, err := marshalUser(user)
	if err != nil {
		return errors.Internal("Failed to encode user", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(userKey(user.ID)); err != nil {
			return err
		}
		return txn.Set(userKey(user.ID), data)
	})
	if err == badger.ErrKeyNotFound {
		return errors.NotFound("User", err)
	}
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *badgerUserRepository) Count(ctx context.Context) (int, error) {
	count := 0

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(userKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}

	return count, nil
}

func (r *badgerUserRepository) SaveSession(ctx context.Context, userID string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sessionKey), []byte(userID))
	})
	if err != nil {
		return errors.Internal("Failed to store session", err)
	}
	return nil
}

// GetSession resolves the persisted session pointer to a full user
// record. A missing pointer, or a pointer to a user that no longer
// exists, both mean "nobody is logged in".
func (r *badgerUserRepository) GetSession(ctx context.Context) (*entity.User, error) {
	var userID string

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID = string(val)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to read session", err)
	}

	user, err := r.GetByID(ctx, userID)
	if errors.Is(err, "NOT_FOUND") {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *badgerUserRepository) ClearSession(ctx context.Context) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionKey))
	})
	if err != nil && err != badger.ErrKeyNotFound {
		return errors.Internal("Failed to clear session", err)
	}
	return nil
}
