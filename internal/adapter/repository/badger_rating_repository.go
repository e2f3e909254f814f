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

const ratingKeyPrefix = "rating:"

type badgerRatingRepository struct {
	db *badger.DB
}

func NewBadgerRatingRepository(db *badger.DB) repository.RatingRepository {
	return &badgerRatingRepository{
		db: db,
	}
}

// ratingKey orders the ledger by write time; the id breaks ties.
func ratingKey(rating *entity.Rating) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", ratingKeyPrefix, rating.Date.UnixNano(), rating.ID))
}

func (r *badgerRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	if rating.Date.IsZero() {
		rating.Date = time.Now()
	}

	data, err := json.Marshal(rating)
	if err != nil {
		return errors.Internal("Failed to encode rating", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(ratingKey(rating), data)
	})
	if err != nil {
		return errors.Internal("Failed to store rating", err)
	}

	return nil
}

func (r *badgerRatingRepository) ListByWorker(ctx context.Context, workerID string) ([]*entity.Rating, error) {
	return r.list(func(rating *entity.Rating) bool {
		return rating.WorkerID == workerID
	})
}

func (r *badgerRatingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Rating, error) {
	return r.list(func(rating *entity.Rating) bool {
		return rating.CustomerID == customerID
	})
}

// list walks the whole ledger in key order, keeping ratings that
// match. The ledger has no secondary index; a linear scan is the
// intended access pattern.
func (r *badgerRatingRepository) list(match func(*entity.Rating) bool) ([]*entity.Rating, error) {
	ratings := []*entity.Rating{}

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ratingKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rating entity.Rating
				if err := json.Unmarshal(val, &rating); err != nil {
					return err
				}
				if match(&rating) {
					ratings = append(ratings, &rating)
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
		return nil, errors.Internal("Failed to scan ratings", err)
	}

	return ratings, nil
}
