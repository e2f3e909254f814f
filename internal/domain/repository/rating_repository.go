package repository

import (
	"context"

	"servilink/internal/domain/entity"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	ListByWorker(ctx context.Context, workerID string) ([]*entity.Rating, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Rating, error)
}
