package usecase

import (
	"context"
	"time"

	"servilink/internal/domain/entity"
	"servilink/internal/domain/repository"
	"servilink/pkg/errors"
	"servilink/pkg/logger"
)

type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
	session    *Session
}

func NewRatingUseCase(ratingRepo repository.RatingRepository, userRepo repository.UserRepository, session *Session) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
		session:    session,
	}
}

type SaveRatingInput struct {
	WorkerID  string
	ServiceID string
	Stars     int
	Comment   string
}

type WorkerSummary struct {
	WorkerID      string  `json:"worker_id"`
	RatingCount   int     `json:"rating_count"`
	AverageRating float64 `json:"average_rating"`
}

// GetRatingsForWorker returns the worker's ratings in ledger order.
// Unknown worker ids yield an empty slice, not an error.
func (uc *RatingUseCase) GetRatingsForWorker(ctx context.Context, workerID string) ([]*entity.Rating, error) {
	return uc.ratingRepo.ListByWorker(ctx, workerID)
}

// SaveRating appends a rating authored by the current user. The
// author fields always come from the session, never from the input.
// Without a session it is a silent no-op.
func (uc *RatingUseCase) SaveRating(ctx context.Context, input SaveRatingInput) (*entity.Rating, error) {
	user := uc.session.Current()
	if user == nil {
		return nil, nil
	}

	if input.Stars < 1 || input.Stars > 5 {
		return nil, errors.BadRequest("Stars must be between 1 and 5", nil)
	}

	rating := &entity.Rating{
		WorkerID:       input.WorkerID,
		CustomerID:     user.ID,
		ServiceID:      input.ServiceID,
		Stars:          input.Stars,
		Comment:        input.Comment,
		Date:           time.Now(),
		CustomerName:   user.Name,
		CustomerAvatar: user.ProfilePicture,
	}

	if err := uc.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	uc.refreshWorkerAverage(ctx, input.WorkerID)

	return rating, nil
}

// GetUserRatings returns the ratings authored by the current user,
// empty when logged out.
func (uc *RatingUseCase) GetUserRatings(ctx context.Context) ([]*entity.Rating, error) {
	user := uc.session.Current()
	if user == nil {
		return []*entity.Rating{}, nil
	}
	return uc.ratingRepo.ListByCustomer(ctx, user.ID)
}

func (uc *RatingUseCase) GetWorkerSummary(ctx context.Context, workerID string) (*WorkerSummary, error) {
	ratings, err := uc.ratingRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return &WorkerSummary{
		WorkerID:      workerID,
		RatingCount:   len(ratings),
		AverageRating: average(ratings),
	}, nil
}

// refreshWorkerAverage recomputes the worker's denormalized average.
// Ratings may reference a worker id with no matching account; that
// is tolerated and the average is simply not stored anywhere.
func (uc *RatingUseCase) refreshWorkerAverage(ctx context.Context, workerID string) {
	worker, err := uc.userRepo.GetByID(ctx, workerID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			logger.Warn("Failed to load worker %s for average refresh: %v", workerID, err)
		}
		return
	}

	ratings, err := uc.ratingRepo.ListByWorker(ctx, workerID)
	if err != nil {
		logger.Warn("Failed to list ratings for worker %s: %v", workerID, err)
		return
	}

	worker.AverageRating = average(ratings)
	worker.RatingCount = len(ratings)

	if err := uc.userRepo.Update(ctx, worker); err != nil {
		logger.Warn("Failed to store average for worker %s: %v", workerID, err)
	}

	if current := uc.session.Current(); current != nil && current.ID == worker.ID {
		uc.session.set(worker)
	}
}

func average(ratings []*entity.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating.Stars
	}
	return float64(sum) / float64(len(ratings))
}
