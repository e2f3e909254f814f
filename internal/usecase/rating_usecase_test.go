package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"servilink/pkg/errors"
)

func TestSaveRating_AuthorComesFromSession(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	store.loginAs(t, "user@example.com") // John Doe, id 1

	rating, err := store.ratings.SaveRating(ctx, SaveRatingInput{
		WorkerID:  "2",
		ServiceID: "7",
		Stars:     5,
		Comment:   "Great job",
	})
	req.NoError(err)
	req.NotEmpty(rating.ID)
	req.Equal("1", rating.CustomerID)
	req.Equal("John Doe", rating.CustomerName)
	req.False(rating.Date.IsZero())

	workerRatings, err := store.ratings.GetRatingsForWorker(ctx, "2")
	req.NoError(err)
	req.Len(workerRatings, 3) // two seeded plus the new one
	req.Equal("Great job", workerRatings[2].Comment)
	req.Equal("1", workerRatings[2].CustomerID)
}

func TestSaveRating_RefreshesWorkerAverage(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	store.loginAs(t, "user@example.com")

	_, err := store.ratings.SaveRating(ctx, SaveRatingInput{
		WorkerID:  "2",
		ServiceID: "7",
		Stars:     3,
		Comment:   "Average",
	})
	req.NoError(err)

	worker, err := store.userRepo.GetByID(ctx, "2")
	req.NoError(err)
	req.Equal(3, worker.RatingCount)
	req.InDelta(4.0, worker.AverageRating, 0.001) // (5+4+3)/3

	summary, err := store.ratings.GetWorkerSummary(ctx, "2")
	req.NoError(err)
	req.Equal(3, summary.RatingCount)
	req.InDelta(4.0, summary.AverageRating, 0.001)
}

func TestSaveRating_NoSessionIsNoOp(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	rating, err := store.ratings.SaveRating(ctx, SaveRatingInput{
		WorkerID:  "2",
		ServiceID: "7",
		Stars:     1,
		Comment:   "should not land",
	})
	req.NoError(err)
	req.Nil(rating)

	workerRatings, err := store.ratings.GetRatingsForWorker(ctx, "2")
	req.NoError(err)
	req.Len(workerRatings, 2)
}

func TestSaveRating_StarsOutOfRange(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)

	store.loginAs(t, "user@example.com")

	_, err := store.ratings.SaveRating(context.Background(), SaveRatingInput{
		WorkerID:  "2",
		ServiceID: "7",
		Stars:     6,
	})
	req.True(errors.Is(err, "BAD_REQUEST"))
}

func TestGetUserRatings(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	store.loginAs(t, "user@example.com")

	mine, err := store.ratings.GetUserRatings(ctx)
	req.NoError(err)
	req.Len(mine, 1) // John authored one seeded rating
	req.Equal("1", mine[0].CustomerID)
}

func TestGetRatingsForWorker_UnknownWorker(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)

	ratings, err := store.ratings.GetRatingsForWorker(context.Background(), "nobody")
	req.NoError(err)
	req.Empty(ratings)
}
