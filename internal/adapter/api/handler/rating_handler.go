package handler

import (
	"github.com/labstack/echo/v4"

	"servilink/internal/usecase"
	"servilink/pkg/response"
)

type RatingHandler struct {
	ratingUseCase *usecase.RatingUseCase
}

func NewRatingHandler(ratingUseCase *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
	}
}

type createRatingRequest struct {
	WorkerID  string `json:"worker_id" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
	Stars     int    `json:"stars" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func (h *RatingHandler) GetWorkerRatings(c echo.Context) error {
	ratings, err := h.ratingUseCase.GetRatingsForWorker(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ratings)
}

func (h *RatingHandler) GetWorkerSummary(c echo.Context) error {
	summary, err := h.ratingUseCase.GetWorkerSummary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *RatingHandler) CreateRating(c echo.Context) error {
	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	rating, err := h.ratingUseCase.SaveRating(c.Request().Context(), usecase.SaveRatingInput{
		WorkerID:  req.WorkerID,
		ServiceID: req.ServiceID,
		Stars:     req.Stars,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}
	if rating == nil {
		// No session behind the token anymore; nothing was written.
		return response.Success(c, nil)
	}

	return response.Created(c, rating)
}

func (h *RatingHandler) GetMyRatings(c echo.Context) error {
	ratings, err := h.ratingUseCase.GetUserRatings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ratings)
}
