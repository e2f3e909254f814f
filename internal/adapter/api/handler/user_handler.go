package handler

import (
	"github.com/labstack/echo/v4"

	"servilink/internal/usecase"
	"servilink/pkg/response"
)

type UserHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewUserHandler(authUseCase *usecase.AuthUseCase) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
	}
}

type updateProfileRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=2"`
	ProfilePicture  *string  `json:"profile_picture" validate:"omitempty,url"`
	Location        *string  `json:"location"`
	Skills          []string `json:"skills"`
	ProfileComplete *bool    `json:"profile_complete"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		Name:            req.Name,
		ProfilePicture:  req.ProfilePicture,
		Location:        req.Location,
		Skills:          req.Skills,
		ProfileComplete: req.ProfileComplete,
	})
	if err != nil {
		return response.Error(c, err)
	}

	// Nobody logged in: the update was a no-op, not a failure.
	return response.Success(c, user)
}

func (h *UserHandler) GetWorker(c echo.Context) error {
	user, err := h.authUseCase.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
