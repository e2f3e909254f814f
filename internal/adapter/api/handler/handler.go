package handler

import (
	"servilink/internal/usecase"
)

var (
	authHandler   *AuthHandler
	userHandler   *UserHandler
	ratingHandler *RatingHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	ratingUseCase *usecase.RatingUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(authUseCase)
	ratingHandler = NewRatingHandler(ratingUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetRatingHandler() *RatingHandler {
	return ratingHandler
}
