package router

import (
	"github.com/labstack/echo/v4"

	"servilink/internal/adapter/api/handler"
	"servilink/internal/adapter/api/middleware"
)

func SetupRatingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	ratingHandler := handler.GetRatingHandler()

	workers := e.Group("/v1/workers")
	workers.Use(authMiddleware.Authenticate)
	workers.GET("/:id/ratings", ratingHandler.GetWorkerRatings)
	workers.GET("/:id/summary", ratingHandler.GetWorkerSummary)

	ratings := e.Group("/v1/ratings")
	ratings.Use(authMiddleware.Authenticate)
	ratings.POST("", ratingHandler.CreateRating)
	ratings.GET("/mine", ratingHandler.GetMyRatings)
}
