package router

import (
	"github.com/labstack/echo/v4"

	"servilink/internal/adapter/api/handler"
	"servilink/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.PATCH("/me", userHandler.UpdateProfile)

	workers := e.Group("/v1/workers")
	workers.Use(authMiddleware.Authenticate)
	workers.GET("/:id", userHandler.GetWorker)
}
