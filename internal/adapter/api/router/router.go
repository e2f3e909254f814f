package router

import (
	"github.com/labstack/echo/v4"

	"servilink/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupRatingRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
