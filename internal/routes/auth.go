package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware, limiter *middleware.IPRateLimiter) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register, authMW.OptionalAuth)
		authGroup.POST("/login", authCtrl.Login, middleware.RateLimit(limiter))
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
		authGroup.GET("/members", authCtrl.Members, authMW.Auth)
	}
}
