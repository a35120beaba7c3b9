package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"
)

func runUserRouter(secureGroup *echo.Group, userCtrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RequireRole(constants.RoleAdmin)

	secureGroup.GET("/users", userCtrl.GetUsers)
	secureGroup.GET("/users/:id", userCtrl.FindUser)
	secureGroup.PUT("/users/:id", userCtrl.UpdateUser, adminOnly)
	secureGroup.DELETE("/users/:id", userCtrl.DeleteUser, adminOnly)
}
