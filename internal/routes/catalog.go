package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"
)

func runCategoryRouter(secureGroup *echo.Group, ctrl *controllers.CategoryController) {
	secureGroup.GET("/categories", ctrl.GetCategories)
	secureGroup.GET("/categories/:id", ctrl.FindCategory)
	secureGroup.POST("/categories", ctrl.CreateCategory)
	secureGroup.PUT("/categories/:id", ctrl.UpdateCategory)
	secureGroup.DELETE("/categories/:id", ctrl.DeleteCategory)
}

func runTeamRouter(secureGroup *echo.Group, ctrl *controllers.TeamController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/teams", ctrl.GetTeams)
	secureGroup.GET("/teams/:id", ctrl.FindTeam)
	secureGroup.POST("/teams", ctrl.CreateTeam)
	secureGroup.PUT("/teams/:id", ctrl.UpdateTeam)
	secureGroup.DELETE("/teams/:id", ctrl.DeleteTeam)
	secureGroup.POST("/teams/:id/assign/:user_id", ctrl.AssignMember, authMW.RequireRole(constants.RoleAdmin))
}

func runWorkCenterRouter(secureGroup *echo.Group, ctrl *controllers.WorkCenterController) {
	secureGroup.GET("/workcenters", ctrl.GetWorkCenters)
	secureGroup.GET("/workcenters/:id", ctrl.FindWorkCenter)
	secureGroup.POST("/workcenters", ctrl.CreateWorkCenter)
	secureGroup.PUT("/workcenters/:id", ctrl.UpdateWorkCenter)
	secureGroup.DELETE("/workcenters/:id", ctrl.DeleteWorkCenter)
}

func runEquipmentRouter(secureGroup *echo.Group, ctrl *controllers.EquipmentController) {
	secureGroup.GET("/equipments", ctrl.GetEquipments)
	secureGroup.GET("/equipments/:id", ctrl.FindEquipment)
	secureGroup.GET("/equipments/:id/maintenance-count", ctrl.MaintenanceCount)
	secureGroup.POST("/equipments", ctrl.CreateEquipment)
	secureGroup.PUT("/equipments/:id", ctrl.UpdateEquipment)
	secureGroup.DELETE("/equipments/:id", ctrl.DeleteEquipment)
}
