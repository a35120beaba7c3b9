package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(secureGroup *echo.Group, ctrl *controllers.MaintenanceRequestController) {
	secureGroup.GET("/requests", ctrl.GetRequests)
	secureGroup.GET("/requests/:id", ctrl.FindRequest)
	secureGroup.GET("/requests/:id/worksheet", ctrl.Worksheet)
	secureGroup.POST("/requests", ctrl.CreateRequest)
	secureGroup.PUT("/requests/:id", ctrl.UpdateRequest)
	secureGroup.PATCH("/requests/:id", ctrl.UpdateRequest)
	secureGroup.DELETE("/requests/:id", ctrl.DeleteRequest)
}

func runDashboardRouter(secureGroup *echo.Group, ctrl *controllers.DashboardController) {
	secureGroup.GET("/dashboard/stats", ctrl.GetStats)
	secureGroup.GET("/dashboard/recent-requests", ctrl.RecentRequests)
	secureGroup.GET("/reports/by-team", ctrl.ReportByTeam)
	secureGroup.GET("/reports/by-category", ctrl.ReportByCategory)
	secureGroup.GET("/reports/export", ctrl.ExportReport)
}
