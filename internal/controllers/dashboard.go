package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	reportService    services.ReportServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, reportService services.ReportServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, reportService: reportService, logger: logger}
}

func (c *DashboardController) GetStats(ctx echo.Context) error {
	res, err := c.dashboardService.GetStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "dashboard stats", http.StatusOK)
}

func (c *DashboardController) RecentRequests(ctx echo.Context) error {
	var limit uint64
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed > utils.MaxLimit {
			return utils.ErrorResponse(ctx, utils.NewLimitError(raw), c.logger)
		}
		limit = parsed
	}
	res, err := c.dashboardService.RecentRequests(ctx.Request().Context(), limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "recent requests", http.StatusOK)
}

func (c *DashboardController) ReportByTeam(ctx echo.Context) error {
	res, err := c.dashboardService.ReportByTeam(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "requests per team", http.StatusOK)
}

func (c *DashboardController) ReportByCategory(ctx echo.Context) error {
	res, err := c.dashboardService.ReportByCategory(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "requests per category", http.StatusOK)
}

// ExportReport writes the request workbook as an xlsx attachment.
func (c *DashboardController) ExportReport(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	f, err := c.reportService.ExportWorkbook(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer f.Close()

	ctx.Response().Header().Set(echo.HeaderContentType, constants.ReportContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", constants.ReportFilename))
	ctx.Response().WriteHeader(http.StatusOK)
	if err := f.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("ExportReport: write workbook", zap.Error(err))
		return err
	}
	return nil
}
