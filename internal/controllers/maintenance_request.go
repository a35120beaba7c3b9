package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"
)

// requestQueryFilters are plain query parameters accepted on the request list next to filter[...].
var requestQueryFilters = []string{"stage", "equipment_id", "work_center_id", "team_id"}

type MaintenanceRequestController struct {
	requestService   services.MaintenanceRequestServiceInterface
	worksheetService services.WorksheetServiceInterface
	logger           *zap.Logger
}

func NewMaintenanceRequestController(
	requestService services.MaintenanceRequestServiceInterface,
	worksheetService services.WorksheetServiceInterface,
	logger *zap.Logger,
) *MaintenanceRequestController {
	return &MaintenanceRequestController{requestService: requestService, worksheetService: worksheetService, logger: logger}
}

func (c *MaintenanceRequestController) GetRequests(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	for _, key := range requestQueryFilters {
		if v := ctx.QueryParam(key); v != "" {
			filter.Filter[key] = v
		}
	}
	if err := utils.CheckIDFilters(filter, utils.IDFilterKeys...); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, total, err := c.requestService.GetRequests(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "requests fetched", http.StatusOK, total)
}

func (c *MaintenanceRequestController) FindRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.requestService.FindRequest(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request found", http.StatusOK)
}

func (c *MaintenanceRequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateMaintenanceRequestDTO
	if err := bindAndValidate(ctx, &payload, c.logger, "CreateRequest"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request created", http.StatusCreated)
}

func (c *MaintenanceRequestController) UpdateRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateMaintenanceRequestDTO
	if err := bindAndValidate(ctx, &payload, c.logger, "UpdateRequest"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.requestService.UpdateRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request updated", http.StatusOK)
}

func (c *MaintenanceRequestController) DeleteRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.requestService.DeleteRequest(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "request deleted", http.StatusOK)
}

// Worksheet streams the printable PDF of one request.
func (c *MaintenanceRequestController) Worksheet(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	out, err := c.worksheetService.Render(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		"attachment; filename="+fmt.Sprintf(constants.WorksheetFilenameFormat, id))
	return ctx.Blob(http.StatusOK, constants.WorksheetContentType, out)
}
