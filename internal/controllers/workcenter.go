package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type WorkCenterController struct {
	workCenterService services.WorkCenterServiceInterface
	logger            *zap.Logger
}

func NewWorkCenterController(workCenterService services.WorkCenterServiceInterface, logger *zap.Logger) *WorkCenterController {
	return &WorkCenterController{workCenterService: workCenterService, logger: logger}
}

func (c *WorkCenterController) GetWorkCenters(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, total, err := c.workCenterService.GetWorkCenters(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work centers fetched", http.StatusOK, total)
}

func (c *WorkCenterController) FindWorkCenter(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.workCenterService.FindWorkCenter(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center found", http.StatusOK)
}

func (c *WorkCenterController) CreateWorkCenter(ctx echo.Context) error {
	var payload dto.CreateWorkCenterDTO
	if err := bindAndValidate(ctx, &payload, c.logger, "CreateWorkCenter"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.workCenterService.CreateWorkCenter(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center created", http.StatusCreated)
}

func (c *WorkCenterController) UpdateWorkCenter(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateWorkCenterDTO
	if err := bindAndValidate(ctx, &payload, c.logger, "UpdateWorkCenter"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.workCenterService.UpdateWorkCenter(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center updated", http.StatusOK)
}

func (c *WorkCenterController) DeleteWorkCenter(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.workCenterService.DeleteWorkCenter(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "work center deleted", http.StatusOK)
}
