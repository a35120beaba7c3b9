package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
	logger          *zap.Logger
}

func NewCategoryController(categoryService services.CategoryServiceInterface, logger *zap.Logger) *CategoryController {
	return &CategoryController{categoryService: categoryService, logger: logger}
}

func (c *CategoryController) GetCategories(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, total, err := c.categoryService.GetCategories(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "categories fetched", http.StatusOK, total)
}

func (c *CategoryController) FindCategory(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.categoryService.FindCategory(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "category found", http.StatusOK)
}

func (c *CategoryController) CreateCategory(ctx echo.Context) error {
	var payload dto.CreateCategoryDTO
	if err := bindAndValidate(ctx, &payload, c.logger, "CreateCategory"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.categoryService.CreateCategory(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "category created", http.StatusCreated)
}

func (c *CategoryController) UpdateCategory(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateCategoryDTO
	if err := bindAndValidate(ctx, &payload, c.logger, "UpdateCategory"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.categoryService.UpdateCategory(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "category updated", http.StatusOK)
}

func (c *CategoryController) DeleteCategory(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.categoryService.DeleteCategory(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "category deleted", http.StatusOK)
}
