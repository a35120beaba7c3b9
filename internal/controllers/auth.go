package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, userService services.UserServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, userService: userService, logger: logger}
}

func (c *AuthController) Register(ctx echo.Context) error {
	var payload dto.RegisterDTO
	if err := bindAndValidate(ctx, &payload, c.logger, "Register"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.authService.Register(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "user registered", http.StatusCreated)
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := bindAndValidate(ctx, &payload, c.logger, "Login"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Info("login refused", zap.String("ip", ctx.RealIP()), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "login successful", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	res, err := c.authService.Me(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "current user", http.StatusOK)
}

// Members lists every user so technicians can be picked for a team or a request.
func (c *AuthController) Members(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, total, err := c.userService.GetUsers(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "members fetched", http.StatusOK, total)
}
