package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
)

// bindAndValidate decodes the request body into dst and runs the struct validator on it.
func bindAndValidate(ctx echo.Context, dst interface{}, logger *zap.Logger, op string) error {
	if err := ctx.Bind(dst); err != nil {
		logger.Warn(op+": bad request body", zap.Error(err))
		return apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil)
	}
	if err := ctx.Validate(dst); err != nil {
		logger.Debug(op+": validation failed", zap.Error(err))
		return err
	}
	return nil
}
