package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ParseFilterFromQuery reads search, sort[...], filter[...], limit, page/offset and
// withPagination. Pagination is on unless withPagination=false.
func ParseFilterFromQuery(values url.Values) types.Filter {
	filterReq := types.Filter{
		Sort:   make(map[string]string),
		Filter: make(map[string]interface{}),
		Limit:  DefaultLimit,
		Page:   1,
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				filterReq.Limit = MaxLimit
			} else {
				filterReq.Limit = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filterReq.Page = p
		}
	}

	offsetStr := values.Get("offset")
	if offsetStr == "" {
		offsetStr = values.Get("skip")
	}
	if offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filterReq.Offset = o
			filterReq.Page = o/filterReq.Limit + 1
		}
	} else {
		filterReq.Offset = (filterReq.Page - 1) * filterReq.Limit
	}

	filterReq.WithPagination = values.Get("withPagination") != "false"

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		if key == "search" {
			filterReq.Search = vals[0]
			continue
		}

		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			field := key[5 : len(key)-1]
			direction := strings.ToLower(vals[0])
			if direction == "asc" || direction == "desc" {
				filterReq.Sort[field] = direction
			}
			continue
		}

		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field := key[7 : len(key)-1]
			filterReq.Filter[field] = strings.Join(vals, ",")
		}
	}

	return filterReq
}

// SuccessResponse writes the {status, message, body} envelope. When a total is given
// and pagination is on, body becomes {list, pagination}.
func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{Status: true, Message: message}
	filter := ParseFilterFromQuery(ctx.Request().URL.Query())
	if filter.WithPagination && len(total) > 0 {
		response.Body = map[string]interface{}{
			"list":       body,
			"pagination": types.NewPagination(total[0], filter.Page, filter.Limit),
		}
	} else {
		response.Body = body
	}
	return ctx.JSON(code, response)
}

// StatusFor maps an application error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAccountLocked):
		return http.StatusTooManyRequests
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrInvalidSigningMethod),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrUserIDNotFoundInContext):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, HTTPResponse{Status: false, Message: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, HTTPResponse{
			Status:  false,
			Message: "validation failed: " + strings.Join(msgs, "; "),
		})
	}

	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		logger.Error("Unexpected Error", zap.Error(err))
		return c.JSON(code, HTTPResponse{Status: false, Message: "internal server error"})
	}
	logger.Debug("request failed", zap.Int("code", code), zap.Error(err))
	return c.JSON(code, HTTPResponse{Status: false, Message: err.Error()})
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func NewLimitError(raw string) error {
	return apperrors.NewBadRequestError(fmt.Sprintf("invalid limit %q", raw))
}

// IDFilterKeys are the filter fields that hold numeric foreign keys.
var IDFilterKeys = []string{"equipment_id", "work_center_id", "team_id", "category_id", "created_by_id", "responsible_id"}

// CheckIDFilters rejects non-numeric values for id filters before they reach a bigint column.
// Comma-separated lists are checked element by element.
func CheckIDFilters(filter types.Filter, keys ...string) error {
	for _, key := range keys {
		val, ok := filter.Filter[key]
		if !ok {
			continue
		}
		for _, part := range strings.Split(fmt.Sprint(val), ",") {
			if _, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64); err != nil {
				return apperrors.NewBadRequestError(fmt.Sprintf("filter %s must be a list of numeric ids", key))
			}
		}
	}
	return nil
}
