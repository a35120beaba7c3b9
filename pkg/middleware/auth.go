package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtSvc, logger: logger}
}

// Auth verifies the bearer token and puts the caller's identity on the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}
		if err := m.authenticate(c, authHeader); err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		return next(c)
	}
}

// OptionalAuth lets anonymous requests through untouched. A request that does carry an
// Authorization header must carry a valid token.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}
		if err := m.authenticate(c, authHeader); err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, authHeader string) error {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.ErrInvalidAuthHeader
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		m.logger.Warn("token rejected", zap.Error(err), zap.String("ip", c.RealIP()))
		return err
	}

	ctx := utils.WithUser(c.Request().Context(), claims.UserID, claims.Subject, claims.Name,
		constants.UserRole(claims.Role), claims.TeamID)
	c.SetRequest(c.Request().WithContext(ctx))

	m.logger.Debug("authenticated", zap.Uint64("userID", claims.UserID), zap.String("role", claims.Role))
	return nil
}

// RequireRole lets the request through only for the listed roles. It must run after Auth.
func (m *AuthMiddleware) RequireRole(roles ...constants.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := utils.GetUserRoleFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			for _, r := range roles {
				if r == role {
					return next(c)
				}
			}
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
	}
}
