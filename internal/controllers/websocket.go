package controllers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/pkg/service"
	appwebsocket "gearguard/pkg/websocket"
)

// BoardFeedController upgrades authenticated clients to the live board feed.
// Browsers cannot set headers on a websocket handshake, so the token travels in the query.
type BoardFeedController struct {
	hub        *appwebsocket.Hub
	jwtService service.JWTService
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

func NewBoardFeedController(hub *appwebsocket.Hub, jwtService service.JWTService, allowedOrigins []string, logger *zap.Logger) *BoardFeedController {
	return &BoardFeedController{
		hub:        hub,
		jwtService: jwtService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

func (c *BoardFeedController) ServeWs(ctx echo.Context) error {
	tokenString := ctx.QueryParam("token")
	if tokenString == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, err := c.jwtService.ValidateToken(tokenString)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	conn, err := c.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed", zap.Error(err))
		return nil
	}

	client := appwebsocket.NewClient(c.hub, conn, claims.UserID)
	if !c.hub.Register(client) {
		return conn.Close()
	}
	go client.WritePump()
	go client.ReadPump()

	c.logger.Debug("board feed connected", zap.Uint64("userID", claims.UserID))
	return nil
}
