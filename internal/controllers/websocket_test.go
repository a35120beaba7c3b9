package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/pkg/service"
	appwebsocket "gearguard/pkg/websocket"
)

func startFeed(t *testing.T) (*appwebsocket.Hub, service.JWTService, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := appwebsocket.NewHub(zap.NewNop())
	go hub.Run(ctx)

	jwtSvc := service.NewJWTService("feed-secret", time.Hour)
	e := echo.New()
	e.GET("/api/ws", NewBoardFeedController(hub, jwtSvc, []string{"http://board.local"}, zap.NewNop()).ServeWs)
	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, jwtSvc, "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
}

func TestBoardFeed_RejectsMissingToken(t *testing.T) {
	_, _, url := startFeed(t)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBoardFeed_RejectsForeignOrigin(t *testing.T) {
	_, jwtSvc, url := startFeed(t)
	token, err := jwtSvc.GenerateToken(service.TokenSubject{UserID: 1, Email: "a@b.c", Role: "Admin"})
	require.NoError(t, err)

	header := http.Header{"Origin": []string{"http://evil.local"}}
	_, resp, err := websocket.DefaultDialer.Dial(url+"?token="+token, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBoardFeed_StreamsBroadcasts(t *testing.T) {
	hub, jwtSvc, url := startFeed(t)
	token, err := jwtSvc.GenerateToken(service.TokenSubject{UserID: 5, Email: "t@b.c", Role: "Technician"})
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?token="+token, http.Header{"Origin": []string{"http://board.local"}})
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Connected() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast(context.Background(), "request.stage_changed", map[string]string{"to": "Repaired"}))

	var env appwebsocket.Envelope
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, "request.stage_changed", env.Type)
	assert.Equal(t, map[string]interface{}{"to": "Repaired"}, env.Payload)
}
