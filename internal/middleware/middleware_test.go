package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoPlayer(c *fiber.Ctx) error {
	return c.SendString(c.Locals("playerID").(string))
}

func TestEnsurePlayerID(t *testing.T) {
	app := fiber.New()
	app.Get("/", EnsurePlayerID(), echoPlayer)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Player-ID", "alice")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/?playerId=bob", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPlayerIDOutlivesRequest(t *testing.T) {
	var seen []string
	app := fiber.New()
	app.Get("/", EnsurePlayerID(), func(c *fiber.Ctx) error {
		seen = append(seen, c.Locals("playerID").(string))
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, id := range []string{"bob", "eve", "mallory"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Player-ID", id)
		_, err := app.Test(req)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"bob", "eve", "mallory"}, seen)
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/:gameId", EnsurePlayerID(), WebSocketUpgrade(), echoPlayer)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws/g1?playerId=alice", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestRequestLogger(t *testing.T) {
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.DebugLevel}

	app := fiber.New()
	app.Use(RequestLogger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	require.Len(t, handler.Entries, 1)
	assert.Equal(t, "/ok", handler.Entries[0].Fields.Get("path"))
	assert.Equal(t, fiber.StatusNoContent, handler.Entries[0].Fields.Get("status"))
}
