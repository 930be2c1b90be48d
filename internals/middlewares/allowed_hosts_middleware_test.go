package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostAllowed(t *testing.T) {
	allowed := []string{"darulfatheh.org", ".example.com", " "}

	assert.True(t, HostAllowed("darulfatheh.org", allowed))
	assert.True(t, HostAllowed("DarulFatheh.org:8080", allowed))
	assert.True(t, HostAllowed("example.com", allowed))
	assert.True(t, HostAllowed("www.example.com.", allowed))
	assert.False(t, HostAllowed("www.darulfatheh.org", allowed))
	assert.False(t, HostAllowed("badexample.com", allowed))
	assert.False(t, HostAllowed("", allowed))
	assert.True(t, HostAllowed("anything.test", []string{"*"}))
	assert.False(t, HostAllowed("localhost", nil))
}

func TestAllowedHosts_Middleware(t *testing.T) {
	app := fiber.New()
	app.Use(AllowedHosts([]string{"darulfatheh.org"}, false))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "darulfatheh.org"
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "attacker.test"
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
