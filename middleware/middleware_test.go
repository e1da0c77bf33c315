package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"academic-records-backend/config"
	"academic-records-backend/lib/metrics"
)

const testSecret = "test-secret"

func token(t *testing.T, staff, superuser bool) string {
	claims := jwt.MapClaims{
		"sub":       "8d0ee1a6-8c4a-4d5c-b6bb-6b0b8b1d2a3e",
		"name":      "admin",
		"staff":     staff,
		"superuser": superuser,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newApp() *fiber.App {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = testSecret
	app := fiber.New()
	app.Use(Metrics())
	app.Post("/limited", WithBodyLimit(10), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	api := app.Group("/api", AuthorizationRequired(), StaffRequired())
	api.Get("/staff", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	api.Get("/super", SuperuserRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestMiddleware(t *testing.T) {
	app := newApp()
	get := func(path, tok string) int {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		if tok != "" {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	t.Run("no token", func(t *testing.T) {
		require.Equal(t, fiber.StatusUnauthorized, get("/api/staff", ""))
	})
	t.Run("regular user", func(t *testing.T) {
		require.Equal(t, fiber.StatusForbidden, get("/api/staff", token(t, false, false)))
	})
	t.Run("staff user", func(t *testing.T) {
		tok := token(t, true, false)
		require.Equal(t, fiber.StatusOK, get("/api/staff", tok))
		require.Equal(t, fiber.StatusForbidden, get("/api/super", tok))
	})
	t.Run("superuser", func(t *testing.T) {
		require.Equal(t, fiber.StatusOK, get("/api/super", token(t, true, true)))
	})
	t.Run("body limit", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/limited", strings.NewReader(strings.Repeat("x", 20)))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})
	t.Run("requests are counted by route", func(t *testing.T) {
		counter := metrics.APIRequests.WithLabelValues(fiber.MethodGet, "/api/super", "200")
		before := testutil.ToFloat64(counter)
		require.Equal(t, fiber.StatusOK, get("/api/super", token(t, true, true)))
		require.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}
