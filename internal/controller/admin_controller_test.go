package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jugaad-deals-be/internal/dto"
	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubStats struct{}

func (stubStats) Consume(context.Context) error { return nil }

func (stubStats) Stats(context.Context) (*dto.StatsResponse, error) {
	return &dto.StatsResponse{Total: 7, Categories: map[string]int64{"greeting": 7}, Backend: "memory"}, nil
}

type stubLogs struct {
	level         string
	limit, offset int
}

func (s *stubLogs) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	s.level, s.limit, s.offset = level, limit, offset
	return []logger.LogEntry{{Id: "1", Level: "WARN", Message: "Rate limit reached", Module: "RATELIMIT"}}, nil
}

func newAdminApp(logs *stubLogs) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNopLogger()))
	NewAdminController(stubStats{}, logs, testSecret).RegisterRoutes(app)
	return app
}

func signToken(t *testing.T, role, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ops",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminController_Auth(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"wrong secret", signToken(t, "admin", "other"), http.StatusUnauthorized},
		{"not admin", signToken(t, "user", testSecret), http.StatusForbidden},
		{"admin", signToken(t, "admin", testSecret), http.StatusOK},
	}

	app := newAdminApp(&stubLogs{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(adminRequest("/admin/stats", tt.token))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAdminController_GetStats(t *testing.T) {
	app := newAdminApp(&stubLogs{})

	resp, err := app.Test(adminRequest("/admin/stats", signToken(t, "admin", testSecret)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats dto.StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, int64(7), stats.Total)
	assert.Equal(t, int64(7), stats.Categories["greeting"])
}

func TestAdminController_GetLogs(t *testing.T) {
	logs := &stubLogs{}
	app := newAdminApp(logs)
	token := signToken(t, "admin", testSecret)

	resp, err := app.Test(adminRequest("/admin/logs?level=WARN&limit=5&offset=2", token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "WARN", logs.level)
	assert.Equal(t, 5, logs.limit)
	assert.Equal(t, 2, logs.offset)

	var body dto.LogListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Logs, 1)
	assert.Equal(t, "RATELIMIT", body.Logs[0].Module)

	resp, err = app.Test(adminRequest("/admin/logs", token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, defaultLogLimit, logs.limit)

	resp, err = app.Test(adminRequest("/admin/logs?level=LOUD", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
