package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adhan/config"
	"adhan/internal/infra/metrics"
)

type stubRoutes struct{}

func (stubRoutes) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/subscriptions", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.String(http.StatusCreated, string(body))
	})
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.AllowedOrigins = []string{"https://adhan.example.com"}
	cfg.HTTP.MaxRequestBodySize = "64B"
	cfg.ApplyDefaults()

	m := metrics.NewNop()
	m.SubscribersPruned.Inc()

	return newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), m, stubRoutes{})
}

func TestAPIServer_CORSPreflight(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/subscriptions", nil)
	req.Header.Set(echo.HeaderOrigin, "https://adhan.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://adhan.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodDelete)
}

func TestAPIServer_BodyLimit(t *testing.T) {
	e := newTestServer(t)

	small := httptest.NewRecorder()
	e.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(`{"endpoint":"x"}`)))
	assert.Equal(t, http.StatusCreated, small.Code)
	assert.NotEmpty(t, small.Header().Get("X-Request-Id"))

	large := httptest.NewRecorder()
	e.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(strings.Repeat("a", 128))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
}

func TestAPIServer_Metrics(t *testing.T) {
	e := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "adhan_")
}
