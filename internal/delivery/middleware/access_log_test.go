package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccessLogEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewAccessLogMiddleware(logger, cfg).Handle)
	e.GET("/coffees", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/coffees/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no coffee")
	})
	e.DELETE("/coffees/:id", func(c echo.Context) error {
		return errors.New("store down")
	})

	return e
}

func TestAccessLogMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantLevel  string
	}{
		{name: "success", method: http.MethodGet, target: "/coffees", wantStatus: http.StatusOK, wantLevel: "INFO"},
		{name: "client error", method: http.MethodGet, target: "/coffees/1", wantStatus: http.StatusNotFound, wantLevel: "WARN"},
		{name: "handler error is logged with its final status", method: http.MethodDelete, target: "/coffees/1", wantStatus: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newAccessLogEcho(&buf, true)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
			assert.Equal(t, "HTTP Request", line["msg"])
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, float64(tt.wantStatus), line["status"])
			assert.Equal(t, "req-7", line["request_id"])
		})
	}
}

func TestAccessLogMiddleware_Disabled(t *testing.T) {
	var buf bytes.Buffer
	e := newAccessLogEcho(&buf, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/coffees/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, buf.String())
}
