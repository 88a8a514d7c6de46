package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "coffeeshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "keeps the caller's id", header: "req-42", keep: true},
		{name: "generates an id", header: ""},
		{name: "replaces an id with spaces", header: "req 42"},
		{name: "replaces an oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)

			var fromEcho, fromCtx string
			var hasLogger bool
			e.GET("/", func(c echo.Context) error {
				fromEcho = deliverycontext.GetRequestID(c)
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.NotEmpty(t, fromEcho)
			assert.Equal(t, fromEcho, fromCtx)
			assert.Equal(t, fromEcho, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.True(t, hasLogger)
			if tt.keep {
				assert.Equal(t, tt.header, fromEcho)
			} else {
				assert.NotEqual(t, tt.header, fromEcho)
			}
		})
	}
}
