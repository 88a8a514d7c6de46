package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLogMiddleware writes one line per request through the request-scoped
// logger. It is a pass-through unless debug is enabled.
type AccessLogMiddleware struct {
	logger  *slog.Logger
	enabled bool
}

// NewAccessLogMiddleware creates the access log middleware
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		logger:  logger,
		enabled: cfg.Env.Debug,
	}
}

// Handle must run inside the request ID middleware.
// A handler error is rendered here, before logging, so the line carries the
// status the client receives; outer middleware then sees a committed response.
func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		m.write(c, time.Since(start), err)

		return nil
	}
}

func (m *AccessLogMiddleware) write(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	status := c.Response().Status

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), levelForStatus(status), "HTTP Request", attrs...)
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
