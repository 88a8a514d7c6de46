package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	recorder HTTPRecorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder HTTPRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle observes the request after the handler and error handler have run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let echo write the error response so the recorded status is the real one.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.recorder.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
