package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "coffeeshop/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds caller supplied IDs; longer ones are replaced.
const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an ID, echoes it in X-Request-Id,
// and binds a logger carrying it to the request context for the usecases.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process keeps a well-formed caller ID and otherwise generates one.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := acceptRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// acceptRequestID returns id when it is short printable ASCII, otherwise "".
func acceptRequestID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > maxRequestIDLength {
		return ""
	}

	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return ""
		}
	}

	return id
}
