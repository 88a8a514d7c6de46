package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	observations []observation
}

func (r *fakeRecorder) RecordHTTPRequest(method, route string, status int, _ time.Duration) {
	r.observations = append(r.observations, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware_Handle(t *testing.T) {
	recorder := &fakeRecorder{}
	e := echo.New()
	e.Use(NewMetricsMiddleware(recorder).Handle)
	e.GET("/coffees/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.DELETE("/coffees/:id", func(c echo.Context) error {
		return errors.New("store down")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/coffees/abc", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/coffees/abc", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Len(t, recorder.observations, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/coffees/:id", status: http.StatusNoContent}, recorder.observations[0])
	assert.Equal(t, observation{method: http.MethodDelete, route: "/coffees/:id", status: http.StatusInternalServerError}, recorder.observations[1])
}
