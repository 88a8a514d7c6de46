package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootRoutes(t *testing.T) {
	e := newTestEcho()
	e.GET("/", Greeting)
	e.GET("/health", HealthCheck)

	rec := serve(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "My Coffee Shop Server is brewing Coffee!", rec.Body.String())

	rec = serve(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
