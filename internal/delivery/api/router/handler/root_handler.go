package handler

import (
	"net/http"

	"coffeeshop/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// Greeting answers the root path the way the shop always has
func Greeting(c echo.Context) error {
	return c.String(http.StatusOK, constants.Greeting)
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
