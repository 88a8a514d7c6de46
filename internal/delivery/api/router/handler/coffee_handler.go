package handler

import (
	"log/slog"
	"net/http"

	"coffeeshop/internal/delivery/api/response"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CoffeeHandlerParams holds dependencies for CoffeeHandler, injected by Fx.
type CoffeeHandlerParams struct {
	fx.In

	CoffeeUC usecase.CoffeeUsecase
	Logger   *slog.Logger
}

// CoffeeHandler serves the coffee inventory routes
type CoffeeHandler struct {
	coffeeUC usecase.CoffeeUsecase
	logger   *slog.Logger
}

// NewCoffeeHandler is the constructor for CoffeeHandler
func NewCoffeeHandler(params CoffeeHandlerParams) *CoffeeHandler {
	return &CoffeeHandler{
		coffeeUC: params.CoffeeUC,
		logger:   params.Logger,
	}
}

// ListCoffees handles GET /coffees
func (h *CoffeeHandler) ListCoffees(c echo.Context) error {
	coffees, err := h.coffeeUC.ListCoffees(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if coffees == nil {
		coffees = []*entity.Coffee{}
	}

	return response.Success(c, http.StatusOK, coffees)
}

// GetCoffee handles GET /coffees/:id; an unknown id answers data:null
func (h *CoffeeHandler) GetCoffee(c echo.Context) error {
	coffee, err := h.coffeeUC.GetCoffee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if coffee == nil {
		return response.Success(c, http.StatusOK, nil)
	}

	return response.Success(c, http.StatusOK, coffee)
}

// CreateCoffee handles POST /coffees; the body is stored as sent
func (h *CoffeeHandler) CreateCoffee(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return response.BindingError(c, "Invalid coffee input")
	}

	if err := checkFieldNames(doc); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.coffeeUC.CreateCoffee(c.Request().Context(), entity.NewCoffee(doc))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// UpdateCoffee handles PUT /coffees/:id, setting every supplied field and
// creating the coffee when the id is unknown
func (h *CoffeeHandler) UpdateCoffee(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return response.BindingError(c, "Invalid coffee input")
	}

	if err := checkFieldNames(doc); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	fields := doc.Without(entity.FieldKey)
	if len(fields) == 0 {
		return response.BadRequest(c, "VALIDATION_FAILED", "at least one coffee field is required")
	}

	result, err := h.coffeeUC.UpdateCoffee(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// DeleteCoffee handles DELETE /coffees/:id
func (h *CoffeeHandler) DeleteCoffee(c echo.Context) error {
	result, err := h.coffeeUC.DeleteCoffee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetCoffeeQR handles GET /coffees/:id/qr
func (h *CoffeeHandler) GetCoffeeQR(c echo.Context) error {
	png, err := h.coffeeUC.GenerateCoffeeQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.Blob(http.StatusOK, "image/png", png)
}
