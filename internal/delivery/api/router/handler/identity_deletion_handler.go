package handler

import (
	"net/http"

	"coffeeshop/internal/delivery/api/response"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityDeletionHandlerParams holds dependencies for IdentityDeletionHandler, injected by Fx.
type IdentityDeletionHandlerParams struct {
	fx.In

	DeletionUC usecase.IdentityDeletionUsecase
}

// IdentityDeletionHandler exposes recorded identity account deletions to operators
type IdentityDeletionHandler struct {
	deletionUC usecase.IdentityDeletionUsecase
}

// NewIdentityDeletionHandler is the constructor for IdentityDeletionHandler
func NewIdentityDeletionHandler(params IdentityDeletionHandlerParams) *IdentityDeletionHandler {
	return &IdentityDeletionHandler{deletionUC: params.DeletionUC}
}

// ListIdentityDeletionsRequest filters the listing by status
type ListIdentityDeletionsRequest struct {
	Status string `query:"status" json:"status" validate:"omitempty,oneof=pending completed failed cancelled skipped"`
}

// ListIdentityDeletions handles GET /identity-deletions?status=
func (h *IdentityDeletionHandler) ListIdentityDeletions(c echo.Context) error {
	var req ListIdentityDeletionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	deletions, err := h.deletionUC.List(c.Request().Context(), entity.IdentityDeletionStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if deletions == nil {
		deletions = []*entity.IdentityDeletion{}
	}

	return response.Success(c, http.StatusOK, deletions)
}
