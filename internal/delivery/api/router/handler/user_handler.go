package handler

import (
	"log/slog"
	"net/http"

	"coffeeshop/internal/delivery/api/response"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the user account routes
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// userKeys are the fields of a user document the core reads; the rest is stored as sent
type userKeys struct {
	Email string `json:"email" validate:"omitempty,email"`
	UID   string `json:"uid" validate:"max=128"`
}

// UpdateSignInRequest represents the request body for recording a sign-in
type UpdateSignInRequest struct {
	Email          string `json:"email" validate:"required,email"`
	LastSignInTime string `json:"lastSignInTime" validate:"required"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if users == nil {
		users = []*entity.User{}
	}

	return response.Success(c, http.StatusOK, users)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	if err := checkFieldNames(doc); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	var keys userKeys
	var ok bool
	if keys.Email, ok = doc.StringField(entity.UserFieldEmail); !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "email must be a string")
	}
	if keys.UID, ok = doc.StringField(entity.UserFieldUID); !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "uid must be a string")
	}

	if err := c.Validate(&keys); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.userUC.CreateUser(c.Request().Context(), &entity.User{
		Email:  keys.Email,
		UID:    keys.UID,
		Fields: doc.Without(entity.FieldKey, entity.UserFieldEmail, entity.UserFieldUID),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// UpdateLastSignIn handles PATCH /users
func (h *UserHandler) UpdateLastSignIn(c echo.Context) error {
	var req UpdateSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.userUC.UpdateLastSignIn(c.Request().Context(), &usecase.SignInUpdate{
		Email:          req.Email,
		LastSignInTime: req.LastSignInTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/:id.
// A removed record whose provider account could not be deleted still answers 200;
// the identity outcome in the body tells the caller what happened upstream.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.userUC.DeleteUser(ctx, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.Partial() {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("User deleted but identity account remains",
			slog.String("user_id", c.Param("id")),
			slog.String("identity_status", string(result.Identity.Status)),
		)
	}

	return response.Success(c, http.StatusOK, result)
}
