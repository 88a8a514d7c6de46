package handler

import (
	"net/http"
	"testing"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	mockUsecase "coffeeshop/internal/mocks/usecase"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "65f1c2a9e4b0a1b2c3d4e5f7"

func setupUserHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.PATCH("/users", h.UpdateLastSignIn)
	e.DELETE("/users/:id", h.DeleteUser)

	return e, userUC
}

func TestUserHandler_ListUsers(t *testing.T) {
	e, userUC := setupUserHandler(t)
	userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: testUserID, Email: "a@x.com", UID: "fb123", Fields: entity.Document{"name": "Ada", "visits": 3}},
	}, nil)

	rec := serve(e, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"_id":"`+testUserID+`","email":"a@x.com","uid":"fb123","name":"Ada","visits":3}]`,
		string(decodeEnvelope(t, rec).Data))
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("inserts the record", func(t *testing.T) {
		e, userUC := setupUserHandler(t)
		userUC.EXPECT().CreateUser(mock.Anything, &entity.User{Email: "a@x.com", UID: "fb123", Fields: entity.Document{}}).
			Return(&entity.InsertResult{InsertedID: testUserID}, nil)

		rec := serve(e, http.MethodPost, "/users", `{"email":"a@x.com","uid":"fb123"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var result entity.InsertResult
		decodeData(t, rec, &result)
		assert.Equal(t, testUserID, result.InsertedID)
	})

	t.Run("keeps every other field", func(t *testing.T) {
		e, userUC := setupUserHandler(t)
		userUC.EXPECT().CreateUser(mock.Anything, &entity.User{
			Email: "a@x.com",
			Fields: entity.Document{
				"name":           "Ada",
				"createdAt":      "Mon, 01 Jan 2024 09:00:00 GMT",
				"lastSignInTime": "Mon, 01 Jan 2024 09:00:00 GMT",
				"age":            float64(36),
			},
		}).Return(&entity.InsertResult{InsertedID: testUserID}, nil)

		rec := serve(e, http.MethodPost, "/users",
			`{"name":"Ada","email":"a@x.com","createdAt":"Mon, 01 Jan 2024 09:00:00 GMT","lastSignInTime":"Mon, 01 Jan 2024 09:00:00 GMT","age":36}`)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("uid must be a string", func(t *testing.T) {
		e, _ := setupUserHandler(t)

		rec := serve(e, http.MethodPost, "/users", `{"email":"a@x.com","uid":42}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "uid must be a string")
	})

	t.Run("email must be valid", func(t *testing.T) {
		e, _ := setupUserHandler(t)

		rec := serve(e, http.MethodPost, "/users", `{"email":"nope"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "email must be a valid email address")
	})
}

func TestUserHandler_UpdateLastSignIn(t *testing.T) {
	t.Run("updates the sign-in time by email", func(t *testing.T) {
		e, userUC := setupUserHandler(t)
		userUC.EXPECT().UpdateLastSignIn(mock.Anything, &usecase.SignInUpdate{
			Email:          "a@x.com",
			LastSignInTime: "Tue, 15 Oct 2024 10:00:00 GMT",
		}).Return(&entity.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

		rec := serve(e, http.MethodPatch, "/users", `{"email":"a@x.com","lastSignInTime":"Tue, 15 Oct 2024 10:00:00 GMT"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result entity.UpdateResult
		decodeData(t, rec, &result)
		assert.Equal(t, int64(1), result.ModifiedCount)
	})

	t.Run("sign-in time is required", func(t *testing.T) {
		e, _ := setupUserHandler(t)

		rec := serve(e, http.MethodPatch, "/users", `{"email":"a@x.com"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "lastSignInTime is required")
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("reports the identity outcome", func(t *testing.T) {
		e, userUC := setupUserHandler(t)
		userUC.EXPECT().DeleteUser(mock.Anything, testUserID).Return(&entity.UserDeletionResult{
			DeletedCount: 1,
			Identity:     &entity.IdentityDeletionOutcome{Status: entity.IdentityOutcomeDeleted, UID: "fb123"},
		}, nil)

		rec := serve(e, http.MethodDelete, "/users/"+testUserID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var result entity.UserDeletionResult
		decodeData(t, rec, &result)
		assert.Equal(t, int64(1), result.DeletedCount)
		require.NotNil(t, result.Identity)
		assert.Equal(t, entity.IdentityOutcomeDeleted, result.Identity.Status)
	})

	t.Run("partial success still answers 200", func(t *testing.T) {
		e, userUC := setupUserHandler(t)
		userUC.EXPECT().DeleteUser(mock.Anything, testUserID).Return(&entity.UserDeletionResult{
			DeletedCount: 1,
			Identity: &entity.IdentityDeletionOutcome{
				Status:     entity.IdentityOutcomeRetryScheduled,
				UID:        "fb123",
				DeletionID: "65f1c2a9e4b0a1b2c3d4e5ff",
				Error:      "provider unavailable",
			},
		}, nil)

		rec := serve(e, http.MethodDelete, "/users/"+testUserID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var result entity.UserDeletionResult
		decodeData(t, rec, &result)
		require.NotNil(t, result.Identity)
		assert.Equal(t, entity.IdentityOutcomeRetryScheduled, result.Identity.Status)
		assert.Equal(t, "65f1c2a9e4b0a1b2c3d4e5ff", result.Identity.DeletionID)
	})

	t.Run("malformed id", func(t *testing.T) {
		e, userUC := setupUserHandler(t)
		userUC.EXPECT().DeleteUser(mock.Anything, "bad").
			Return(nil, domainerrors.ErrInvalidID.WrapMessage("failed to find user"))

		rec := serve(e, http.MethodDelete, "/users/bad", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
	})
}
