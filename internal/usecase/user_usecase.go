package usecase

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// SignInUpdate carries a sign-in timestamp for the user matching Email.
type SignInUpdate struct {
	Email          string
	LastSignInTime string
}

// UserUsecase defines the user account operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.InsertResult, error)
	UpdateLastSignIn(ctx context.Context, input *SignInUpdate) (*entity.UpdateResult, error)

	// DeleteUser removes the user record and then its identity provider account, if any.
	// The store deletion count is returned even when the provider step fails; the
	// provider outcome is reported in the result.
	DeleteUser(ctx context.Context, id string) (*entity.UserDeletionResult, error)
}
