package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// UserRepository defines the document operations on the users collection.
type UserRepository interface {
	// FindAll returns every user document.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID returns a single user or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Insert stores a new user and returns its generated key.
	Insert(ctx context.Context, user *entity.User) (*entity.InsertResult, error)

	// UpdateLastSignInTime sets lastSignInTime on the user matching email.
	UpdateLastSignInTime(ctx context.Context, email, lastSignInTime string) (*entity.UpdateResult, error)

	// Delete removes the user with the given key. A missing key deletes nothing.
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}
