package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// IdentityDeletionRepository persists identity provider deletion intents.
type IdentityDeletionRepository interface {
	// Create records a new intent and fills in its key and timestamps.
	Create(ctx context.Context, deletion *entity.IdentityDeletion) error

	// FindByID returns a single intent or ErrIdentityDeletionNotFound.
	FindByID(ctx context.Context, id string) (*entity.IdentityDeletion, error)

	// FindByStatus lists intents in any of the given states, oldest first.
	// No status means every intent.
	FindByStatus(ctx context.Context, statuses ...entity.IdentityDeletionStatus) ([]*entity.IdentityDeletion, error)

	// UpdateStatus stores the status, attempt count and last error of an intent.
	UpdateStatus(ctx context.Context, deletion *entity.IdentityDeletion) error
}
