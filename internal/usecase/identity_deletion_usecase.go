package usecase

import (
	"context"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRetryLimitReached is returned when an identity deletion has used all of its attempts.
var ErrRetryLimitReached = errors.New("identity deletion retry limit reached")

// IdentityDeletionUsecase drives recorded identity provider deletions to completion.
type IdentityDeletionUsecase interface {
	// Retry re-attempts the provider deletion of a recorded intent.
	// Terminal intents are returned unchanged.
	Retry(ctx context.Context, deletionID string) (*entity.IdentityDeletion, error)

	// List returns intents in the given status, or all of them when status is empty.
	List(ctx context.Context, status entity.IdentityDeletionStatus) ([]*entity.IdentityDeletion, error)

	// RecoverStale retries skipped intents and pending intents nobody settled,
	// returning how many were resumed.
	RecoverStale(ctx context.Context) (int, error)
}
