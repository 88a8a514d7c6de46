// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateRepoError maps repository sentinels onto application errors so that
// handlers can answer with the right status. Anything else is wrapped as is.
func translateRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return domainerrors.ErrInvalidID.WrapMessage(message)
	case errors.Is(err, repository.ErrCoffeeNotFound):
		return domainerrors.ErrCoffeeNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrIdentityDeletionNotFound):
		return domainerrors.ErrIdentityDeletionNotFound.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}
