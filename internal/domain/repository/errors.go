// Package repository defines the interfaces for the persistence layer.
package repository

import "github.com/pkg/errors"

// Domain-specific errors for document persistence.
var (
	// ErrInvalidID is returned when a key is not a valid store identifier.
	ErrInvalidID = errors.New("invalid document id")
	// ErrCoffeeNotFound is returned when a coffee is not found.
	ErrCoffeeNotFound = errors.New("coffee not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrIdentityDeletionNotFound is returned when a deletion record is not found.
	ErrIdentityDeletionNotFound = errors.New("identity deletion not found")
)
