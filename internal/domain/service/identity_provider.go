package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrIdentityAccountNotFound is returned when the identity provider has no account for a uid.
var ErrIdentityAccountNotFound = errors.New("identity account not found")

// IdentityProvider defines the admin operations used against the external identity provider
type IdentityProvider interface {
	// DeleteAccount removes the provider account with the given uid.
	// Returns ErrIdentityAccountNotFound when there is nothing to delete.
	DeleteAccount(ctx context.Context, uid string) error
}

// IdentityToken is a verified identity provider ID token
type IdentityToken struct {
	UID    string
	Email  string
	Claims map[string]any
}

// TokenVerifier verifies identity provider ID tokens presented by clients
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityToken, error)
}
