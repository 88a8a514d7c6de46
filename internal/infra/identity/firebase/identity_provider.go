package firebase

import (
	"context"

	"coffeeshop/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type identityProvider struct {
	client         authClient
	isUserNotFound func(error) bool
}

// NewIdentityProvider wraps the auth client as the account deletion provider.
// A nil client yields a nil provider, which callers treat as "not configured".
func NewIdentityProvider(client *auth.Client) service.IdentityProvider {
	if client == nil {
		return nil
	}

	return newIdentityProvider(client)
}

func newIdentityProvider(client authClient) *identityProvider {
	return &identityProvider{
		client:         client,
		isUserNotFound: auth.IsUserNotFound,
	}
}

// DeleteAccount removes the Firebase user with the given uid.
func (p *identityProvider) DeleteAccount(ctx context.Context, uid string) error {
	if uid == "" {
		return errors.New("uid is required")
	}

	if err := p.client.DeleteUser(ctx, uid); err != nil {
		if p.isUserNotFound(err) {
			return errors.Wrapf(service.ErrIdentityAccountNotFound, "firebase user %s", uid)
		}

		return errors.Wrap(err, "failed to delete firebase user")
	}

	return nil
}
