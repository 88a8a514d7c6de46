package firebase

import (
	"context"

	"coffeeshop/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type tokenVerifier struct {
	client authClient
}

// NewTokenVerifier verifies Firebase ID tokens. A nil client yields a nil verifier.
func NewTokenVerifier(client *auth.Client) service.TokenVerifier {
	if client == nil {
		return nil
	}

	return &tokenVerifier{client: client}
}

func (v *tokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.IdentityToken, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify firebase ID token")
	}

	email, _ := token.Claims["email"].(string)

	return &service.IdentityToken{
		UID:    token.UID,
		Email:  email,
		Claims: token.Claims,
	}, nil
}
