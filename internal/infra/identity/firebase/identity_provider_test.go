package firebase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"coffeeshop/config"
	"coffeeshop/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUserNotFound = errors.New("no user record found for the given identifier")

type fakeAuthClient struct {
	deleted  []string
	err      error
	token    *auth.Token
	tokenErr error
}

func (f *fakeAuthClient) DeleteUser(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)

	return f.err
}

func (f *fakeAuthClient) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.tokenErr
}

func newTestIdentityProvider(client *fakeAuthClient) *identityProvider {
	provider := newIdentityProvider(client)
	provider.isUserNotFound = func(err error) bool { return errors.Is(err, errUserNotFound) }

	return provider
}

func TestIdentityProvider_DeleteAccount(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   error
	}{
		{name: "deleted"},
		{name: "already gone", clientErr: errUserNotFound, wantErr: service.ErrIdentityAccountNotFound},
		{name: "provider failure", clientErr: errors.New("deadline exceeded")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeAuthClient{err: tt.clientErr}
			provider := newTestIdentityProvider(client)

			err := provider.DeleteAccount(context.Background(), "fb123")

			assert.Equal(t, []string{"fb123"}, client.deleted)
			switch {
			case tt.clientErr == nil:
				require.NoError(t, err)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrIdentityAccountNotFound)
				assert.ErrorIs(t, err, tt.clientErr)
			}
		})
	}
}

func TestIdentityProvider_DeleteAccount_EmptyUID(t *testing.T) {
	client := &fakeAuthClient{}
	provider := newTestIdentityProvider(client)

	require.Error(t, provider.DeleteAccount(context.Background(), ""))
	assert.Empty(t, client.deleted)
}

func TestNewIdentityProvider_NilClient(t *testing.T) {
	assert.Nil(t, NewIdentityProvider(nil))
	assert.Nil(t, NewTokenVerifier(nil))
}

func TestTokenVerifier_VerifyIDToken(t *testing.T) {
	client := &fakeAuthClient{token: &auth.Token{
		UID:    "fb123",
		Claims: map[string]any{"email": "ada@example.com"},
	}}
	verifier := &tokenVerifier{client: client}

	token, err := verifier.VerifyIDToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "fb123", token.UID)
	assert.Equal(t, "ada@example.com", token.Email)
}

func TestTokenVerifier_VerifyIDToken_Rejected(t *testing.T) {
	client := &fakeAuthClient{tokenErr: errors.New("token expired")}
	verifier := &tokenVerifier{client: client}

	_, err := verifier.VerifyIDToken(context.Background(), "id-token")
	require.Error(t, err)
}

func TestNewAuthClient_NotConfigured(t *testing.T) {
	client, err := NewAuthClient(Params{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Nil(t, client)
}
