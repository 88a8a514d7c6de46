// Package firebase adapts the Firebase Admin SDK to the identity provider contracts.
package firebase

import (
	"context"
	"log/slog"

	"coffeeshop/config"

	firebasesdk "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// authClient is the part of *auth.Client used by this package.
type authClient interface {
	DeleteUser(ctx context.Context, uid string) error
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// NewAuthClient creates the Firebase Auth admin client.
// It returns nil without error when Firebase is not configured.
func NewAuthClient(params Params) (*auth.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Warn("Firebase is not configured, identity accounts will not be deleted")

		return nil, nil
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebasesdk.Config
	if cfg.ProjectID != "" {
		appConfig = &firebasesdk.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebasesdk.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	params.Logger.Info("Firebase auth client initialized", slog.String("projectId", cfg.ProjectID))

	return client, nil
}
