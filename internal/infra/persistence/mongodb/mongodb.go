// Package mongodb contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"coffeeshop/config"
	"coffeeshop/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client shared by every repository.
// The deployment is pinged on start and the client is disconnected on stop.
func New(params Params) (*mongo.Client, error) {
	uri, err := params.Config.Mongo.MongoURI()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build MongoDB URI")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetAppName(params.Config.Mongo.AppName).
		SetConnectTimeout(params.Config.Mongo.ConnectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database),
				slog.String("appName", params.Config.Mongo.AppName),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			if err := client.Disconnect(stopCtx); err != nil {
				return errors.Wrap(err, "failed to disconnect MongoDB")
			}

			return nil
		},
	})

	return client, nil
}

// NewDatabase returns the handle of the configured database.
func NewDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}
