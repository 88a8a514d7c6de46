package impl

import (
	"io"
	"log/slog"

	"coffeeshop/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxAttempts int) *config.Config {
	return &config.Config{
		IdentityDeletion: &config.IdentityDeletionConfig{
			MaxAttempts: maxAttempts,
		},
	}
}
