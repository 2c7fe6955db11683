// Package firebase builds the shared Firebase Admin SDK app.
package firebase

import (
	"context"
	"log/slog"

	"photoverify/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app from config. It returns nil when Firebase is not configured.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	if cfg.Firebase == nil {
		logger.Info("Firebase not configured")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized", slog.String("project_id", cfg.Firebase.ProjectID))

	return app, nil
}
