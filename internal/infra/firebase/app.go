// Package firebase initialises the Firebase Admin app shared by Firestore
// persistence and ID token verification.
package firebase

import (
	"context"
	"log/slog"

	"shopseva/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp returns nil when Firebase is not configured.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Info("Firebase not configured")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized", slog.String("project_id", cfg.Firebase.ProjectID))

	return app, nil
}

// NewAuthClient returns nil when the app is absent or ID token sign-in is disabled.
func NewAuthClient(ctx context.Context, app *firebase.App, cfg *config.Config) (*auth.Client, error) {
	if app == nil || cfg.Firebase == nil || !cfg.Firebase.VerifyIDTokens {
		return nil, nil
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return client, nil
}
