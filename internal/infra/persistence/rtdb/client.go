// Package rtdb implements the Realtime Database backed repositories for the
// high-churn data, live positions and wait times.
package rtdb

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"go.uber.org/fx"
	"google.golang.org/api/option"

	"parkplan/config"
	"parkplan/internal/errors"
)

// ClientParams holds dependencies for the Realtime Database client, injected by Fx
type ClientParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

// NewClient creates the shared Realtime Database client.
func NewClient(params ClientParams) (*db.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.DatabaseURL == "" {
		return nil, errors.New("firebase database URL must be configured")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create firebase app")
	}

	client, err := app.Database(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create realtime database client")
	}

	return client, nil
}
