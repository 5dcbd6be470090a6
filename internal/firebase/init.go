package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"io.winapps.thiday/internal/config"
)

// InitFirebase initializes and returns a Firebase app instance. Without a
// service account file it falls back to application default credentials.
func InitFirebase(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	appConfig := &firebase.Config{
		ProjectID: cfg.ProjectID,
	}

	var opts []option.ClientOption
	if cfg.ServiceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	return app, nil
}

// InitFirestore returns a Firestore client for the app's project. The caller
// owns the client and must Close it.
func InitFirestore(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}
	return client, nil
}
