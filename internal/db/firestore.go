package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/hosuracademy/academy-api/internal/config"
)

const defaultConnectTimeout = 10 * time.Second

// NewFirestoreClient opens a Firestore client for the configured project.
// Without a credentials file the client falls back to application default
// credentials, which also covers the FIRESTORE_EMULATOR_HOST setup.
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.Firestore.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
