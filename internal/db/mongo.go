package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"io.winapps.thiday/internal/config"
)

// InitMongo connects to MongoDB and verifies the connection
func InitMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.SugaredLogger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetMaxPoolSize(25).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Minute)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	ping := func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) }
	if err := pingWithRetry(ctx, "mongo", cfg.PingAttempts, ping, logger); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}
