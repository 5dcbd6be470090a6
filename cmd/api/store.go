package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"io.winapps.thiday/internal/config"
	"io.winapps.thiday/internal/db"
	firebaseutil "io.winapps.thiday/internal/firebase"
	"io.winapps.thiday/internal/store"
)

// openStore builds the configured backend. The returned func releases its
// connections.
func openStore(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, err := db.InitMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }

		s := store.NewMongo(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
		if err := s.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		return s, closeFn, nil

	case config.BackendFirestore:
		app, err := firebaseutil.InitFirebase(ctx, cfg.Firebase)
		if err != nil {
			return nil, nil, err
		}
		client, err := firebaseutil.InitFirestore(ctx, app)
		if err != nil {
			return nil, nil, err
		}
		return store.NewFirestore(client, cfg.Firebase.Collection), func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		pool, err := db.InitPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgres(pool), pool.Close, nil

	case config.BackendMemory:
		logger.Warnw("using in-memory word store; data is lost on restart")
		return store.NewMemory(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
