package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Parse reads an optional .env file and then the process environment. A
// missing .env is fine; one that exists but cannot be read is an error.
func Parse() (Config, error) {
	// Runs before the zap logger exists, hence the standard logger
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate cfg: %v", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case BackendMongo, BackendFirestore, BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Store.Backend == BackendFirestore && c.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required for the firestore backend")
	}

	if c.App.OwnerID == "" {
		return fmt.Errorf("APP_OWNER_ID must not be empty")
	}

	return nil
}
