package config

import "time"

const (
	BackendMongo     = "mongo"
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
	BackendMemory    = "memory"
)

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	Store    StoreConfig    `env-prefix:"STORE_"`
	Mongo    MongoConfig    `env-prefix:"MONGO_"`
	Postgres PostgresConfig `env-prefix:"POSTGRES_"`
	Redis    RedisConfig    `env-prefix:"REDIS_"`
	Firebase FirebaseConfig `env-prefix:"FIREBASE_"`
	Purge    PurgeConfig    `env-prefix:"PURGE_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
	// OwnerID stands in for the caller identity until real credentials exist.
	OwnerID string `env:"OWNER_ID" env-default:"test-user"`
}

type HTTPConfig struct {
	Addr            string        `env:"ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type StoreConfig struct {
	Backend string `env:"BACKEND" env-default:"mongo"`
}

type MongoConfig struct {
	URI          string `env:"URI" env-default:"mongodb://localhost:27017"`
	Database     string `env:"DATABASE" env-default:"thiday"`
	Collection   string `env:"COLLECTION" env-default:"words"`
	PingAttempts uint   `env:"PING_ATTEMPTS" env-default:"3"`
}

type PostgresConfig struct {
	// URL wins over the discrete fields when set.
	URL          string `env:"URL"`
	Host         string `env:"HOST" env-default:"localhost"`
	Port         string `env:"PORT" env-default:"5432"`
	User         string `env:"USER" env-default:"postgres"`
	Password     string `env:"PASSWORD"`
	Name         string `env:"DB" env-default:"thiday"`
	SSLMode      string `env:"SSLMODE" env-default:"disable"`
	PingAttempts uint   `env:"PING_ATTEMPTS" env-default:"3"`
}

type RedisConfig struct {
	Enabled  bool          `env:"ENABLED" env-default:"false"`
	Host     string        `env:"HOST" env-default:"localhost"`
	Port     string        `env:"PORT" env-default:"6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" env-default:"0"`
	TTL      time.Duration `env:"TTL" env-default:"24h"`
}

type FirebaseConfig struct {
	ProjectID          string `env:"PROJECT_ID"`
	ServiceAccountPath string `env:"SERVICE_ACCOUNT_PATH"`
	Collection         string `env:"COLLECTION" env-default:"words"`
}

type PurgeConfig struct {
	// Schedule is a standard 5-field cron spec evaluated in UTC. Empty disables the job.
	Schedule string `env:"SCHEDULE"`
}
