package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestParse_Defaults(t *testing.T) {
	for _, key := range []string{"STORE_BACKEND", "HTTP_ADDR", "HTTP_SHUTDOWN_TIMEOUT", "APP_OWNER_ID", "MONGO_COLLECTION", "REDIS_TTL", "REDIS_ENABLED", "PURGE_SCHEDULE"} {
		unsetEnv(t, key)
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, BackendMongo, cfg.Store.Backend)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "test-user", cfg.App.OwnerID)
	assert.Equal(t, "words", cfg.Mongo.Collection)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Empty(t, cfg.Purge.Schedule)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("HTTP_ADDR", ":9091")
	t.Setenv("APP_OWNER_ID", "alice")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_TTL", "1h")
	t.Setenv("PURGE_SCHEDULE", "0 3 * * *")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, ":9091", cfg.HTTP.Addr)
	assert.Equal(t, "alice", cfg.App.OwnerID)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "0 3 * * *", cfg.Purge.Schedule)
}

func TestParse_UnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cassandra")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestParse_FirestoreNeedsProject(t *testing.T) {
	t.Setenv("STORE_BACKEND", "firestore")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	_, err := Parse()
	require.Error(t, err)
}

func TestParse_DotEnv(t *testing.T) {
	unsetEnv(t, "APP_OWNER_ID")
	unsetEnv(t, "STORE_BACKEND")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_OWNER_ID=from-dotenv\nSTORE_BACKEND=memory\n"), 0o600))
	chdir(t, dir)

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.OwnerID)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
}

func TestParse_UnreadableDotEnv(t *testing.T) {
	dir := t.TempDir()
	// A directory named .env exists but cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o700))
	chdir(t, dir)

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load .env")
}

// chdir changes the working directory to dir and restores it when the test
// ends, like testing.T.Chdir in newer Go releases.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
