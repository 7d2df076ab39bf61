package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, StoreMongo, cfg.Database.Driver)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 4096, cfg.AI.MaxTokens)
	assert.Equal(t, 120*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 150*time.Second, cfg.Server.RequestTimeout)
	assert.False(t, cfg.Generation.RefundOnFailure)
	assert.Equal(t, "demo@example.com", cfg.Identity.DemoEmail)
	assert.Equal(t, "Demo User", cfg.Identity.DemoName)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_MongoURIRequiredForMongoDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGODB_URI is required")

	t.Setenv("STORE_DRIVER", StoreMemory)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Database.Driver)
}

func TestLoad_LegacyVariableNames(t *testing.T) {
	setRequired(t)
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "mongodb://legacy:27017")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("DB_NAME", "legacy_db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://legacy:27017", cfg.Database.URI)
	assert.Equal(t, "legacy_db", cfg.Database.Name)
}

func TestLoad_UnknownDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown STORE_DRIVER")
}

func TestLoad_RequestTimeoutMustExceedGenerationTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("GENERATION_TIMEOUT", "60s")
	t.Setenv("REQUEST_TIMEOUT", "30s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT")
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{Server: ServerConfig{CORSAllowedOrigins: "https://a.example, ,https://b.example"}}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}
