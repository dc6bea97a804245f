package config

import (
	"testing"

	"github.com/Govind-619/Shelfnotes/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DATABASE_URL", "PORT", "ENV", "LOG_DIR", "LOG_LEVEL", "STATIC_DIR", "AUTO_MIGRATE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, utils.DefaultPort, cfg.Port)
	assert.Equal(t, utils.DefaultDBHost, cfg.DBHost)
	assert.Equal(t, utils.DefaultLogDir, cfg.LogDir)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=shelfnotes sslmode=disable",
		cfg.DSN())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("DB_NAME", "books")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.AutoMigrate)
	assert.Contains(t, cfg.DSN(), "dbname=books")
}

func TestLoadConfig_DatabaseURLOverridesParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/shelf?sslmode=require")
	t.Setenv("DB_HOST", "ignored")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/shelf?sslmode=require", cfg.DSN())
}

func TestLoadConfig_InvalidAutoMigrate(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "sometimes")

	_, err := LoadConfig()
	assert.Error(t, err)
}
