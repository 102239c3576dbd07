package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigLocalPrefix(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("LOCAL_DB_HOST", "localhost")
	t.Setenv("LOCAL_DB_USER", "postgres")
	t.Setenv("LOCAL_DB_PASSWORD", "admin")
	t.Setenv("LOCAL_DB_NAME", "society_db")
	t.Setenv("DEFAULT_ADMIN_PASSWORD", "admin123")

	cfg := LoadConfig()
	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort) // default
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBUser:     "society",
		DBPassword: "secret",
		DBName:     "society_db",
		DBPort:     "5433",
		DBSSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal user=society password=secret dbname=society_db port=5433 sslmode=require TimeZone=Local",
		cfg.GetDSN())
}

func TestGetEnvRequiredPanics(t *testing.T) {
	assert.Panics(t, func() {
		getEnvRequired("SOCIETY_TEST_UNSET_VARIABLE")
	})
}
