package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)

	// Policy defaults: established accounts reach depth 3, new accounts depth 5.
	assert.Equal(t, 3, cfg.Messaging.BaseCap)
	assert.Equal(t, 5, cfg.Messaging.RelaxedCap)
	assert.Equal(t, 30, cfg.Messaging.NewAccountDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("MSG_BASE_CAP", "2")
	t.Setenv("MSG_RELAXED_CAP", "4")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2, cfg.Messaging.BaseCap)
	assert.Equal(t, 4, cfg.Messaging.RelaxedCap)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("MSG_BASE_CAP", "not-a-number")

	cfg := Load()
	assert.Equal(t, 3, cfg.Messaging.BaseCap)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         "3306",
			Username:     "profnet_user",
			Password:     "secret",
			DatabaseName: "profnet_db",
		},
	}

	dsn := cfg.DSN()
	require.Equal(t,
		"profnet_user:secret@tcp(localhost:3306)/profnet_db?charset=utf8mb4&parseTime=True&loc=Local",
		dsn)
}

func TestConfig_DSN_FillsMissingHostPort(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Username:     "u",
			DatabaseName: "d",
		},
	}

	assert.Contains(t, cfg.DSN(), "@tcp(localhost:3306)/d")
}

func TestConfig_MongoURI(t *testing.T) {
	cfg := &Config{
		MongoDB: MongoConfig{Host: "mongo.internal", Port: "27017"},
	}

	assert.Equal(t, "mongodb://mongo.internal:27017", cfg.MongoURI())
}
