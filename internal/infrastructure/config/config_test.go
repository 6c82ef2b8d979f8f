package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"SMARTVILLE_APP_NAME":          os.Getenv("SMARTVILLE_APP_NAME"),
		"SMARTVILLE_APP_ENV":           os.Getenv("SMARTVILLE_APP_ENV"),
		"SMARTVILLE_APP_PORT":          os.Getenv("SMARTVILLE_APP_PORT"),
		"SMARTVILLE_DATABASE_HOST":     os.Getenv("SMARTVILLE_DATABASE_HOST"),
		"SMARTVILLE_DATABASE_PORT":     os.Getenv("SMARTVILLE_DATABASE_PORT"),
		"SMARTVILLE_DATABASE_USER":     os.Getenv("SMARTVILLE_DATABASE_USER"),
		"SMARTVILLE_DATABASE_PASSWORD": os.Getenv("SMARTVILLE_DATABASE_PASSWORD"),
		"SMARTVILLE_DATABASE_DBNAME":   os.Getenv("SMARTVILLE_DATABASE_DBNAME"),
		"SMARTVILLE_DATABASE_SSLMODE":  os.Getenv("SMARTVILLE_DATABASE_SSLMODE"),
		"SMARTVILLE_JWT_SECRET":        os.Getenv("SMARTVILLE_JWT_SECRET"),
		"SMARTVILLE_REDIS_HOST":        os.Getenv("SMARTVILLE_REDIS_HOST"),
		"SMARTVILLE_NOTIFY_WORKERS":    os.Getenv("SMARTVILLE_NOTIFY_WORKERS"),
		"SMARTVILLE_GEO_DATASET_PATH":  os.Getenv("SMARTVILLE_GEO_DATASET_PATH"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "smartville", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "smartville", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "localhost", cfg.Redis.Host)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiration)
		assert.Equal(t, "smartville", cfg.JWT.Issuer)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 200*time.Millisecond, cfg.Log.SlowQueryThreshold)
		assert.Equal(t, "smartville:notifications", cfg.Notify.QueueKey)
		assert.Equal(t, 4, cfg.Notify.Workers)
		assert.Equal(t, 5*time.Second, cfg.Notify.PollTimeout)
		assert.Equal(t, "no-reply@smartville.rw", cfg.Mail.From)
		assert.Equal(t, "", cfg.Geo.DatasetPath)
	})

	t.Run("loads values from environment variables with SMARTVILLE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("SMARTVILLE_APP_NAME", "test-app")
		os.Setenv("SMARTVILLE_APP_ENV", "testing")
		os.Setenv("SMARTVILLE_APP_PORT", "9000")
		os.Setenv("SMARTVILLE_DATABASE_HOST", "testdb.local")
		os.Setenv("SMARTVILLE_DATABASE_PORT", "5433")
		os.Setenv("SMARTVILLE_DATABASE_USER", "testuser")
		os.Setenv("SMARTVILLE_DATABASE_PASSWORD", "testpass")
		os.Setenv("SMARTVILLE_DATABASE_DBNAME", "testdb")
		os.Setenv("SMARTVILLE_DATABASE_SSLMODE", "require")
		os.Setenv("SMARTVILLE_REDIS_HOST", "redis.local")
		os.Setenv("SMARTVILLE_NOTIFY_WORKERS", "8")
		os.Setenv("SMARTVILLE_GEO_DATASET_PATH", "/data/villages.json")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, "redis.local", cfg.Redis.Host)
		assert.Equal(t, 8, cfg.Notify.Workers)
		assert.Equal(t, "/data/villages.json", cfg.Geo.DatasetPath)
	})

	t.Run("production requires a strong jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("SMARTVILLE_APP_ENV", "production")
		os.Setenv("SMARTVILLE_DATABASE_PASSWORD", "secret")
		os.Setenv("SMARTVILLE_DATABASE_SSLMODE", "require")
		os.Setenv("SMARTVILLE_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects disabled ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("SMARTVILLE_APP_ENV", "production")
		os.Setenv("SMARTVILLE_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		os.Setenv("SMARTVILLE_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "smartville",
		Password: "pw",
		DBName:   "smartville",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "host=db.local port=5432 user=smartville password=pw dbname=smartville sslmode=disable", dsn)
}

func TestRedisConfigAddr(t *testing.T) {
	cfg := RedisConfig{Host: "redis.local", Port: 6380}
	assert.Equal(t, "redis.local:6380", cfg.Addr())
}

func TestValidate(t *testing.T) {
	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Database.MaxOpenConns = 5
		cfg.Database.MaxIdleConns = 10

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})

	t.Run("accepts defaults", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		assert.NoError(t, cfg.validate())
	})
}
