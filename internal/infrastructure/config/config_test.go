package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"PIZZA_APP_NAME",
	"PIZZA_APP_ENV",
	"PIZZA_APP_PORT",
	"PIZZA_DATABASE_DRIVER",
	"PIZZA_DATABASE_HOST",
	"PIZZA_DATABASE_PORT",
	"PIZZA_DATABASE_PASSWORD",
	"PIZZA_DATABASE_SQLITE_PATH",
	"PIZZA_DATABASE_AUTO_MIGRATE",
	"PIZZA_DATABASE_MAX_OPEN_CONNS",
	"PIZZA_DATABASE_MAX_IDLE_CONNS",
	"PIZZA_HTTP_CORS_ALLOW_ORIGINS",
	"PIZZA_BROKER_ENABLED",
	"PIZZA_BROKER_EXCHANGE",
	"PIZZA_ORDER_ENFORCE_TRANSITIONS",
	"PIZZA_SEED_ENABLED",
	"PIZZA_TELEMETRY_SAMPLING_RATIO",
	"PIZZA_TELEMETRY_METRICS_ENABLED",
	"PIZZA_TELEMETRY_METRICS_EXPORT_INTERVAL",
	"PIZZA_TELEMETRY_LOGS_ENABLED",
}

// clearEnv unsets every key for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "pizza-order-service", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "3000", cfg.App.Port)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "pizza_orders", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.False(t, cfg.Database.AutoMigrate)
		assert.True(t, cfg.Seed.Enabled)
		assert.False(t, cfg.Order.EnforceTransitions)
		assert.Equal(t, "public", cfg.HTTP.StaticDir)
		assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.Equal(t, "pizza.orders", cfg.Broker.Exchange)
		assert.False(t, cfg.Telemetry.MetricsEnabled)
		assert.False(t, cfg.Telemetry.LogsEnabled)
		assert.Equal(t, 60*time.Second, cfg.Telemetry.MetricsExportInterval)
	})

	t.Run("loads telemetry export settings", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PIZZA_TELEMETRY_METRICS_ENABLED", "true")
		t.Setenv("PIZZA_TELEMETRY_METRICS_EXPORT_INTERVAL", "15s")
		t.Setenv("PIZZA_TELEMETRY_LOGS_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Telemetry.MetricsEnabled)
		assert.Equal(t, 15*time.Second, cfg.Telemetry.MetricsExportInterval)
		assert.True(t, cfg.Telemetry.LogsEnabled)
	})

	t.Run("loads values from environment variables with PIZZA prefix", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PIZZA_APP_PORT", "9000")
		t.Setenv("PIZZA_DATABASE_DRIVER", "SQLite")
		t.Setenv("PIZZA_DATABASE_SQLITE_PATH", "/tmp/test.db")
		t.Setenv("PIZZA_ORDER_ENFORCE_TRANSITIONS", "true")
		t.Setenv("PIZZA_SEED_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "/tmp/test.db", cfg.Database.SQLitePath)
		assert.True(t, cfg.Database.AutoMigrate, "sqlite migrates on startup by default")
		assert.True(t, cfg.Order.EnforceTransitions)
		assert.False(t, cfg.Seed.Enabled)
	})

	t.Run("explicit auto_migrate wins over driver default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PIZZA_DATABASE_DRIVER", "sqlite")
		t.Setenv("PIZZA_DATABASE_AUTO_MIGRATE", "false")

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.Database.AutoMigrate)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PIZZA_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PIZZA_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("PIZZA_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("production requires a database password", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PIZZA_APP_ENV", "production")
		t.Setenv("PIZZA_HTTP_CORS_ALLOW_ORIGINS", "https://pizza.example.com")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("production rejects wildcard CORS", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PIZZA_APP_ENV", "production")
		t.Setenv("PIZZA_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("rejects sampling ratio above one", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PIZZA_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("postgres escapes credentials", func(t *testing.T) {
		d := DatabaseConfig{
			Driver:   DriverPostgres,
			Host:     "db",
			Port:     5432,
			User:     "pizza",
			Password: "p@ss word",
			DBName:   "orders",
			SSLMode:  "disable",
		}
		assert.Equal(t, "postgres://pizza:p%40ss%20word@db:5432/orders?sslmode=disable", d.DSN())
	})

	t.Run("sqlite enables foreign keys", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverSQLite, SQLitePath: "orders.db"}
		assert.Equal(t, "orders.db?_foreign_keys=on", d.DSN())
	})

	t.Run("sqlite keeps existing query", func(t *testing.T) {
		assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", SQLiteDSN("file::memory:?cache=shared"))
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
