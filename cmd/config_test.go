package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ordermanagement/cmd"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "orders")
	t.Setenv("DB_NAME", "orders")
	t.Setenv("USER_SERVICE_URL", "http://users:8080")
	t.Setenv("CAR_SERVICE_URL", "http://cars:8080")
	t.Setenv("ACCOUNTING_SERVICE_URL", "http://accounting:8080")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 5*time.Second, cfg.DependencyTimeout)
	assert.False(t, cfg.SerializeCarBookings)
	assert.Equal(t, "0 */5 * * * *", cfg.OverdueOrdersSchedule)
	assert.Empty(t, cfg.JaegerEndpoint)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DEPENDENCY_TIMEOUT", "750ms")
	t.Setenv("SERIALIZE_CAR_BOOKINGS", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 750*time.Millisecond, cfg.DependencyTimeout)
	assert.True(t, cfg.SerializeCarBookings)
	assert.Equal(t, "host=localhost port=5432 user=orders password= dbname=orders sslmode=disable", cfg.DSN())
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	setRequiredEnv(t)
	const key = "JAEGER_ENDPOINT"
	prev, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(key+"=http://jaeger:14268/api/traces\n"), 0o600))

	cfg, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "http://jaeger:14268/api/traces", cfg.JaegerEndpoint)
}

func TestLoadConfig_ReportsMissingSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("CAR_SERVICE_URL", "")

	_, err := cmd.LoadConfig("")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "CAR_SERVICE_URL")
}

func TestConfig_Validate(t *testing.T) {
	valid := cmd.Config{
		DBHost:               "localhost",
		DBUser:               "orders",
		DBName:               "orders",
		UserServiceURL:       "http://users",
		CarServiceURL:        "http://cars",
		AccountingServiceURL: "http://accounting",
		DependencyTimeout:    time.Second,
		LogLevel:             "warn",
	}
	require.NoError(t, valid.Validate())

	noTimeout := valid
	noTimeout.DependencyTimeout = 0
	require.ErrorIs(t, noTimeout.Validate(), errs.ErrValueIsInvalid)

	badLevel := valid
	badLevel.LogLevel = "loud"
	require.ErrorIs(t, badLevel.Validate(), errs.ErrValueIsInvalid)
}
