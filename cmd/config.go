package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"ordermanagement/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	UserServiceURL       string
	CarServiceURL        string
	AccountingServiceURL string
	DependencyTimeout    time.Duration

	SerializeCarBookings  bool
	OverdueOrdersSchedule string

	JaegerEndpoint string
	LogLevel       string
}

// LoadConfig reads envFile into the process environment if it exists, then
// builds the configuration from the environment. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DEPENDENCY_TIMEOUT", "5s")
	v.SetDefault("SERIALIZE_CAR_BOOKINGS", false)
	v.SetDefault("OVERDUE_ORDERS_SCHEDULE", "0 */5 * * * *")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{
		HTTPPort:              v.GetString("HTTP_PORT"),
		DBHost:                v.GetString("DB_HOST"),
		DBPort:                v.GetString("DB_PORT"),
		DBUser:                v.GetString("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBName:                v.GetString("DB_NAME"),
		DBSslMode:             v.GetString("DB_SSLMODE"),
		UserServiceURL:        v.GetString("USER_SERVICE_URL"),
		CarServiceURL:         v.GetString("CAR_SERVICE_URL"),
		AccountingServiceURL:  v.GetString("ACCOUNTING_SERVICE_URL"),
		DependencyTimeout:     v.GetDuration("DEPENDENCY_TIMEOUT"),
		SerializeCarBookings:  v.GetBool("SERIALIZE_CAR_BOOKINGS"),
		OverdueOrdersSchedule: v.GetString("OVERDUE_ORDERS_SCHEDULE"),
		JaegerEndpoint:        v.GetString("JAEGER_ENDPOINT"),
		LogLevel:              v.GetString("LOG_LEVEL"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or malformed setting.
func (c Config) Validate() error {
	required := []struct {
		key, value string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"USER_SERVICE_URL", c.UserServiceURL},
		{"CAR_SERVICE_URL", c.CarServiceURL},
		{"ACCOUNTING_SERVICE_URL", c.AccountingServiceURL},
	}

	var problems []error
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(r.key))
		}
	}
	if c.DependencyTimeout <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError("DEPENDENCY_TIMEOUT"))
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}
	return errors.Join(problems...)
}

// DSN is the libpq connection string for the order store.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
