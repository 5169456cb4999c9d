// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// optionally layered on top of a YAML base file, loads them into
// structured Go types and validates that required values are present
// so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Load an optional YAML file named by EMPLOYEE_CONFIG_FILE.
//   - Map both sources into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any of the code below reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is stripped from every environment variable read by LoadConfig.
	//
	// Nested keys use "." as delimiter, e.g. EMPLOYEE_SERVER.PORT -> server.port.
	EnvPrefix = "EMPLOYEE_"

	// ConfigFileEnv names an optional YAML file loaded before the environment.
	ConfigFileEnv = "EMPLOYEE_CONFIG_FILE"

	// ServiceName is the name reported to logs and APM.
	ServiceName = "employee-service"
)

// Database drivers understood by the database package.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at runtime.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Notifications NotificationsConfig  `koanf:"notifications"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the allowed requests per second per client IP.
	// Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains the store selection, PostgreSQL connection
// parameters and pool tuning.
//
// The PostgreSQL fields are only required when Driver is "postgres";
// SQLitePath is only required when Driver is "sqlite".
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Host            string `koanf:"host" validate:"required_if=Driver postgres"`
	Port            int    `koanf:"port" validate:"required_if=Driver postgres"`
	User            string `koanf:"user" validate:"required_if=Driver postgres"`
	Password        string `koanf:"password" validate:"required_if=Driver postgres"`
	Name            string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode         string `koanf:"ssl_mode" validate:"required_if=Driver postgres"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
	SQLitePath      string `koanf:"sqlite_path" validate:"required_if=Driver sqlite"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port"; empty means Redis is not used.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// NotificationsConfig controls the welcome email sent when an employee is created.
//
// Sending goes through the asynq queue, so Redis must be configured when enabled.
type NotificationsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	ResendAPIKey string `koanf:"resend_api_key" validate:"required_if=Enabled true"`
	Sender       string `koanf:"sender"`
}

// LoadConfig loads configuration from an optional YAML file and environment
// variables, unmarshals it into Config, validates it, applies defaults and
// returns the resulting config.
//
// Behavior summary:
//   - Loads EMPLOYEE_CONFIG_FILE (YAML) when set
//   - Loads env vars with prefix EMPLOYEE_ on top (env wins)
//   - Unmarshals into Config and validates struct tags
//   - Starts from default observability, then forces service name + environment
//   - Validates observability config as well
func LoadConfig() (*Config, error) {
	// "." is the key-path delimiter: "server.port" means Config.Server.Port.
	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), YAMLParser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	// EMPLOYEE_DATABASE.HOST -> "database.host" (after trim + lower).
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	// Defaults first, so a partially configured observability block keeps
	// the values it does not override.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Database.Driver == "" {
		mainConfig.Database.Driver = DriverPostgres
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Notifications.Enabled && mainConfig.Redis.Address == "" {
		return nil, fmt.Errorf("notifications require redis.address to be set")
	}

	// Tracing/logging always see the same service name and the primary env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
