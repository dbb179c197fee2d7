package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Upstream holds the tourism platform API configuration.
	Upstream UpstreamConfig `mapstructure:",squash"`

	// Redis holds the cache configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Auth holds the token verification configuration.
	Auth AuthConfig `mapstructure:",squash"`

	// Reports holds the sales reporting configuration.
	Reports ReportsConfig `mapstructure:",squash"`
}

// UpstreamConfig holds the connection details for the tourism platform API,
// the system of record for bookings, purchases and wallets.
type UpstreamConfig struct {
	// URL is the base URL of the tourism platform API.
	URL string `mapstructure:"PLATFORM_API_URL" required:"true"`
	// ServiceToken is the bearer token used for service-to-service calls.
	ServiceToken string `mapstructure:"PLATFORM_API_TOKEN" required:"true"`
	// TimeoutSeconds is the per-request timeout for upstream calls.
	TimeoutSeconds int `mapstructure:"PLATFORM_API_TIMEOUT_SECONDS" default:"10"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL is the Redis connection string (redis://[:password@]host[:port][/db]).
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379"`
	// CacheTTLSeconds is how long upstream reads stay cached.
	CacheTTLSeconds int `mapstructure:"CACHE_TTL_SECONDS" default:"60"`
}

// AuthConfig holds the JWT verification settings.
type AuthConfig struct {
	// JWTSecret is the HMAC secret shared with the platform's token issuer.
	JWTSecret string `mapstructure:"JWT_SECRET" required:"true"`
}

// ReportsConfig holds the sales reporting settings.
type ReportsConfig struct {
	// PlatformFeeRate is the cut retained on gross transaction value.
	PlatformFeeRate float64 `mapstructure:"PLATFORM_FEE_RATE" default:"0.10"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags walks the struct fields and binds env keys and default values
// in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
