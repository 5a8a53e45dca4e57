// Package config reads the backend configuration from the environment.
//
// A .env file in the working directory is loaded first, variables
// that are already set take precedence.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
)

// Config is the configuration of the backend.
type Config struct {
	StorageDriver string `koanf:"storage_driver" validate:"oneof=dynamodb sqlite"`

	// DynamoDB tables
	TableName         string `koanf:"table_name" validate:"required_if=StorageDriver dynamodb"`
	CategoryTableName string `koanf:"category_table_name" validate:"required_if=StorageDriver dynamodb"`
	CustomerTableName string `koanf:"customer_table_name" validate:"required_if=StorageDriver dynamodb"`
	AWSRegion         string `koanf:"aws_region"`
	DynamoDBEndpoint  string `koanf:"dynamodb_endpoint" validate:"omitempty,url"`

	SQLitePath string `koanf:"sqlite_path" validate:"required_if=StorageDriver sqlite"`

	Port             int    `koanf:"port" validate:"min=1,max=65535"`
	APIURL           string `koanf:"api_url" validate:"omitempty,url"`
	CORSAllowOrigins string `koanf:"cors_allow_origins"`
	EnablePprof      bool   `koanf:"enable_pprof"`
	LogFormat        string `koanf:"log_format" validate:"omitempty,oneof=json human"`
}

// defaults returns the configuration used for all unset variables.
func defaults() Config {
	return Config{
		StorageDriver: DriverDynamoDB,
		SQLitePath:    "data/ledger.db",
		Port:          8080,
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Variables are used without prefix, TABLE_NAME becomes table_name.
	// Empty variables are treated as unset.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load environment variables: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("could not parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// AllowOrigins returns the origin patterns allowed for CORS requests.
func (c Config) AllowOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}

// URL returns the external URL of the API.
//
// It defaults to localhost on the configured port.
func (c Config) URL() (*url.URL, error) {
	if c.APIURL == "" {
		return url.Parse(fmt.Sprintf("http://localhost:%d", c.Port))
	}

	u, err := url.Parse(strings.TrimSuffix(c.APIURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("the API_URL environment variable is not a valid URL: %w", err)
	}

	return u, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
