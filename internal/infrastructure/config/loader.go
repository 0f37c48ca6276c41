package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the current environment from the
// YAML config file, then applies FT_-prefixed environment overrides.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("FT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Validate ensures the managed-service references required by every
// deployment are present.
func (c *Config) Validate() error {
	var missing []string

	if c.AWS.UserPoolID == "" {
		missing = append(missing, "aws.userPoolId (or FT_USER_POOL_ID)")
	}
	if c.AWS.ClientID == "" {
		missing = append(missing, "aws.clientId (or FT_CLIENT_ID)")
	}
	if c.Store.SummaryTable == "" {
		missing = append(missing, "store.summaryTable (or FT_SUMMARY_TABLE)")
	}
	if c.Store.TransactionTable == "" {
		missing = append(missing, "store.transactionTable (or FT_TRANSACTIONS_TABLE)")
	}
	if c.Store.Driver != "dynamo" && c.Store.Driver != "postgres" {
		return fmt.Errorf("invalid store driver: %s, must be dynamo or postgres", c.Store.Driver)
	}
	if c.Store.Driver == "postgres" {
		if c.Store.Postgres.Host == "" {
			missing = append(missing, "store.postgres.host (or FT_DB_HOST)")
		}
		if c.Store.Postgres.Database == "" {
			missing = append(missing, "store.postgres.database (or FT_DB_NAME)")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}
	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("aws.region", "us-east-1")

	v.SetDefault("store.driver", "dynamo")
	v.SetDefault("store.postgres.port", "5432")
	v.SetDefault("store.postgres.sslMode", "disable")
	v.SetDefault("store.postgres.maxOpenConns", 50)
	v.SetDefault("store.postgres.maxIdleConns", 25)
	v.SetDefault("store.postgres.connMaxLifetime", 30) // minutes
	v.SetDefault("store.postgres.queryTimeout", 5)     // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
}

// getEnvironment determines the environment from FT_ENV
func getEnvironment() string {
	env := os.Getenv("FT_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides prioritizes environment variables over config
// file values for sensitive and deployment-specific settings. The
// bare names match what the managed runtime injects.
func processEnvOverrides(v *viper.Viper) {
	if region := os.Getenv("REGION"); region != "" {
		v.Set("aws.region", region)
	}
	if poolID := os.Getenv("USER_POOL_ID"); poolID != "" {
		v.Set("aws.userPoolId", poolID)
	}
	if clientID := os.Getenv("CLIENT_ID"); clientID != "" {
		v.Set("aws.clientId", clientID)
	}
	if table := os.Getenv("SUMMARY_TABLE"); table != "" {
		v.Set("store.summaryTable", table)
	}
	if table := os.Getenv("TRANSACTIONS_TABLE"); table != "" {
		v.Set("store.transactionTable", table)
	}

	if dbHost := os.Getenv("FT_DB_HOST"); dbHost != "" {
		v.Set("store.postgres.host", dbHost)
	}
	if dbPort := os.Getenv("FT_DB_PORT"); dbPort != "" {
		v.Set("store.postgres.port", dbPort)
	}
	if dbUser := os.Getenv("FT_DB_USERNAME"); dbUser != "" {
		v.Set("store.postgres.username", dbUser)
	}
	if dbPass := os.Getenv("FT_DB_PASSWORD"); dbPass != "" {
		v.Set("store.postgres.password", dbPass)
	}
	if dbName := os.Getenv("FT_DB_NAME"); dbName != "" {
		v.Set("store.postgres.database", dbName)
	}

	if serverPort := os.Getenv("FT_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}
	if logLevel := os.Getenv("FT_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
	if driver := os.Getenv("FT_STORE_DRIVER"); driver != "" {
		v.Set("store.driver", driver)
	}
}

// processDurations converts duration fields from their raw numeric
// values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Store.Postgres.ConnMaxLifetime = time.Duration(config.Store.Postgres.ConnMaxLifetime) * time.Minute
	config.Store.Postgres.QueryTimeout = time.Duration(config.Store.Postgres.QueryTimeout) * time.Second
}
