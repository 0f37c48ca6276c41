package config

import "time"

// Config holds all configuration for the application. It is built once
// at process start and passed by reference; components never read
// ambient environment state themselves.
type Config struct {
	Environment string       `mapstructure:"environment"`
	Server      ServerConfig `mapstructure:"server"`
	AWS         AWSConfig    `mapstructure:"aws"`
	Store       StoreConfig  `mapstructure:"store"`
	Logger      LoggerConfig `mapstructure:"logger"`
}

// ServerConfig contains settings for the local HTTP harness
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// AWSConfig contains the managed-service references: region, the user
// pool and app client of the identity directory
type AWSConfig struct {
	Region     string `mapstructure:"region"`
	UserPoolID string `mapstructure:"userPoolId"`
	ClientID   string `mapstructure:"clientId"`
}

// StoreConfig selects and configures the record store backend
type StoreConfig struct {
	// Driver is "dynamo" for the managed store or "postgres" for
	// self-hosted deployments
	Driver           string         `mapstructure:"driver"`
	SummaryTable     string         `mapstructure:"summaryTable"`
	TransactionTable string         `mapstructure:"transactionTable"`
	Postgres         PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig contains connection settings for the postgres driver
type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
