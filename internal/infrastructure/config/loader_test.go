package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Environment: Test,
		AWS: AWSConfig{
			Region:     "us-east-1",
			UserPoolID: "us-east-1_abc123",
			ClientID:   "client-abc",
		},
		Store: StoreConfig{
			Driver:           "dynamo",
			SummaryTable:     "summaries",
			TransactionTable: "transactions",
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("Complete dynamo config passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("Missing pool id fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.AWS.UserPoolID = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "userPoolId")
	})

	t.Run("Missing table names fail", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.SummaryTable = ""
		cfg.Store.TransactionTable = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Unknown store driver fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.Driver = "mongo"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid store driver")
	})

	t.Run("Postgres driver requires connection details", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.Driver = "postgres"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "postgres.host")

		cfg.Store.Postgres.Host = "localhost"
		cfg.Store.Postgres.Database = "fintrack"
		assert.NoError(t, cfg.Validate())
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Run("Defaults to development", func(t *testing.T) {
		t.Setenv("FT_ENV", "")
		assert.Equal(t, Development, getEnvironment())
	})

	t.Run("Lowercases the value", func(t *testing.T) {
		t.Setenv("FT_ENV", "PRODUCTION")
		assert.Equal(t, Production, getEnvironment())
	})
}
