package pbc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meldlab/pbckit/pkg/pbc"
)

func validConnection() pbc.ConnectionConfig {
	return pbc.ConnectionConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "liver_transplant",
		Username: "postgres",
		Password: "password",
	}
}

func TestConnectionConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := validConnection()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := validConnection()
		cfg.Host = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, pbc.ErrInvalidConfig)
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := validConnection()
		cfg.Port = 70000
		assert.ErrorIs(t, cfg.Validate(), pbc.ErrInvalidConfig)
	})

	t.Run("collects multiple failures", func(t *testing.T) {
		cfg := pbc.ConnectionConfig{}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "host is required")
		assert.Contains(t, err.Error(), "database is required")
		assert.Contains(t, err.Error(), "username is required")
	})
}

func TestConvertConfig_Validate(t *testing.T) {
	cfg := pbc.ConvertConfig{
		DataFile:     "pbc.dat.txt",
		OutputPath:   "pbc_data.csv",
		MLOutputPath: "pbc_ml_ready.csv",
	}
	assert.NoError(t, cfg.Validate())

	cfg.MLOutputPath = ""
	assert.ErrorIs(t, cfg.Validate(), pbc.ErrInvalidConfig)
}

func TestLoadConfig_Validate(t *testing.T) {
	cfg := pbc.LoadConfig{
		DataFile:   "pbc.dat.txt",
		SchemaFile: "pbc_schema.sql",
		Connection: validConnection(),
		Timeout:    time.Minute,
	}
	assert.NoError(t, cfg.Validate())

	cfg.Timeout = -1
	assert.ErrorIs(t, cfg.Validate(), pbc.ErrInvalidConfig)

	cfg = pbc.LoadConfig{Connection: validConnection()}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data file is required")
	assert.Contains(t, err.Error(), "schema file is required")
}
