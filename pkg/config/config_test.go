package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matex-app/matex-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "matex_db", cfg.DB.DBName)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

// Un entero malformado en el entorno cae al default, no a 0.
func TestLoad_EnteroMalformadoUsaDefault(t *testing.T) {
	t.Setenv("DB_PORT", "abc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestLoad_EnteroDesdeEntorno(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MAX_CONNS", "25")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
}

func TestDSN_EscapaCredenciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss/word",
		DBName: "matex_db", SSLMode: "disable",
	}
	assert.Contains(t, db.DSN(), "p%40ss%2Fword")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{DatabaseURL: "postgres://u:p@host:5432/db"}
	assert.Equal(t, "postgres://u:p@host:5432/db", db.ConnectionString())
}
