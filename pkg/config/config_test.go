package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tamaleria-api/pkg/config"
)

func TestLoad_EstrategiaEsObligatoria(t *testing.T) {
	_, err := config.Load()
	assert.Error(t, err, "sin RECONCILE_STRATEGY la aplicación no debe arrancar")
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("RECONCILE_STRATEGY", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "production", cfg.Corte.Strategy)
	assert.True(t, decimal.NewFromInt(22).Equal(cfg.Corte.UnitCost),
		"el costo unitario por defecto es 22")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_CostoUnitarioDesdeEnv(t *testing.T) {
	t.Setenv("RECONCILE_STRATEGY", "sales")
	t.Setenv("UNIT_COST", "23.50")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("23.50").Equal(cfg.Corte.UnitCost))
}

func TestLoad_CostoUnitarioInvalido(t *testing.T) {
	t.Setenv("RECONCILE_STRATEGY", "production")

	for _, raw := range []string{"abc", "-5"} {
		t.Setenv("UNIT_COST", raw)
		_, err := config.Load()
		assert.Error(t, err, "UNIT_COST %q debe rechazarse", raw)
	}
}

func TestDBConfig_DATABASE_URLTienePrioridad(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@host:5432/tamaleria?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}

func TestDBConfig_DSNEscapaCredenciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "tamales", Password: "p@ss/word",
		DBName: "tamaleria", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}
