package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"EUR"}, cfg.AllowedCurrencies)
	assert.Equal(t, 0.01, cfg.TotalTolerance)
	assert.Equal(t, DefaultKnownSellers, cfg.KnownSellers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ALLOWED_CURRENCIES", "EUR, CHF")
	t.Setenv("TOTAL_TOLERANCE", "0.05")
	t.Setenv("KNOWN_SELLERS", "Firma A,Firma B")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"EUR", "CHF"}, cfg.AllowedCurrencies)
	assert.Equal(t, 0.05, cfg.TotalTolerance)
	assert.Equal(t, []string{"Firma A", "Firma B"}, cfg.KnownSellers)
}

func TestLoadRejectsBadTolerance(t *testing.T) {
	t.Setenv("TOTAL_TOLERANCE", "viel")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNegativeTolerance(t *testing.T) {
	t.Setenv("TOTAL_TOLERANCE", "-1")

	_, err := Load()
	assert.Error(t, err)
}
