package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbuild/orderflow/internal/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.PrettyLogs)
	assert.Empty(t, cfg.CatalogPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHOP_LOG_LEVEL", "debug")
	t.Setenv("SHOP_PRETTY_LOGS", "false")
	t.Setenv("SHOP_CATALOG_PATH", "/etc/shop/catalog.yaml")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.PrettyLogs)
	assert.Equal(t, "/etc/shop/catalog.yaml", cfg.CatalogPath)
}
