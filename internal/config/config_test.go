package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /tmp/plans.db\nschema_path: /tmp/schema.json\nhistory_cap: 50\ndefault_zoom: 6\nno_color: true\n",
	), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plans.db", cfg.DBPath)
	assert.Equal(t, "/tmp/schema.json", cfg.SchemaPath)
	assert.Equal(t, 50, cfg.HistoryCap)
	assert.Equal(t, 6.0, cfg.DefaultZoom)
	assert.True(t, cfg.NoColor)
}

func TestApplyDefaults_EnvOverrides(t *testing.T) {
	t.Setenv("LIFEARC_DB", "/env/plans.db")
	t.Setenv("LIFEARC_SCHEMA", "/env/schema.json")

	cfg := &Config{DBPath: "/file/plans.db"}
	require.NoError(t, cfg.ApplyDefaults())

	assert.Equal(t, "/env/plans.db", cfg.DBPath, "env beats file")
	assert.Equal(t, "/env/schema.json", cfg.SchemaPath)
	assert.Equal(t, 100, cfg.HistoryCap)
	assert.Equal(t, 4.0, cfg.DefaultZoom)
}
