package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestSaveThenLoadConfig(t *testing.T) {
	dir := t.TempDir()
	want := Config{Theme: themes[2].Name, Sound: false, Volume: 40, Scale: 2}
	require.NoError(t, saveConfig(dir, want))

	got, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigNormalizesValues(t *testing.T) {
	dir := t.TempDir()
	data := `{"theme":"No Such Theme","sound":true,"volume":250,"scale":9}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0o644))

	config, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, themes[0].Name, config.Theme)
	assert.Equal(t, 100, config.Volume)
	assert.Equal(t, 3, config.Scale)
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"scale":2}`), 0o644))

	config, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, config.Scale)
	assert.True(t, config.Sound)
	assert.Equal(t, 70, config.Volume)
}

func TestLoadConfigRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o644))

	config, err := loadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
	assert.Equal(t, defaultConfig(), config)
}

func TestConfigPathCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "termtris")
	path, err := configPath(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.json"), path)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
