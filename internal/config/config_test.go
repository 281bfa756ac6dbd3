package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultAssetPath, cfg.AssetPath)
	assert.Equal(t, "public/Data/EA - Group04.xlsx", cfg.Workbook)
	assert.Equal(t, "public/Data/source_data", cfg.SourceDataDir)
	assert.Equal(t, DefaultAssetPath, cfg.ChartDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultWindowWidth, cfg.Window.Width)
	assert.Equal(t, DefaultWindowHeight, cfg.Window.Height)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "casestudy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("asset_path: assets\nlogging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.AssetPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultWorkbook, cfg.Workbook)
	assert.Equal(t, DefaultWindowWidth, cfg.Window.Width)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "casestudy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("asset_path: [unterminated\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvAssetPath, "/srv/assets")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogDev, "true")

	cfg, err := Load("missing.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/srv/assets", cfg.AssetPath)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// Registered so the variable is restored after the test; godotenv only
	// fills variables that are unset.
	t.Setenv(EnvWorkbook, "")
	require.NoError(t, os.Unsetenv(EnvWorkbook))

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte(EnvWorkbook+"=data/book.xlsx\n"), 0644))

	cfg, err := Load("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "data/book.xlsx", cfg.Workbook)
}

func TestSetWindowSize_Clamps(t *testing.T) {
	tests := []struct {
		width, height       float32
		wantWidth, wantHigh float32
	}{
		{1024, 768, 1024, 768},
		{100, 100, MinWindowWidth, MinWindowHeight},
		{640, 2000, 640, 2000},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.SetWindowSize(tt.width, tt.height)
		assert.Equal(t, tt.wantWidth, cfg.Window.Width)
		assert.Equal(t, tt.wantHigh, cfg.Window.Height)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := DefaultConfig()
	cfg.AssetPath = "custom/assets"
	cfg.ChartDir = "custom/charts"
	path := filepath.Join(dir, "nested", "casestudy.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestAssetFile(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("public", "assets", "qq_plot.png"), cfg.AssetFile("qq_plot.png"))
}
