package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAssetPath is the base directory every presentation image is resolved against
const DefaultAssetPath = "public/assets"

// Fixed data locations used by the offline tools
const (
	DefaultWorkbook      = "public/Data/EA - Group04.xlsx"
	DefaultSourceDataDir = "public/Data/source_data"
	DefaultChartDir      = DefaultAssetPath
	DefaultConfigFile    = "casestudy.yaml"
	DefaultEnvFile       = ".env"
)

// Window sizing defaults and limits
const (
	DefaultWindowWidth  float32 = 1280
	DefaultWindowHeight float32 = 800
	MinWindowWidth      float32 = 640
	MinWindowHeight     float32 = 480
)

// Environment variable overrides
const (
	EnvAssetPath     = "CASESTUDY_ASSET_PATH"
	EnvWorkbook      = "CASESTUDY_WORKBOOK"
	EnvSourceDataDir = "CASESTUDY_SOURCE_DATA_DIR"
	EnvChartDir      = "CASESTUDY_CHART_DIR"
	EnvLogLevel      = "CASESTUDY_LOG_LEVEL"
	EnvLogDev        = "CASESTUDY_LOG_DEVELOPMENT"
)

// Config holds all case-study configuration
type Config struct {
	// Presentation assets
	AssetPath string `yaml:"asset_path"`

	// Offline data pipeline
	Workbook      string `yaml:"workbook"`
	SourceDataDir string `yaml:"source_data_dir"`
	ChartDir      string `yaml:"chart_dir"`

	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig configures the presentation window
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the fixed configuration the presentation ships with
func DefaultConfig() *Config {
	return &Config{
		AssetPath:     DefaultAssetPath,
		Workbook:      DefaultWorkbook,
		SourceDataDir: DefaultSourceDataDir,
		ChartDir:      DefaultChartDir,
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Values from a .env file next to the working directory and from
// CASESTUDY_* environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	cfg.normalize()

	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// SetWindowSize sets the window size, clamped to the minimum usable size
func (c *Config) SetWindowSize(width, height float32) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	c.Window.Width = width
	c.Window.Height = height
}

// AssetFile returns the path of a named asset under the asset base path
func (c *Config) AssetFile(name string) string {
	return filepath.Join(c.AssetPath, name)
}

// loadEnvFile populates the process environment from a dotenv file without
// overwriting variables that are already set
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvAssetPath); v != "" {
		c.AssetPath = v
	}
	if v := os.Getenv(EnvWorkbook); v != "" {
		c.Workbook = v
	}
	if v := os.Getenv(EnvSourceDataDir); v != "" {
		c.SourceDataDir = v
	}
	if v := os.Getenv(EnvChartDir); v != "" {
		c.ChartDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogDev); v != "" {
		if dev, err := strconv.ParseBool(v); err == nil {
			c.Logging.Development = dev
		}
	}
}

// normalize fills blanks left by a partial config file
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.AssetPath == "" {
		c.AssetPath = defaults.AssetPath
	}
	if c.Workbook == "" {
		c.Workbook = defaults.Workbook
	}
	if c.SourceDataDir == "" {
		c.SourceDataDir = defaults.SourceDataDir
	}
	if c.ChartDir == "" {
		c.ChartDir = c.AssetPath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Window.Width == 0 {
		c.Window.Width = defaults.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = defaults.Window.Height
	}
	c.SetWindowSize(c.Window.Width, c.Window.Height)
}
