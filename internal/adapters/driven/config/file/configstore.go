package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultCount      = 10
	DefaultDifficulty = "easy"
	DefaultServerPort = 8000
	DefaultRateLimit  = 10.0
	DefaultRateBurst  = 20
)

// Config is the mathgen configuration.
// Values are layered: built-in defaults, then config.toml, then MATHGEN_* environment variables.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Storage  StorageConfig  `toml:"storage"`
	Server   ServerConfig   `toml:"server"`
	MCP      MCPConfig      `toml:"mcp"`
}

// GenerateConfig holds defaults for generation requests.
type GenerateConfig struct {
	Count      int    `toml:"count" env:"MATHGEN_COUNT"`
	Difficulty string `toml:"difficulty" env:"MATHGEN_DIFFICULTY"`
	Filter     string `toml:"filter" env:"MATHGEN_FILTER"`
	// Seed of zero draws a fresh seed per generation.
	Seed int64 `toml:"seed" env:"MATHGEN_SEED"`
}

// StorageConfig controls persistence of generated datasets.
type StorageConfig struct {
	Enabled bool `toml:"enabled" env:"MATHGEN_STORAGE_ENABLED"`
	// DataDir defaults to ~/.mathgen/data when empty.
	DataDir string `toml:"data_dir" env:"MATHGEN_DATA_DIR"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `toml:"port" env:"MATHGEN_SERVER_PORT"`
	// RateLimit is the sustained requests per second per client.
	RateLimit float64 `toml:"rate_limit" env:"MATHGEN_RATE_LIMIT"`
	Burst     int     `toml:"burst" env:"MATHGEN_RATE_BURST"`
}

// MCPConfig configures the MCP server. Port 0 means stdio.
type MCPConfig struct {
	Port int `toml:"port" env:"MATHGEN_MCP_PORT"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Generate: GenerateConfig{
			Count:      DefaultCount,
			Difficulty: DefaultDifficulty,
		},
		Server: ServerConfig{
			Port:      DefaultServerPort,
			RateLimit: DefaultRateLimit,
			Burst:     DefaultRateBurst,
		},
	}
}

// ConfigStore is a file-based configuration store using TOML.
// Configuration is stored in config.toml within the mathgen config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewConfigStore creates a new TOML-based config store and loads it.
// If configDir is empty, defaults to ~/.mathgen/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".mathgen")
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		config:   DefaultConfig(),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Config returns a copy of the effective configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Load reads config.toml over the defaults, then applies environment overrides.
// A missing file is not an error.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := DefaultConfig()

	data, err := os.ReadFile(s.filePath)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", s.filePath, err)
		}
	case os.IsNotExist(err):
		// No config file yet - defaults apply
	default:
		return fmt.Errorf("reading %s: %w", s.filePath, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	s.config = cfg
	return nil
}

// Save writes the file-level configuration to disk with restricted permissions.
func (s *ConfigStore) Save(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return err
	}

	s.config = cfg
	return nil
}

// Exists reports whether the config file is present on disk.
func (s *ConfigStore) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
