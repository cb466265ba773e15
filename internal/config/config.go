package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imgfetch/imgfetch/internal/progress"
	"github.com/imgfetch/imgfetch/internal/store"
)

// Config defines settings for the fetch pipeline.
type Config struct {
	// Directory is where fetched files are stored.
	Directory string `yaml:"directory"`

	// Timeout bounds the HTTP request, connect through body read.
	Timeout time.Duration `yaml:"timeout"`

	// ChunkSize is the read size for streaming response bodies.
	ChunkSize int64 `yaml:"chunk_size"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Directory: store.DefaultDir,
		Timeout:   30 * time.Second,
		ChunkSize: 8192,
	}
}

// yamlConfig is used for YAML unmarshaling with human-readable duration and
// byte-size strings.
type yamlConfig struct {
	Directory string `yaml:"directory"`
	Timeout   string `yaml:"timeout"`
	ChunkSize string `yaml:"chunk_size"`
}

// LoadFromFile loads configuration from a YAML file. Missing keys keep their
// default values.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.Directory != "" {
		cfg.Directory = yc.Directory
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if yc.ChunkSize != "" {
		size, err := progress.ParseBytes(yc.ChunkSize)
		if err != nil {
			return Config{}, fmt.Errorf("parse chunk_size: %w", err)
		}
		cfg.ChunkSize = size
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return errors.New("config: directory is required")
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	if c.ChunkSize <= 0 {
		return errors.New("config: chunk_size must be positive")
	}
	return nil
}
