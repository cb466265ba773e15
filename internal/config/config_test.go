package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Directory != "Fetched_Images" {
		t.Errorf("expected directory Fetched_Images, got %q", cfg.Directory)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %s", cfg.Timeout)
	}
	if cfg.ChunkSize != 8192 {
		t.Errorf("expected chunk size 8192, got %d", cfg.ChunkSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imgfetch.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
directory: my_images
timeout: 10s
chunk_size: 16KB
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Directory != "my_images" {
		t.Errorf("expected directory my_images, got %q", cfg.Directory)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %s", cfg.Timeout)
	}
	if cfg.ChunkSize != 16*1024 {
		t.Errorf("expected chunk size 16384, got %d", cfg.ChunkSize)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	path := writeConfig(t, "directory: elsewhere\n")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Directory != "elsewhere" {
		t.Errorf("expected directory elsewhere, got %q", cfg.Directory)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("missing keys must keep defaults, got timeout %s", cfg.Timeout)
	}
	if cfg.ChunkSize != 8192 {
		t.Errorf("missing keys must keep defaults, got chunk size %d", cfg.ChunkSize)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad timeout", "timeout: soon\n"},
		{"bad chunk size", "chunk_size: huge\n"},
		{"bad yaml", ":\n  - [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadFromFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty directory", func(c *Config) { c.Directory = "" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"negative chunk size", func(c *Config) { c.ChunkSize = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
