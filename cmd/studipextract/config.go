package main

import (
	"os"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/N-Coder/studip-sync/extract"
	"github.com/bytedance/sonic"
)

// Config holds the extractor configurations. Keys missing from a config
// file keep their defaults.
type Config struct {
	Downloads extract.DownloadConfig `json:"downloads"`
	Seminars  extract.SeminarConfig  `json:"seminars"`
}

// DefaultConfig returns the configuration for the Stud.IP 2.x page layout.
func DefaultConfig() *Config {
	return &Config{
		Downloads: extract.DefaultDownloadConfig(),
		Seminars:  extract.DefaultSeminarConfig(),
	}
}

// LoadConfig reads a JSON config file on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, studipsync.Errorf(studipsync.EINVALID, "cannot read config file %q: %v", path, err)
	}
	if err := sonic.Unmarshal(data, cfg); err != nil {
		return nil, studipsync.Errorf(studipsync.EINVALID, "invalid config file %q: %v", path, err)
	}
	return cfg, nil
}
