package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const appDir = "ai-detector"

// Config holds all ai-detector configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Analysis AnalysisConfig `toml:"analysis"`
}

type ServerConfig struct {
	Addr            string `toml:"addr"`
	MaxInputBytes   int    `toml:"max_input_bytes"`
	AllowedOrigin   string `toml:"allowed_origin"`
	ShutdownSeconds int    `toml:"shutdown_seconds"`
}

type AnalysisConfig struct {
	WindowWords  int `toml:"window_words"`
	OverlapWords int `toml:"overlap_words"`
	Workers      int `toml:"workers"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8001",
			MaxInputBytes:   1 << 20,
			AllowedOrigin:   "*",
			ShutdownSeconds: 5,
		},
		Analysis: AnalysisConfig{
			WindowWords:  0,
			OverlapWords: 0,
			Workers:      0,
		},
	}
}

// Load reads path when given, otherwise the first config.toml found in the
// standard locations, then applies AIDETECT_* environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		for _, p := range configPaths() {
			if _, err := os.Stat(p); err == nil {
				if _, err := toml.DecodeFile(p, &cfg); err != nil {
					return cfg, fmt.Errorf("parse config %s: %w", p, err)
				}
				break
			}
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Analysis.WindowWords < 0 {
		return fmt.Errorf("analysis.window_words must not be negative")
	}
	if c.Analysis.OverlapWords < 0 {
		return fmt.Errorf("analysis.overlap_words must not be negative")
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Addr = getenvString("AIDETECT_ADDR", cfg.Server.Addr)
	cfg.Server.MaxInputBytes = getenvInt("AIDETECT_MAX_INPUT_BYTES", cfg.Server.MaxInputBytes)
	cfg.Server.AllowedOrigin = getenvString("AIDETECT_ALLOWED_ORIGIN", cfg.Server.AllowedOrigin)
	cfg.Server.ShutdownSeconds = getenvInt("AIDETECT_SHUTDOWN_SECONDS", cfg.Server.ShutdownSeconds)
	cfg.Analysis.WindowWords = getenvInt("AIDETECT_WINDOW_WORDS", cfg.Analysis.WindowWords)
	cfg.Analysis.OverlapWords = getenvInt("AIDETECT_OVERLAP_WORDS", cfg.Analysis.OverlapWords)
	cfg.Analysis.Workers = getenvInt("AIDETECT_WORKERS", cfg.Analysis.Workers)
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appDir, "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", appDir, "config.toml"))
	}

	return paths
}

func getenvString(name, fallback string) string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return raw
}

func getenvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
