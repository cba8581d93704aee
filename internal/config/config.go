package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds faceoff's runtime settings.
type Config struct {
	APIBase      string
	PollInterval time.Duration
	LogFile      string
	LogLevel     string
	FavoriteTeam string
	CacheTTL     time.Duration
}

const (
	defaultConfigPath   = "~/.config/faceoff/config.toml"
	defaultLogFile      = "~/.local/state/faceoff/faceoff.log"
	defaultAPIBase      = "https://api-web.nhle.com"
	defaultLogLevel     = "info"
	defaultPollSeconds  = 30
	defaultCacheSeconds = 300
	minPollSeconds      = 5
)

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		APIBase:      defaultAPIBase,
		PollInterval: defaultPollSeconds * time.Second,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
		CacheTTL:     defaultCacheSeconds * time.Second,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase         string `toml:"api_base"`
		PollSeconds     int    `toml:"poll_seconds"`
		LogFile         string `toml:"log_file"`
		LogLevel        string `toml:"log_level"`
		FavoriteTeam    string `toml:"favorite_team"`
		CacheTTLSeconds int    `toml:"cache_ttl_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimRight(strings.TrimSpace(raw.APIBase), "/"); base != "" {
		cfg.APIBase = base
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(max(raw.PollSeconds, minPollSeconds)) * time.Second
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}
	cfg.FavoriteTeam = strings.ToUpper(strings.TrimSpace(raw.FavoriteTeam))
	if raw.CacheTTLSeconds > 0 {
		cfg.CacheTTL = time.Duration(raw.CacheTTLSeconds) * time.Second
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
