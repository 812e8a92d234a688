package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings shopfront needs to reach the storefront
// service.
type Config struct {
	APIURL      string
	SessionPath string
}

const (
	defaultConfigPath  = "~/.config/shopfront/config.toml"
	defaultSessionPath = "~/.config/shopfront/session.toml"
	defaultAPIURL      = "127.0.0.1:8080"

	// apiURLEnv overrides the config file, for pointing a dev checkout
	// at a staging server without editing the file.
	apiURLEnv = "SHOPFRONT_API_URL"
)

// Load locates and parses the shopfront config, falling back to
// defaults when missing. A .env file in the working directory and the
// SHOPFRONT_API_URL environment variable take precedence over the
// config file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIURL: defaultAPIURL}
	cfg.SessionPath = mustExpand(defaultSessionPath)

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
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
		APIURL      string `toml:"api_url"`
		SessionPath string `toml:"session_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.APIURL); url != "" {
		cfg.APIURL = url
	}
	if sessionPath := strings.TrimSpace(raw.SessionPath); sessionPath != "" {
		cfg.SessionPath = mustExpand(sessionPath)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv layers .env and process environment overrides on top of the
// file-based config. A missing .env is not an error.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()
	if url := strings.TrimSpace(os.Getenv(apiURLEnv)); url != "" {
		cfg.APIURL = url
	}
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
