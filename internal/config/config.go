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

// Config captures everything MUSE reads from config.toml.
type Config struct {
	APIRoot        string
	RequestTimeout time.Duration // zero means requests never time out
	UserAgent      string
	LogLevel       string
	LogFile        string
	MetricsAddr    string
}

const (
	defaultConfigPath = "~/.config/muse/config.toml"
	defaultAPIRoot    = "https://monplan-api-dev.appspot.com"
	defaultUserAgent  = "muse/0.1"
	defaultLogLevel   = "error"
	defaultLogFile    = "~/.local/state/muse/muse.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIRoot:   defaultAPIRoot,
		UserAgent: defaultUserAgent,
		LogLevel:  defaultLogLevel,
		LogFile:   mustExpand(defaultLogFile),
	}
}

// Load locates and parses the MUSE config, falling back to defaults when missing.
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
		APIRoot        string `toml:"api_root"`
		RequestTimeout string `toml:"request_timeout"`
		UserAgent      string `toml:"user_agent"`
		LogLevel       string `toml:"log_level"`
		LogFile        string `toml:"log_file"`
		MetricsAddr    string `toml:"metrics_addr"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIRoot); v != "" {
		cfg.APIRoot = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout %q is negative", v)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.UserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)

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
