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

// Config holds the settings logdeck reads at startup.
type Config struct {
	LogFile     string
	RemoteAPI   string
	RowHeight   float64
	BufferLimit int
	Follow      bool
	DebugLog    string
	MetricsAddr string
	PollEvery   time.Duration
}

const (
	defaultConfigPath  = "~/.config/logdeck/config.toml"
	defaultLogFile     = "~/.local/share/logdeck/app.log"
	defaultRowHeight   = 1.0
	defaultBufferLimit = 5000
	defaultPollSeconds = 2
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogFile:     mustExpand(defaultLogFile),
		RowHeight:   defaultRowHeight,
		BufferLimit: defaultBufferLimit,
		Follow:      true,
		PollEvery:   defaultPollSeconds * time.Second,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile     string  `toml:"log_file"`
		RemoteAPI   string  `toml:"remote_api"`
		RowHeight   float64 `toml:"row_height"`
		BufferLimit int     `toml:"buffer_limit"`
		Follow      *bool   `toml:"follow"`
		DebugLog    string  `toml:"debug_log"`
		MetricsAddr string  `toml:"metrics_addr"`
		PollSeconds int     `toml:"poll_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	cfg.RemoteAPI = strings.TrimSpace(raw.RemoteAPI)
	if raw.RowHeight > 0 {
		cfg.RowHeight = raw.RowHeight
	}
	if raw.BufferLimit > 0 {
		cfg.BufferLimit = raw.BufferLimit
	}
	if raw.Follow != nil {
		cfg.Follow = *raw.Follow
	}
	if debugLog := strings.TrimSpace(raw.DebugLog); debugLog != "" {
		cfg.DebugLog = mustExpand(debugLog)
	}
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}

	return cfg, nil
}

// Remote reports whether logs come from a daemon API rather than a file.
func (c Config) Remote() bool {
	return c.RemoteAPI != ""
}

// Source describes where logs come from, for display.
func (c Config) Source() string {
	if c.Remote() {
		return "remote " + c.RemoteAPI
	}
	return c.LogFile
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
