// Package prefs handles logdeck user preferences persistence.
// Preferences are stored in ~/.config/logdeck/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/logdeck/internal/config"
)

// Prefs holds user preferences changed from inside the UI.
type Prefs struct {
	Theme  string `toml:"theme"`
	Follow bool   `toml:"follow"`
}

const (
	defaultPrefsPath = "~/.config/logdeck/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Follow: true}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable. The error is reported for logging only; the returned
// Prefs are always usable.
func Load(path string) (Prefs, error) {
	prefs := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("open prefs: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, fmt.Errorf("read prefs: %w", err)
	}

	var raw struct {
		Theme  string `toml:"theme"`
		Follow *bool  `toml:"follow"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return prefs, fmt.Errorf("parse prefs: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		prefs.Theme = theme
	}
	if raw.Follow != nil {
		prefs.Follow = *raw.Follow
	}
	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
