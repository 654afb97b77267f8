package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/logdeck/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	base := config.Default()
	base.RemoteAPI = "127.0.0.1:7487"

	dir := t.TempDir()
	cfg, err := applyOverrides(base, Options{
		File:        filepath.Join(dir, "x.log"),
		MetricsAddr: "127.0.0.1:9100",
		PollEvery:   5,
	})
	if err != nil {
		t.Fatalf("applyOverrides() error = %v", err)
	}
	if cfg.Remote() {
		t.Fatal("-file should switch to file mode")
	}
	if cfg.LogFile != filepath.Join(dir, "x.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.MetricsAddr != "127.0.0.1:9100" || cfg.PollEvery != 5*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}

	cfg, err = applyOverrides(config.Default(), Options{Remote: "daemon:9000"})
	if err != nil {
		t.Fatalf("applyOverrides() error = %v", err)
	}
	if !cfg.Remote() || cfg.RemoteAPI != "daemon:9000" {
		t.Fatalf("RemoteAPI = %q, want daemon:9000", cfg.RemoteAPI)
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug", "logdeck.log")
	logger, closeLog, err := newLogger(path)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("hello", "n", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read debug log: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") || !strings.Contains(string(data), "n=1") {
		t.Fatalf("debug log = %q", data)
	}
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}
