package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantLogFile, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLogFile {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLogFile)
	}
	if cfg.Remote() {
		t.Fatalf("Remote() = true, want file mode by default")
	}
	if cfg.RowHeight != defaultRowHeight || cfg.BufferLimit != defaultBufferLimit {
		t.Fatalf("RowHeight/BufferLimit = %v/%d, want defaults", cfg.RowHeight, cfg.BufferLimit)
	}
	if !cfg.Follow {
		t.Fatalf("Follow = false, want true")
	}
	if cfg.PollEvery != 2*time.Second {
		t.Fatalf("PollEvery = %v, want 2s", cfg.PollEvery)
	}
	if cfg.DebugLog != "" || cfg.MetricsAddr != "" {
		t.Fatalf("DebugLog/MetricsAddr = %q/%q, want empty", cfg.DebugLog, cfg.MetricsAddr)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_file = "  ~/logs/daemon.log  "
remote_api = "  10.0.0.5:9999  "
row_height = 1.5
buffer_limit = 200
follow = false
debug_log = "~/logdeck-debug.log"
metrics_addr = " :9310 "
poll_seconds = 5
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "daemon.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.RemoteAPI != "10.0.0.5:9999" || !cfg.Remote() {
		t.Fatalf("RemoteAPI = %q, want %q", cfg.RemoteAPI, "10.0.0.5:9999")
	}
	if cfg.Source() != "remote 10.0.0.5:9999" {
		t.Fatalf("Source = %q", cfg.Source())
	}
	if cfg.RowHeight != 1.5 || cfg.BufferLimit != 200 || cfg.Follow {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !strings.HasPrefix(cfg.DebugLog, home) {
		t.Fatalf("DebugLog = %q, want it under HOME %q", cfg.DebugLog, home)
	}
	if cfg.MetricsAddr != ":9310" {
		t.Fatalf("MetricsAddr = %q, want :9310", cfg.MetricsAddr)
	}
	if cfg.PollEvery != 5*time.Second {
		t.Fatalf("PollEvery = %v, want 5s", cfg.PollEvery)
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_file = "   "
row_height = -2.0
buffer_limit = 0
poll_seconds = -1
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
	if cfg.Source() != want.LogFile {
		t.Fatalf("Source = %q, want %q", cfg.Source(), want.LogFile)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`remote_api = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
