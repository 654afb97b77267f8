package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/five82/logdeck/internal/config"
	"github.com/five82/logdeck/internal/metrics"
	"github.com/five82/logdeck/internal/prefs"
	"github.com/five82/logdeck/internal/remote"
	"github.com/five82/logdeck/internal/state"
	"github.com/five82/logdeck/internal/ui"
)

// Options configure the logdeck application. Non-empty fields override the
// matching config file settings.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/logdeck/prefs.toml
	File        string
	Remote      string
	MetricsAddr string
	PollEvery   int // seconds; zero uses config
}

// source produces log lines for the UI until ctx is done.
type source interface {
	Run(ctx context.Context) error
}

// Run boots the logdeck TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = applyOverrides(cfg, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs unavailable, using defaults", "error", err)
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.MetricsAddr != "" {
		srv, err := metrics.Listen(cfg.MetricsAddr, reg)
		if err != nil {
			return err
		}
		wg.Go(func() {
			if err := srv.Serve(ctx, logger); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		})
	}

	store := &state.Store{}
	store.SetSource(cfg.Source())

	model := ui.New(ui.Options{
		Store:       store,
		Source:      cfg.Source(),
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		Follow:      userPrefs.Follow,
		RowHeight:   cfg.RowHeight,
		BufferLimit: cfg.BufferLimit,
		Observer:    collector,
		Logger:      logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	emit := func(msg ui.LinesMsg) {
		collector.LinesReceived(len(msg.Lines))
		program.Send(msg)
	}
	src, err := newSource(cfg, store, emit, logger)
	if err != nil {
		return err
	}
	wg.Go(func() {
		if err := src.Run(ctx); err != nil {
			store.Update(nil, 0, err)
			logger.Error("log source stopped", "source", cfg.Source(), "error", err)
		}
	})

	logger.Info("logdeck started", "source", cfg.Source(), "follow", cfg.Follow)
	_, err = program.Run()
	cancel()
	if errors.Is(err, tea.ErrProgramKilled) && errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return err
}

func newSource(cfg config.Config, store *state.Store, emit func(ui.LinesMsg), logger *slog.Logger) (source, error) {
	if cfg.Remote() {
		client, err := remote.NewClient(cfg.RemoteAPI)
		if err != nil {
			return nil, fmt.Errorf("init remote client: %w", err)
		}
		return &Poller{
			Fetcher:  client,
			Store:    store,
			Interval: cfg.PollEvery,
			Limit:    cfg.BufferLimit,
			Follow:   cfg.Follow,
			Emit:     emit,
			Logger:   logger.With("source", client.BaseURL()),
		}, nil
	}
	return &FileFollower{
		Path:   cfg.LogFile,
		Limit:  cfg.BufferLimit,
		Follow: cfg.Follow,
		Store:  store,
		Emit:   emit,
		Logger: logger,
	}, nil
}

func applyOverrides(cfg config.Config, opts Options) (config.Config, error) {
	if opts.File != "" {
		path, err := config.ExpandPath(opts.File)
		if err != nil {
			return cfg, fmt.Errorf("resolve -file: %w", err)
		}
		cfg.LogFile = path
		cfg.RemoteAPI = ""
	}
	if opts.Remote != "" {
		cfg.RemoteAPI = opts.Remote
	}
	if opts.MetricsAddr != "" {
		cfg.MetricsAddr = opts.MetricsAddr
	}
	if opts.PollEvery > 0 {
		cfg.PollEvery = time.Duration(opts.PollEvery) * time.Second
	}
	return cfg, nil
}

// newLogger writes text records to path, or discards them when path is
// empty. The terminal belongs to the UI.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create debug log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { _ = file.Close() }, nil
}
