package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/logdeck/internal/logtail"
	"github.com/five82/logdeck/internal/state"
	"github.com/five82/logdeck/internal/ui"
)

// FileFollower loads the tail of a log file and then streams appended lines.
type FileFollower struct {
	Path string
	// Limit caps the lines loaded at startup; zero loads the whole file.
	Limit int
	// Follow keeps watching the file after the initial load.
	Follow bool
	Store  *state.Store
	Emit   func(ui.LinesMsg)
	Logger *slog.Logger
}

// Run emits the initial tail as a reset and then follows the file until ctx
// is done. Read errors are recorded in the store; only a failure to start
// watching is returned.
func (f *FileFollower) Run(ctx context.Context) error {
	logger := f.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	lines, offset, err := logtail.ReadTail(f.Path, f.Limit)
	if err != nil {
		f.Store.Update(nil, 0, err)
		logger.Warn("initial log read failed", "path", f.Path, "error", err)
		offset = 0
	} else {
		f.Emit(ui.LinesMsg{Lines: lines, Reset: true})
		f.Store.Update(nil, len(lines), nil)
	}
	if !f.Follow {
		return nil
	}

	err = logtail.Follow(ctx, f.Path, offset, func(b logtail.Batch) {
		f.handle(b, logger)
	})
	if err != nil {
		return fmt.Errorf("follow %s: %w", f.Path, err)
	}
	return nil
}

func (f *FileFollower) handle(b logtail.Batch, logger *slog.Logger) {
	if b.Err != nil {
		f.Store.Update(nil, 0, b.Err)
		logger.Warn("log follow failed", "path", f.Path, "offset", b.Offset, "error", b.Err)
		return
	}
	if b.Truncated {
		f.Store.RecordTruncation()
		logger.Info("log truncated or rotated", "path", f.Path)
	}
	f.Emit(ui.LinesMsg{Lines: b.Lines, Reset: b.Truncated})
	f.Store.Update(nil, len(b.Lines), nil)
}
