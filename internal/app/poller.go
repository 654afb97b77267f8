package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/logdeck/internal/remote"
	"github.com/five82/logdeck/internal/state"
	"github.com/five82/logdeck/internal/ui"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
	pollTimeout         = 5 * time.Second
	pollFetchLimit      = 500
)

// calculateBackoff returns the wait before the next poll after failures
// consecutive errors: base doubled per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

// Poller pulls log events from a remote daemon and hands the formatted lines
// to Emit. The first successful fetch, and any fetch after the daemon's
// sequence went backwards, replaces the view.
type Poller struct {
	Fetcher  remote.Fetcher
	Store    *state.Store
	Interval time.Duration
	Limit    int
	// Follow keeps polling after the first successful fetch.
	Follow bool
	Emit   func(ui.LinesMsg)
	Logger *slog.Logger

	cursor   uint64
	primed   bool
	failures int
}

// Run polls until ctx is done, backing off while the daemon is unreachable.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	for {
		err := p.poll(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil && !p.Follow {
			return nil
		}

		timer := time.NewTimer(calculateBackoff(p.failures, interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (p *Poller) poll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pollTimeout)
	defer cancel()

	status, err := p.Fetcher.FetchStatus(ctx)
	if err != nil {
		p.fail(ctx, "status poll failed", err)
		return err
	}

	limit := p.Limit
	if limit <= 0 {
		limit = pollFetchLimit
	}
	batch, err := p.Fetcher.FetchLogs(ctx, remote.LogQuery{
		Since: p.cursor,
		Limit: limit,
		Tail:  !p.primed,
	})
	if err != nil {
		p.fail(ctx, "log poll failed", err)
		return err
	}

	reset := !p.primed
	if p.primed && batch.Next < p.cursor {
		// Daemon restarted and its sequence began again.
		p.logger().Info("remote log sequence restarted", "cursor", p.cursor, "next", batch.Next)
		p.Store.RecordTruncation()
		reset = true
	}
	p.primed = true
	p.cursor = batch.Next
	p.failures = 0

	lines := remote.FormatAll(batch.Events)
	if reset || len(lines) > 0 {
		p.Emit(ui.LinesMsg{Lines: lines, Reset: reset})
	}
	p.Store.Update(status, len(lines), nil)
	return nil
}

func (p *Poller) fail(ctx context.Context, msg string, err error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return
	}
	p.failures++
	p.Store.Update(nil, 0, err)
	p.logger().Warn(msg, "error", err, "failures", p.failures)
}

func (p *Poller) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
