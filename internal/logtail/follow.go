package logtail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PollInterval is how often Follow re-checks the file when no event arrived.
// Some writers and filesystems do not emit reliable write events.
var PollInterval = time.Second

// Batch is one delivery from Follow.
type Batch struct {
	// Lines holds newly appended complete lines, oldest first.
	Lines []string
	// Truncated reports that the file shrank or was replaced. Lines in the
	// same batch were read from the start of the new content.
	Truncated bool
	// Offset is the byte offset just past the last delivered line.
	Offset int64
	// Err carries a non-fatal watcher error.
	Err error
}

// Follow watches the file at path and emits lines appended after offset until
// ctx is done. The file does not need to exist yet. Lines without a trailing
// newline are held back until completed.
func Follow(ctx context.Context, path string, offset int64, emit func(Batch)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so rotation (remove + create) is seen.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	f := &follower{path: abs, offset: offset, emit: emit}
	f.poll()

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			switch {
			case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
				f.rotated()
			case ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Chmod):
				f.poll()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			emit(Batch{Err: err, Offset: f.offset})
		case <-ticker.C:
			f.poll()
		}
	}
}

type follower struct {
	path    string
	offset  int64
	pending bool
	emit    func(Batch)
}

// rotated resets to the start of whatever file appears at path next.
func (f *follower) rotated() {
	f.offset = 0
	f.pending = true
}

func (f *follower) poll() {
	batch, err := f.read()
	if err != nil {
		batch.Err = err
		batch.Offset = f.offset
		f.emit(batch)
		return
	}
	if len(batch.Lines) > 0 || batch.Truncated {
		f.emit(batch)
	}
}

func (f *follower) read() (Batch, error) {
	batch := Batch{Truncated: f.pending, Offset: f.offset}
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Batch{Offset: f.offset}, nil
		}
		return batch, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return batch, fmt.Errorf("stat log: %w", err)
	}
	if info.Size() < f.offset {
		f.offset = 0
		batch.Truncated = true
	}
	if info.Size() == f.offset && !batch.Truncated {
		return batch, nil
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return batch, fmt.Errorf("seek log: %w", err)
	}

	reader := bufio.NewReader(file)
	for {
		line, n, complete, err := readLine(reader)
		if complete {
			f.offset += int64(n)
			batch.Lines = append(batch.Lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return batch, fmt.Errorf("read log: %w", err)
		}
	}
	f.pending = false
	batch.Offset = f.offset
	return batch, nil
}
