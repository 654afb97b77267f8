package logbuf

import (
	"errors"
	"fmt"
	"slices"

	"github.com/five82/logdeck/internal/logline"
	"github.com/five82/logdeck/internal/vstack"
)

// ErrOutOfRange is returned when an index or range does not fit the buffer.
var ErrOutOfRange = errors.New("logbuf: index out of range")

// DefaultLimit caps the buffer when no limit is configured.
const DefaultLimit = 5000

// Subscriber is notified after every mutation.
type Subscriber func(vstack.Change) error

// Buffer is an ordered, bounded list of parsed log lines. It is not safe for
// concurrent use; the UI goroutine owns it.
type Buffer struct {
	entries []logline.Entry
	limit   int
	subs    []Subscriber
}

var _ vstack.Collection[logline.Entry] = (*Buffer)(nil)

// New returns an empty buffer holding at most limit entries. A limit of zero
// or less means DefaultLimit.
func New(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Buffer{limit: limit}
}

func (b *Buffer) Len() int                   { return len(b.entries) }
func (b *Buffer) At(index int) logline.Entry { return b.entries[index] }
func (b *Buffer) Limit() int                 { return b.limit }
func (b *Buffer) Subscribe(fn Subscriber)    { b.subs = append(b.subs, fn) }

// Entries returns a copy of the current contents.
func (b *Buffer) Entries() []logline.Entry { return slices.Clone(b.entries) }

func (b *Buffer) inRange(start, count int) bool {
	return start >= 0 && count >= 0 && start+count <= len(b.entries)
}

// Append adds entries at the end and trims the oldest lines beyond the limit.
func (b *Buffer) Append(entries ...logline.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	start := len(b.entries)
	b.entries = append(b.entries, entries...)
	err := b.notify(vstack.Change{Action: vstack.ActionAdd, Start: start, Count: len(entries)})
	return errors.Join(err, b.trim())
}

// AppendLines parses and appends raw lines.
func (b *Buffer) AppendLines(lines ...string) error {
	return b.Append(logline.ParseAll(lines)...)
}

// Insert places entries before index at. at may equal Len.
func (b *Buffer) Insert(at int, entries ...logline.Entry) error {
	if at < 0 || at > len(b.entries) {
		return fmt.Errorf("%w: insert at %d of %d", ErrOutOfRange, at, len(b.entries))
	}
	if len(entries) == 0 {
		return nil
	}
	b.entries = slices.Insert(b.entries, at, entries...)
	err := b.notify(vstack.Change{Action: vstack.ActionAdd, Start: at, Count: len(entries)})
	return errors.Join(err, b.trim())
}

// RemoveRange deletes count entries starting at start.
func (b *Buffer) RemoveRange(start, count int) error {
	if !b.inRange(start, count) {
		return fmt.Errorf("%w: remove [%d,+%d) of %d", ErrOutOfRange, start, count, len(b.entries))
	}
	if count == 0 {
		return nil
	}
	b.entries = slices.Delete(b.entries, start, start+count)
	return b.notify(vstack.Change{Action: vstack.ActionRemove, Start: start, Count: count})
}

// Replace overwrites entries in place starting at start.
func (b *Buffer) Replace(start int, entries ...logline.Entry) error {
	if !b.inRange(start, len(entries)) {
		return fmt.Errorf("%w: replace [%d,+%d) of %d", ErrOutOfRange, start, len(entries), len(b.entries))
	}
	if len(entries) == 0 {
		return nil
	}
	copy(b.entries[start:], entries)
	return b.notify(vstack.Change{Action: vstack.ActionReplace, Start: start, Count: len(entries)})
}

// Reset replaces the whole contents.
func (b *Buffer) Reset(entries []logline.Entry) error {
	b.entries = slices.Clone(entries)
	if over := len(b.entries) - b.limit; over > 0 {
		b.entries = b.entries[over:]
	}
	return b.notify(vstack.Change{Action: vstack.ActionReset})
}

// Move relocates count entries from index from so they start at index to in
// the resulting order.
func (b *Buffer) Move(from, to, count int) error {
	if !b.inRange(from, count) || to < 0 || to+count > len(b.entries) {
		return fmt.Errorf("%w: move [%d,+%d) to %d of %d", ErrOutOfRange, from, count, to, len(b.entries))
	}
	if count == 0 || from == to {
		return nil
	}
	moved := slices.Clone(b.entries[from : from+count])
	b.entries = slices.Delete(b.entries, from, from+count)
	b.entries = slices.Insert(b.entries, to, moved...)
	return b.notify(vstack.Change{Action: vstack.ActionMove, Start: to, Count: count, OldIndex: from, NewIndex: to})
}

// SetLimit changes the cap, trimming immediately when the buffer is over it.
func (b *Buffer) SetLimit(limit int) error {
	if limit <= 0 {
		limit = DefaultLimit
	}
	b.limit = limit
	return b.trim()
}

// Matches returns the indices of entries containing query, ignoring case.
func (b *Buffer) Matches(query string) []int {
	var out []int
	for i, e := range b.entries {
		if e.Contains(query) {
			out = append(out, i)
		}
	}
	return out
}

func (b *Buffer) trim() error {
	over := len(b.entries) - b.limit
	if over <= 0 {
		return nil
	}
	b.entries = slices.Delete(b.entries, 0, over)
	return b.notify(vstack.Change{Action: vstack.ActionRemove, Start: 0, Count: over})
}

func (b *Buffer) notify(ch vstack.Change) error {
	var errs []error
	for _, fn := range b.subs {
		if err := fn(ch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
