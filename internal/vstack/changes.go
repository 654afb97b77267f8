package vstack

import (
	"errors"
	"fmt"
	"slices"
)

// Action identifies the kind of collection change.
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
	ActionReplace
	ActionMove
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionReplace:
		return "replace"
	case ActionMove:
		return "move"
	case ActionReset:
		return "reset"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Change describes a mutation of the collection. Start and Count describe the
// affected range in post-change indices for Add and pre-change indices for
// Remove and Replace. OldIndex and NewIndex are only set for Move.
type Change struct {
	Action   Action
	Start    int
	Count    int
	OldIndex int
	NewIndex int
}

var (
	// ErrMoveUnsupported is returned for Move notifications. The panel has no
	// way to keep slot/index alignment across a reorder.
	ErrMoveUnsupported = errors.New("vstack: move notifications are not supported")
	// ErrInvalidChange is returned for changes with a negative range.
	ErrInvalidChange = errors.New("vstack: invalid change")
)

// ItemsChanged updates the realized window after the collection changed. The
// collection must already reflect the change. Move notifications fail with
// ErrMoveUnsupported and leave the panel untouched.
func (p *Panel[T]) ItemsChanged(ch Change) error {
	switch ch.Action {
	case ActionMove:
		return fmt.Errorf("%w: %d -> %d", ErrMoveUnsupported, ch.OldIndex, ch.NewIndex)
	case ActionReset:
	case ActionAdd, ActionRemove, ActionReplace:
		if ch.Start < 0 || ch.Count < 0 {
			return fmt.Errorf("%w: %s start=%d count=%d", ErrInvalidChange, ch.Action, ch.Start, ch.Count)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidChange, ch.Action)
	}

	if p.depth > 0 {
		p.pending = append(p.pending, ch)
		return nil
	}
	p.apply(ch)
	p.Invalidate()
	return nil
}

func (p *Panel[T]) apply(ch Change) {
	switch ch.Action {
	case ActionReset:
		p.clearWindow()
	case ActionAdd:
		p.onAdd(ch.Start, ch.Count)
	case ActionRemove:
		p.onRemove(ch.Start, ch.Count)
	case ActionReplace:
		p.onReplace(ch.Start, ch.Count)
	}
}

func (p *Panel[T]) onAdd(start, count int) {
	w := &p.win
	if w.empty() || count == 0 || start > w.last {
		return
	}
	if start <= w.first {
		w.first += count
		w.last += count
		p.nudge(count)
		return
	}
	w.slots = slices.Insert(w.slots, start-w.first, make([]Container, count)...)
	w.last += count
}

func (p *Panel[T]) onRemove(start, count int) {
	w := &p.win
	end := start + count - 1
	if w.empty() || count == 0 || start > w.last {
		return
	}
	if end < w.first {
		w.first -= count
		w.last -= count
		p.nudge(-count)
		return
	}
	if start <= w.first && end >= w.last {
		p.clearWindow()
		return
	}

	lo := max(start, w.first) - w.first
	hi := min(end, w.last) - w.first
	for _, c := range w.slots[lo : hi+1] {
		p.recycle(c)
	}
	w.slots = slices.Delete(w.slots, lo, hi+1)

	above := max(0, w.first-start)
	w.first -= above
	w.last = w.first + len(w.slots) - 1
	if above > 0 {
		p.nudge(-above)
	}
}

func (p *Panel[T]) onReplace(start, count int) {
	w := &p.win
	end := start + count - 1
	if w.empty() || count == 0 || start > w.last || end < w.first {
		return
	}
	if start <= w.first && end >= w.last {
		p.clearWindow()
		return
	}

	lo := max(start, w.first) - w.first
	hi := min(end, w.last) - w.first
	for i := lo; i <= hi; i++ {
		p.recycle(w.slots[i])
		w.slots[i] = nil
	}
}

// nudge moves the viewport by rows so content that shifted in the collection
// stays at the same place on screen.
func (p *Panel[T]) nudge(rows int) {
	rh := p.rowHeight()
	if rh <= 0 || rows == 0 {
		return
	}
	offset := p.viewport.Offset()
	offset.Y = max(0, offset.Y+float64(rows)*rh)
	p.viewport.SetOffset(offset)
}
