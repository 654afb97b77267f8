package vstack

import (
	"iter"
	"math"
)

const defaultItemHeight = 1

// Panel virtualizes a Collection as a stack of fixed-height rows.
type Panel[T any] struct {
	items    Collection[T]
	factory  Factory[T]
	viewport Viewport
	observer Observer

	itemHeight   float64
	onInvalidate func()
	invalid      bool

	win       window
	pool      recycler
	realizing realizing
	tracker   viewportTracker

	// depth counts nested layout/realization calls; changes reported while
	// it is non-zero wait in pending.
	depth   int
	pending []Change
}

// realizing is the container currently being prepared by the factory.
type realizing struct {
	index     int
	container Container
	active    bool
}

// Option configures a Panel.
type Option func(*options)

type options struct {
	itemHeight   float64
	observer     Observer
	onInvalidate func()
}

// WithItemHeight sets the fixed row height.
func WithItemHeight(h float64) Option {
	return func(o *options) { o.itemHeight = h }
}

// WithObserver installs lifecycle hooks.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithInvalidateFunc registers a callback run whenever the panel needs a new
// layout pass.
func WithInvalidateFunc(fn func()) Option {
	return func(o *options) { o.onInvalidate = fn }
}

// New returns a panel over items. The panel starts invalid so the first
// Layout call realizes the visible rows.
func New[T any](items Collection[T], factory Factory[T], viewport Viewport, opts ...Option) *Panel[T] {
	o := options{itemHeight: defaultItemHeight}
	for _, opt := range opts {
		opt(&o)
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}
	return &Panel[T]{
		items:        items,
		factory:      factory,
		viewport:     viewport,
		observer:     o.observer,
		itemHeight:   o.itemHeight,
		onInvalidate: o.onInvalidate,
		invalid:      true,
		win:          newWindow(),
	}
}

// ItemHeight returns the configured row height.
func (p *Panel[T]) ItemHeight() float64 {
	return p.itemHeight
}

// SetItemHeight changes the row height and invalidates layout.
func (p *Panel[T]) SetItemHeight(h float64) {
	if h == p.itemHeight {
		return
	}
	p.itemHeight = h
	p.Invalidate()
}

// rowHeight is the item height rounded up to a whole unit so adjacent rows
// never leave sub-unit gaps.
func (p *Panel[T]) rowHeight() float64 {
	rh := math.Ceil(p.itemHeight)
	if math.IsNaN(rh) || math.IsInf(rh, 0) {
		return 0
	}
	return rh
}

// Invalidate marks the layout stale.
func (p *Panel[T]) Invalidate() {
	p.invalid = true
	if p.onInvalidate != nil {
		p.onInvalidate()
	}
}

// NeedsLayout reports whether a layout pass is pending.
func (p *Panel[T]) NeedsLayout() bool {
	return p.invalid
}

// Window returns the realized index range, or (-1, -1) when nothing is
// realized.
func (p *Panel[T]) Window() (first, last int) {
	return p.win.first, p.win.last
}

// Measure computes the visible range, reconciles the realized window against
// it and measures every realized container. The returned height always covers
// the whole collection.
func (p *Panel[T]) Measure(available Size) Size {
	p.enter()
	defer p.leave()

	p.tracker.observe(p.viewport)

	count := p.items.Len()
	rh := p.rowHeight()
	vs := p.viewport.Size()
	if count <= 0 || rh <= 0 || vs.Empty() {
		p.clearWindow()
		p.observer.Measured(-1, -1)
		return Size{}
	}

	offset := p.viewport.Offset()
	first := max(0, int(math.Floor(offset.Y/rh)))
	last := min(count-1, max(0, int(math.Ceil((offset.Y+vs.Height)/rh))))
	first = min(first, last)

	p.reconcile(first, last)

	constraint := Size{Width: available.Width, Height: p.itemHeight}
	if constraint.Width <= 0 {
		constraint.Width = math.Inf(1)
	}
	var widest float64
	for slot := range p.win.slots {
		c := p.materialize(slot)
		if c == nil {
			continue
		}
		widest = max(widest, c.Measure(constraint).Width)
	}

	width := widest
	if width <= 0 && !math.IsInf(available.Width, 1) {
		width = available.Width
	}
	p.observer.Measured(p.win.first, p.win.last)
	return Size{Width: width, Height: rh * float64(count)}
}

// Arrange positions every realized container at index × row height.
func (p *Panel[T]) Arrange(final Size) Size {
	rh := p.rowHeight()
	for i, c := range p.win.slots {
		if c == nil {
			continue
		}
		c.Arrange(Rect{
			Y:      float64(p.win.first+i) * rh,
			Width:  final.Width,
			Height: p.itemHeight,
		})
	}
	return final
}

// Layout runs a measure and an arrange pass and clears the invalid flag.
// Changes queued during the pass leave the panel invalid again.
func (p *Panel[T]) Layout(available Size) Size {
	p.invalid = false
	desired := p.Measure(available)
	final := Size{Width: available.Width, Height: desired.Height}
	if final.Width <= 0 || math.IsInf(final.Width, 1) {
		final.Width = desired.Width
	}
	p.Arrange(final)
	return desired
}

// ContainerFromIndex returns the container for index, materializing a lazy
// slot if needed. It returns nil for indices outside the realized window.
func (p *Panel[T]) ContainerFromIndex(index int) Container {
	if p.realizing.active && p.realizing.index == index {
		return p.realizing.container
	}
	if !p.win.contains(index) {
		return nil
	}
	return p.materialize(index - p.win.first)
}

// IndexFromContainer returns the index c is bound to, or -1.
func (p *Panel[T]) IndexFromContainer(c Container) int {
	if c == nil {
		return -1
	}
	if p.realizing.active && p.realizing.container == c {
		return p.realizing.index
	}
	for i, slot := range p.win.slots {
		if slot == c {
			return p.win.first + i
		}
	}
	return -1
}

// Realized iterates the materialized containers in index order. The panel
// must not be mutated during iteration.
func (p *Panel[T]) Realized() iter.Seq2[int, Container] {
	return func(yield func(int, Container) bool) {
		for i, c := range p.win.slots {
			if c == nil {
				continue
			}
			if !yield(p.win.first+i, c) {
				return
			}
		}
	}
}

// RecycleKeyOf reports the pool a container belongs to.
func (p *Panel[T]) RecycleKeyOf(c Container) (RecycleKey, bool) {
	return p.pool.keyOf(c)
}

// Pooled returns the number of hidden containers waiting in key's pool.
func (p *Panel[T]) Pooled(key RecycleKey) int {
	return p.pool.pooled(key)
}

func (p *Panel[T]) enter() {
	p.depth++
}

func (p *Panel[T]) leave() {
	p.depth--
	if p.depth > 0 || len(p.pending) == 0 {
		return
	}
	p.depth++
	for len(p.pending) > 0 {
		ch := p.pending[0]
		p.pending = p.pending[1:]
		p.apply(ch)
	}
	p.pending = nil
	p.depth--
	p.Invalidate()
}
