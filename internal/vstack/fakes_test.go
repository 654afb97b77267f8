package vstack

import (
	"fmt"
	"slices"
)

// rows is a slice-backed collection whose mutators keep an attached panel in
// sync, the way logbuf does in the application.
type rows struct {
	items []string
	panel *Panel[string]
}

func newRows(n int) *rows {
	r := &rows{}
	for i := range n {
		r.items = append(r.items, fmt.Sprintf("row-%d", i))
	}
	return r
}

func (r *rows) Len() int            { return len(r.items) }
func (r *rows) At(index int) string { return r.items[index] }

func (r *rows) insert(at int, values ...string) error {
	r.items = slices.Insert(r.items, at, values...)
	return r.panel.ItemsChanged(Change{Action: ActionAdd, Start: at, Count: len(values)})
}

func (r *rows) remove(start, count int) error {
	r.items = slices.Delete(r.items, start, start+count)
	return r.panel.ItemsChanged(Change{Action: ActionRemove, Start: start, Count: count})
}

func (r *rows) replace(start int, values ...string) error {
	copy(r.items[start:], values)
	return r.panel.ItemsChanged(Change{Action: ActionReplace, Start: start, Count: len(values)})
}

type fakeContainer struct {
	id       int
	item     string
	index    int
	bound    bool
	hidden   bool
	rect     Rect
	width    float64
	measured int
	broughts int
}

func (c *fakeContainer) Measure(available Size) Size {
	c.measured++
	return Size{Width: c.width, Height: available.Height}
}

func (c *fakeContainer) Arrange(r Rect)        { c.rect = r }
func (c *fakeContainer) SetHidden(hidden bool) { c.hidden = hidden }
func (c *fakeContainer) BringIntoView()        { c.broughts++ }

type fakeFactory struct {
	keyFor   func(item string, index int) RecycleKey
	onPrep   func(c Container, item string, index int)
	created  int
	prepared int
	cleared  int
	nextID   int
	panel    *Panel[string]
	seenIdx  []int
	seenSelf []Container
}

func (f *fakeFactory) NeedsContainer(item string, index int) (bool, RecycleKey) {
	if f.keyFor != nil {
		return true, f.keyFor(item, index)
	}
	return true, "row"
}

func (f *fakeFactory) CreateContainer(item string, index int, key RecycleKey) Container {
	f.created++
	f.nextID++
	return &fakeContainer{id: f.nextID, width: float64(len(item))}
}

func (f *fakeFactory) PrepareContainer(c Container, item string, index int) {
	f.prepared++
	if fc, ok := c.(*fakeContainer); ok {
		fc.item, fc.index, fc.bound = item, index, true
	}
	if f.panel != nil {
		f.seenIdx = append(f.seenIdx, f.panel.IndexFromContainer(c))
		f.seenSelf = append(f.seenSelf, f.panel.ContainerFromIndex(index))
	}
	if f.onPrep != nil {
		f.onPrep(c, item, index)
	}
}

func (f *fakeFactory) ContainerPrepared(Container, string, int) {}

func (f *fakeFactory) ClearContainer(c Container) {
	f.cleared++
	if fc, ok := c.(*fakeContainer); ok {
		fc.item, fc.index, fc.bound = "", -1, false
	}
}

type fakeViewport struct {
	offset    Point
	size      Size
	scrollBar float64
	writes    int
}

func (v *fakeViewport) Offset() Point { return v.offset }
func (v *fakeViewport) Size() Size    { return v.size }
func (v *fakeViewport) SetOffset(p Point) {
	v.writes++
	v.offset = p
}

type reservingViewport struct {
	fakeViewport
}

func (v *reservingViewport) HorizontalScrollBarHeight() float64 { return v.scrollBar }

type countingObserver struct {
	created, reused, recycled, destroyed int
	lastFirst, lastLast                  int
}

func (o *countingObserver) ContainerCreated(RecycleKey)  { o.created++ }
func (o *countingObserver) ContainerReused(RecycleKey)   { o.reused++ }
func (o *countingObserver) ContainerRecycled(RecycleKey) { o.recycled++ }
func (o *countingObserver) ContainerDestroyed()          { o.destroyed++ }
func (o *countingObserver) Measured(first, last int) {
	o.lastFirst, o.lastLast = first, last
}

type fixture struct {
	rows     *rows
	factory  *fakeFactory
	viewport *fakeViewport
	observer *countingObserver
	panel    *Panel[string]
}

func newFixture(n int, height float64, viewportHeight float64) *fixture {
	f := &fixture{
		rows:     newRows(n),
		factory:  &fakeFactory{},
		viewport: &fakeViewport{size: Size{Width: 80, Height: viewportHeight}},
		observer: &countingObserver{},
	}
	f.panel = New[string](f.rows, f.factory, f.viewport, WithItemHeight(height), WithObserver(f.observer))
	f.rows.panel = f.panel
	return f
}

func (f *fixture) layout() Size {
	return f.panel.Layout(Size{Width: 80, Height: f.viewport.size.Height})
}

func (f *fixture) realized() map[int]*fakeContainer {
	out := make(map[int]*fakeContainer)
	for index, c := range f.panel.Realized() {
		out[index] = c.(*fakeContainer)
	}
	return out
}
