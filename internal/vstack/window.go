package vstack

import "slices"

// window is the contiguous range of realized indices. slots[i] holds the
// container for index first+i, or nil while that slot is lazy.
type window struct {
	first int
	last  int
	slots []Container
}

func newWindow() window {
	return window{first: -1, last: -1}
}

func (w *window) empty() bool {
	return len(w.slots) == 0
}

func (w *window) contains(index int) bool {
	return !w.empty() && index >= w.first && index <= w.last
}

func (w *window) reset() {
	clear(w.slots)
	w.slots = w.slots[:0]
	w.first, w.last = -1, -1
}

// clearWindow recycles every realized container and empties the window.
func (p *Panel[T]) clearWindow() {
	for _, c := range p.win.slots {
		p.recycle(c)
	}
	p.win.reset()
}

// reconcile trims and grows the window so it covers exactly [fv, lv]. Grown
// slots start out lazy; Measure materializes them in index order, after all
// trimmed containers are back in their pools.
func (p *Panel[T]) reconcile(fv, lv int) {
	w := &p.win
	if w.empty() || w.first > lv || w.last < fv {
		p.clearWindow()
		w.first, w.last = fv, lv
		w.slots = append(w.slots, make([]Container, lv-fv+1)...)
		return
	}

	if w.first < fv {
		n := fv - w.first
		for _, c := range w.slots[:n] {
			p.recycle(c)
		}
		w.slots = slices.Delete(w.slots, 0, n)
		w.first = fv
	}
	if w.last > lv {
		keep := lv - w.first + 1
		for _, c := range w.slots[keep:] {
			p.recycle(c)
		}
		w.slots = slices.Delete(w.slots, keep, len(w.slots))
		w.last = lv
	}
	if w.first > fv {
		w.slots = slices.Insert(w.slots, 0, make([]Container, w.first-fv)...)
		w.first = fv
	}
	if w.last < lv {
		w.slots = append(w.slots, make([]Container, lv-w.last)...)
		w.last = lv
	}
}

// realize produces a bound container for index, reusing a pooled container
// when the factory's key has one available.
func (p *Panel[T]) realize(index int) Container {
	item := p.items.At(index)
	needs, key := p.factory.NeedsContainer(item, index)

	var c Container
	if !needs {
		if own, ok := any(item).(Container); ok {
			c = own
		}
	}
	if c == nil && key != "" {
		if reused, ok := p.pool.pop(key); ok {
			c = reused
			p.observer.ContainerReused(key)
		}
	}
	if c == nil {
		c = p.factory.CreateContainer(item, index, key)
		p.pool.assign(c, key)
		p.observer.ContainerCreated(key)
	}

	c.SetHidden(false)
	p.realizing = realizing{index: index, container: c, active: true}
	p.factory.PrepareContainer(c, item, index)
	p.factory.ContainerPrepared(c, item, index)
	p.realizing = realizing{}
	return c
}

// recycle clears c and returns it to its pool, or drops it when it has no key.
func (p *Panel[T]) recycle(c Container) {
	if c == nil {
		return
	}
	p.factory.ClearContainer(c)
	c.SetHidden(true)
	if key, ok := p.pool.push(c); ok {
		p.observer.ContainerRecycled(key)
		return
	}
	p.observer.ContainerDestroyed()
}

// materialize returns the container in slot, realizing it if the slot is
// lazy. A nested realization while another one is in flight is refused so at
// most one container is ever being prepared.
func (p *Panel[T]) materialize(slot int) Container {
	if c := p.win.slots[slot]; c != nil {
		return c
	}
	if p.realizing.active {
		return nil
	}
	index := p.win.first + slot

	p.enter()
	c := p.realize(index)
	p.win.slots[slot] = c
	p.leave()

	// Queued changes applied by leave may have moved or recycled c.
	if p.win.contains(index) && p.win.slots[index-p.win.first] == c {
		return c
	}
	return nil
}
