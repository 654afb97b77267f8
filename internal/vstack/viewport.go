package vstack

// viewportTracker remembers the last observed viewport state.
type viewportTracker struct {
	offset Point
	size   Size
	primed bool
}

func (t *viewportTracker) observe(vp Viewport) bool {
	offset, size := vp.Offset(), vp.Size()
	changed := !t.primed || offset != t.offset || size != t.size
	t.offset, t.size, t.primed = offset, size, true
	return changed
}

// Observe polls the viewport and invalidates layout when its offset or size
// changed since the last poll or layout pass.
func (p *Panel[T]) Observe() bool {
	if !p.tracker.observe(p.viewport) {
		return false
	}
	p.Invalidate()
	return true
}

// ScrollIntoView makes index visible. A realized row is asked to bring itself
// into view and returned. Otherwise the viewport offset is set directly so the
// row becomes the top row (when scrolling up) or the bottom row (when
// scrolling down), and nil is returned; the next layout pass realizes it.
func (p *Panel[T]) ScrollIntoView(index int) Container {
	if index < 0 || index >= p.items.Len() {
		return nil
	}
	if p.realizing.active && p.realizing.index == index {
		c := p.realizing.container
		c.BringIntoView()
		return c
	}
	if p.win.contains(index) {
		c := p.ContainerFromIndex(index)
		if c != nil {
			c.BringIntoView()
		}
		return c
	}

	rh := p.rowHeight()
	if rh <= 0 {
		return nil
	}
	offset := p.viewport.Offset()
	top := float64(index) * rh
	y := top
	if top >= offset.Y {
		y = top + rh - p.viewport.Size().Height
		if r, ok := p.viewport.(ScrollBarReserver); ok {
			y += r.HorizontalScrollBarHeight()
		}
	}
	offset.Y = max(0, y)
	p.viewport.SetOffset(offset)
	p.Invalidate()
	return nil
}
