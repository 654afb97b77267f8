package ui

import (
	"math"

	"github.com/five82/logdeck/internal/vstack"
)

// scroller is the log pane's scroll region. Units are terminal cells: one
// row vertically, one column horizontally. X is the horizontal pan.
type scroller struct {
	offset vstack.Point
	size   vstack.Size

	// extent reports the scrollable content size.
	extent func() vstack.Size
}

var _ vstack.Viewport = (*scroller)(nil)

func (s *scroller) Offset() vstack.Point { return s.offset }
func (s *scroller) Size() vstack.Size    { return s.size }

// SetOffset moves to p, clamped to the content extent.
func (s *scroller) SetOffset(p vstack.Point) {
	s.offset = s.clamp(p)
}

func (s *scroller) clamp(p vstack.Point) vstack.Point {
	maxX, maxY := s.limits()
	p.X = math.Round(min(max(0, p.X), maxX))
	p.Y = math.Round(min(max(0, p.Y), maxY))
	return p
}

func (s *scroller) limits() (maxX, maxY float64) {
	if s.extent == nil {
		return 0, 0
	}
	ext := s.extent()
	return max(0, ext.Width-s.size.Width), max(0, ext.Height-s.size.Height)
}

func (s *scroller) resize(width, height int) {
	s.size = vstack.Size{Width: float64(max(0, width)), Height: float64(max(0, height))}
	s.offset = s.clamp(s.offset)
}

func (s *scroller) scrollBy(rows int) {
	s.SetOffset(vstack.Point{X: s.offset.X, Y: s.offset.Y + float64(rows)})
}

func (s *scroller) panBy(cols int) {
	s.SetOffset(vstack.Point{X: s.offset.X + float64(cols), Y: s.offset.Y})
}

func (s *scroller) top() {
	s.SetOffset(vstack.Point{X: s.offset.X})
}

func (s *scroller) bottom() {
	_, maxY := s.limits()
	s.SetOffset(vstack.Point{X: s.offset.X, Y: maxY})
}

func (s *scroller) atBottom() bool {
	_, maxY := s.limits()
	return s.offset.Y >= maxY
}

// ensureVisible scrolls the least distance that brings r fully into view.
// Rows taller than the pane are aligned to the top.
func (s *scroller) ensureVisible(r vstack.Rect) {
	y := s.offset.Y
	switch {
	case r.Y < y || r.Height >= s.size.Height:
		y = r.Y
	case r.Bottom() > y+s.size.Height:
		y = r.Bottom() - s.size.Height
	default:
		return
	}
	s.SetOffset(vstack.Point{X: s.offset.X, Y: y})
}
