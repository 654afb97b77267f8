package ui

import (
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/five82/logdeck/internal/logbuf"
	"github.com/five82/logdeck/internal/logline"
	"github.com/five82/logdeck/internal/vstack"
)

// panStep is how many columns left/right pans the pane.
const panStep = 8

// logView owns the buffer, the virtualizing panel and the scroll region of
// the log pane. Model is copied by value on every update, so this state lives
// behind a pointer.
type logView struct {
	buf       *logbuf.Buffer
	panel     *vstack.Panel[logline.Entry]
	scroll    *scroller
	rowHeight int
	follow    bool
	widest    float64
	err       error
	logger    *slog.Logger

	// Search
	searching bool
	input     textinput.Model
	query     string
	matches   []int // entry indices, ascending
	matchIdx  int
}

func newLogView(limit int, rowHeight float64, follow bool, observer vstack.Observer, logger *slog.Logger) *logView {
	input := textinput.New()
	input.Placeholder = "Search logs..."
	input.CharLimit = 100
	input.Prompt = "/"
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	v := &logView{
		buf:       logbuf.New(limit),
		rowHeight: rowsFor(rowHeight),
		follow:    follow,
		input:     input,
		logger:    logger,
	}
	v.scroll = &scroller{extent: v.extent}

	opts := []vstack.Option{vstack.WithItemHeight(float64(v.rowHeight))}
	if observer != nil {
		opts = append(opts, vstack.WithObserver(observer))
	}
	v.panel = vstack.New[logline.Entry](v.buf, rowFactory{scroll: v.scroll}, v.scroll, opts...)
	v.buf.Subscribe(v.itemsChanged)
	return v
}

// rowsFor converts the configured row height to whole terminal rows.
func rowsFor(h float64) int {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 1
	}
	return int(math.Ceil(h))
}

func (v *logView) extent() vstack.Size {
	return vstack.Size{
		Width:  v.widest,
		Height: float64(v.buf.Len() * v.rowHeight),
	}
}

// itemsChanged forwards buffer notifications to the panel. The panel cannot
// track moves, so a move is reported as a reset.
func (v *logView) itemsChanged(ch vstack.Change) error {
	err := v.panel.ItemsChanged(ch)
	if errors.Is(err, vstack.ErrMoveUnsupported) {
		return v.panel.ItemsChanged(vstack.Change{Action: vstack.ActionReset})
	}
	return err
}

// apply adds a batch of raw lines to the buffer.
func (v *logView) apply(msg LinesMsg) {
	var err error
	switch {
	case msg.Reset:
		err = v.buf.Reset(logline.ParseAll(msg.Lines))
	case len(msg.Lines) > 0:
		err = v.buf.AppendLines(msg.Lines...)
	default:
		return
	}
	if err != nil {
		v.err = err
		v.logger.Warn("apply log lines", "lines", len(msg.Lines), "reset", msg.Reset, "error", err)
	}

	if v.query != "" {
		v.refreshMatches()
	}
	if v.follow {
		v.scroll.bottom()
	} else {
		v.scroll.SetOffset(v.scroll.Offset())
	}
	v.layout()
}

func (v *logView) resize(width, height int) {
	v.scroll.resize(width, height)
	if v.follow {
		v.scroll.bottom()
	}
	v.layout()
}

// layout runs a panel pass when the viewport moved or the panel was
// invalidated.
func (v *logView) layout() {
	v.panel.Observe()
	if !v.panel.NeedsLayout() {
		return
	}
	desired := v.panel.Layout(v.scroll.Size())
	v.widest = desired.Width
	v.scroll.SetOffset(v.scroll.Offset())
}

func (v *logView) scrollRows(rows int) {
	v.follow = false
	v.scroll.scrollBy(rows * v.rowHeight)
	v.layout()
}

func (v *logView) scrollLines(lines int) {
	v.follow = false
	v.scroll.scrollBy(lines)
	v.layout()
}

func (v *logView) pan(cols int) {
	v.scroll.panBy(cols)
	v.layout()
}

func (v *logView) gotoTop() {
	v.follow = false
	v.scroll.top()
	v.layout()
}

func (v *logView) gotoBottom() {
	v.follow = true
	v.scroll.bottom()
	v.layout()
}

func (v *logView) toggleFollow() {
	if v.follow {
		v.follow = false
		return
	}
	v.gotoBottom()
}

func (v *logView) pageRows() int {
	return max(1, int(v.scroll.Size().Height))
}

// Search

func (v *logView) startSearch() {
	v.searching = true
	v.input.SetValue("")
	v.input.Focus()
}

func (v *logView) cancelSearch() {
	v.searching = false
	v.input.Blur()
	v.input.SetValue("")
}

// submitSearch applies the typed query and jumps to the first match.
func (v *logView) submitSearch() {
	query := strings.TrimSpace(v.input.Value())
	v.searching = false
	v.input.Blur()
	if query == "" {
		return
	}
	v.query = query
	v.matchIdx = 0
	v.refreshMatches()
	if len(v.matches) > 0 {
		v.jumpToMatch()
	}
}

func (v *logView) clearSearch() {
	v.query = ""
	v.matches = nil
	v.matchIdx = 0
}

func (v *logView) refreshMatches() {
	v.matches = v.buf.Matches(v.query)
	if v.matchIdx >= len(v.matches) {
		v.matchIdx = max(0, len(v.matches)-1)
	}
}

// stepMatch moves delta matches forward, wrapping around.
func (v *logView) stepMatch(delta int) {
	n := len(v.matches)
	if n == 0 {
		return
	}
	v.matchIdx = ((v.matchIdx+delta)%n + n) % n
	v.jumpToMatch()
}

func (v *logView) jumpToMatch() {
	v.follow = false
	v.panel.ScrollIntoView(v.matches[v.matchIdx])
	v.layout()
}

func (v *logView) matchStateOf(index int) matchState {
	if v.query == "" {
		return matchNone
	}
	if _, found := slices.BinarySearch(v.matches, index); !found {
		return matchNone
	}
	if v.matches[v.matchIdx] == index {
		return matchActive
	}
	return matchPassive
}

// render draws the visible part of the pane, one string per terminal row.
func (v *logView) render(styles Styles, bg BgStyle) string {
	size := v.scroll.Size()
	width, height := int(size.Width), int(size.Height)
	if height <= 0 {
		return ""
	}
	lines := make([]string, height)
	if v.buf.Len() == 0 {
		lines[0] = bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	offset := v.scroll.Offset()
	top, pan := int(offset.Y), int(offset.X)
	for index, c := range v.panel.Realized() {
		row, ok := c.(*rowContainer)
		if !ok {
			continue
		}
		y := int(row.rect.Y) - top
		if y < 0 || y >= height {
			continue
		}
		lines[y] = row.view(pan, width, styles, bg, v.matchStateOf(index))
	}
	for i, line := range lines {
		if line == "" {
			lines[i] = bg.Spaces(width)
		}
	}
	return strings.Join(lines, "\n")
}
