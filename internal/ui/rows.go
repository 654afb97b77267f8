package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/logdeck/internal/logline"
	"github.com/five82/logdeck/internal/vstack"
)

// Recycle pools. Blank lines have no key, so their containers are dropped
// instead of pooled.
const (
	keyEntry  vstack.RecycleKey = "entry"
	keyDetail vstack.RecycleKey = "detail"
)

type matchState int

const (
	matchNone matchState = iota
	matchPassive
	matchActive
)

// rowFactory binds log entries to row containers.
type rowFactory struct {
	scroll *scroller
}

var _ vstack.Factory[logline.Entry] = rowFactory{}

func (rowFactory) NeedsContainer(e logline.Entry, _ int) (bool, vstack.RecycleKey) {
	switch e.Kind {
	case logline.KindEntry:
		return true, keyEntry
	case logline.KindDetail:
		return true, keyDetail
	default:
		return true, ""
	}
}

func (f rowFactory) CreateContainer(_ logline.Entry, _ int, key vstack.RecycleKey) vstack.Container {
	return &rowContainer{key: key, scroll: f.scroll}
}

func (rowFactory) PrepareContainer(c vstack.Container, e logline.Entry, _ int) {
	r := c.(*rowContainer)
	r.entry = e
	r.segments = segmentsOf(e)
}

// ContainerPrepared measures the bound text once so later layout passes
// don't walk the string again.
func (rowFactory) ContainerPrepared(c vstack.Container, _ logline.Entry, _ int) {
	r := c.(*rowContainer)
	r.width = 0
	for _, s := range r.segments {
		r.width += ansi.StringWidth(s.text)
	}
}

func (rowFactory) ClearContainer(c vstack.Container) {
	r := c.(*rowContainer)
	r.entry = logline.Entry{}
	r.segments = nil
	r.width = 0
}

// rowContainer is one rendered log line.
type rowContainer struct {
	key      vstack.RecycleKey
	entry    logline.Entry
	segments []segment
	width    int
	rect     vstack.Rect
	hidden   bool
	scroll   *scroller
}

func (r *rowContainer) Measure(available vstack.Size) vstack.Size {
	return vstack.Size{Width: float64(r.width), Height: available.Height}
}

func (r *rowContainer) Arrange(rect vstack.Rect) { r.rect = rect }
func (r *rowContainer) SetHidden(hidden bool)    { r.hidden = hidden }

func (r *rowContainer) BringIntoView() {
	if r.scroll != nil {
		r.scroll.ensureVisible(r.rect)
	}
}

// view renders the row, panned left by pan columns and cut to width.
func (r *rowContainer) view(pan, width int, styles Styles, bg BgStyle, match matchState) string {
	if r.hidden || width <= 0 {
		return bg.Spaces(width)
	}
	line := renderSegments(r.segments, r.entry.Level, styles, bg, match)
	if pan > 0 || r.width > width {
		line = ansi.Cut(line, pan, pan+width)
	}
	return bg.FillLine(line, width)
}

type role int

const (
	roleText role = iota
	roleFaint
	roleTimestamp
	roleLevel
	roleComponent
	roleSubject
	roleLabel
)

type segment struct {
	text string
	role role
}

// segmentsOf splits an entry into styled pieces. Concatenating the texts
// gives the line as displayed.
func segmentsOf(e logline.Entry) []segment {
	switch e.Kind {
	case logline.KindBlank:
		return nil
	case logline.KindDetail:
		segs := []segment{{"    - ", roleFaint}}
		if e.Label != "" {
			segs = append(segs, segment{clean(e.Label) + ":", roleLabel})
			if e.Value != "" {
				segs = append(segs, segment{" ", roleText})
			}
		}
		return append(segs, segment{clean(e.Value), roleText})
	}

	if e.Timestamp == "" {
		return []segment{{clean(e.Message), roleText}}
	}
	segs := []segment{{e.Timestamp, roleTimestamp}, {" ", roleText}, {e.Level, roleLevel}}
	if e.Component != "" {
		segs = append(segs, segment{" ", roleText}, segment{"[" + clean(e.Component) + "]", roleComponent})
	}
	if e.Subject != "" {
		segs = append(segs,
			segment{" ", roleText},
			segment{clean(e.Subject), roleSubject},
			segment{" " + logline.Separator + " ", roleFaint},
		)
	} else if e.Message != "" {
		segs = append(segs, segment{" ", roleText})
	}
	if e.Message != "" {
		segs = append(segs, segment{clean(e.Message), roleText})
	}
	return segs
}

// clean drops escape sequences and expands tabs so widths are predictable.
func clean(s string) string {
	return strings.ReplaceAll(ansi.Strip(s), "\t", "    ")
}

func renderSegments(segs []segment, level string, styles Styles, bg BgStyle, match matchState) string {
	if match == matchActive {
		var plain strings.Builder
		for _, s := range segs {
			plain.WriteString(s.text)
		}
		return styles.Match.Render(plain.String())
	}

	var b strings.Builder
	for _, s := range segs {
		style := roleStyle(s.role, level, styles)
		if match == matchPassive && (s.role == roleText || s.role == roleSubject) {
			style = styles.PassiveMatch
		}
		b.WriteString(bg.Render(s.text, style))
	}
	return b.String()
}

func roleStyle(r role, level string, styles Styles) lipgloss.Style {
	switch r {
	case roleFaint, roleTimestamp:
		return styles.FaintText
	case roleLevel:
		return styles.LevelStyle(level)
	case roleComponent, roleLabel:
		return styles.MutedText
	case roleSubject:
		return styles.AccentText
	default:
		return styles.Text
	}
}
