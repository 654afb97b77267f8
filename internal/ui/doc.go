// Package ui provides the Bubble Tea terminal interface for logdeck.
//
// # Architecture Overview
//
// The interface is a single log pane between a header and a status bar. The
// pane does not render the whole buffer: a vstack.Panel realizes row
// containers only for the lines inside the visible window, and recycles them
// as the window moves.
//
//	┌──────────────────────────────────────────┐
//	│ header: source, lines, realized rows     │
//	├──────────────────────────────────────────┤
//	│ log pane (vstack.Panel over logbuf)      │
//	│   rowContainer  ← "entry" pool           │
//	│   rowContainer  ← "detail" pool          │
//	│   ...                                    │
//	├──────────────────────────────────────────┤
//	│ status: follow, search, errors, hints    │
//	└──────────────────────────────────────────┘
//
// # Package Structure
//
//   - app.go: Model, Update/View, messages and commands
//   - logview.go: buffer, panel and scroll state shared across model copies
//   - rows.go: rowFactory and rowContainer, the panel's containers
//   - scroller.go: the vstack.Viewport implementation
//   - header.go: header and status bars
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go, style_helpers.go: colors and background-safe rendering
//
// # Data Flow
//
// The follower or poller in package app sends LinesMsg values through
// tea.Program.Send. Update appends them to the logbuf.Buffer, which notifies
// the panel of the change; the panel adjusts its window and, when lines are
// trimmed above the window, nudges the scroll offset so visible rows stay
// put. In follow mode the pane then jumps to the bottom. A periodic tick
// reads a state.Snapshot for the header and status bar.
//
// # Key Bindings
//
//	j/k, g/G          scroll, top, bottom (G resumes follow)
//	ctrl+d/u, pgup/dn half and full pages
//	h/l, left/right   pan horizontally
//	Space             toggle follow
//	/ n N esc         search, next, previous, clear
//	T                 cycle theme (saved to prefs)
//	?                 help
//	q, ctrl+c         quit
package ui
