// Package vstack implements a fixed-row-height virtualizing stack panel.
//
// # Overview
//
// A Panel lays out a potentially huge, mutable item collection as a vertical
// stack of equally tall rows, but only materializes containers for the rows
// that intersect the viewport. Containers that scroll out of view are cleared
// and pushed onto per-key recycle pools so the next row that needs the same
// kind of container can reuse it instead of asking the factory for a new one.
//
// # Realized Window
//
// The panel owns a contiguous window [first, last] of realized indices backed
// by a slot slice. A nil slot is lazy: the index is inside the window but its
// container has not been materialized yet. Lazy slots are filled on the next
// measure pass or on demand by ContainerFromIndex.
//
// # Collection Changes
//
// ItemsChanged reconciles the window against Add, Remove, Replace and Reset
// notifications without a full re-layout. Insertions and removals above the
// window shift its bounds and nudge the viewport offset by the same number of
// rows so on-screen content stays put. Move notifications are rejected with
// ErrMoveUnsupported.
//
// # Re-entrancy
//
// While the factory prepares a container it may call ContainerFromIndex or
// IndexFromContainer for that very container; the panel keeps the in-flight
// (index, container) pair for exactly that purpose. Changes reported while a
// layout pass or a preparation is running are queued and applied once the
// outermost operation returns.
//
// # Threading
//
// A Panel is not safe for concurrent use. All calls are expected to come from
// the UI loop that owns it.
package vstack
