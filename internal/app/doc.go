// Package app wires configuration, the log source, metrics and the UI
// together. It is logdeck's composition root.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config, apply flag overrides
//	       ├─────> newLogger()          slog text handler or discard
//	       ├─────> metrics.Listen()     Optional /metrics endpoint
//	       ├─────> ui.New()             Model with vstack panel
//	       ├─────> source.Run()         FileFollower or Poller (goroutine)
//	       └─────> program.Run()        TUI, blocks until quit
//
// Sources never touch the model directly. They deliver ui.LinesMsg values
// through tea.Program.Send and report health to a state.Store that the UI
// reads on its tick.
//
// # Sources
//
// FileFollower reads the last buffer_limit lines with logtail.ReadTail, then
// follows the file with logtail.Follow. A truncation or rotation clears the
// view.
//
// Poller fetches /api/status and /api/logs from a remote daemon every
// poll_seconds. The first fetch asks for the tail and replaces the view; later
// fetches continue from the returned cursor. Consecutive failures back off
// exponentially up to 30 seconds.
//
// # Error Handling
//
// Configuration, logger and metrics listener failures are returned from Run.
// Read and poll failures are recorded in the store, logged, and retried.
package app
