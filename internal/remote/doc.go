// Package remote is an HTTP client for daemons that publish their log stream
// over a small JSON API.
//
// Two endpoints are used:
//
//	GET /api/status                          → Status
//	GET /api/logs?since=N&limit=N&tail=1     → LogBatch{events, next}
//
// The logs endpoint is cursor based: each batch returns Next, which the
// caller passes as Since on the following request. With tail=1 and no
// cursor the daemon returns the most recent events.
//
// Format turns an event into the same text lines a daemon writes to its log
// file, so local and remote sources share one parser (package logline).
//
// Requests time out after five seconds; callers add their own deadline via
// the context.
package remote
