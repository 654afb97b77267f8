// Package logtail reads and follows plain-text log files.
//
// # Reading
//
// Read and ReadTail extract the last N lines from a file with a ring buffer
// of size N, so memory stays O(N) regardless of file size. A missing file is
// not an error: both return nil lines so the viewer can start before the
// producer has written anything.
//
//	lines, offset, err := logtail.ReadTail("/var/log/app.log", 400)
//
// # Following
//
// Follow continues from the offset returned by ReadTail. It watches the
// file's directory with fsnotify so that rotation (remove, then create) is
// observed, and also polls every PollInterval for writers that do not
// produce events. Only newline-terminated lines are delivered.
//
// When the file shrinks below the current offset, or is removed or renamed,
// reading restarts at byte 0 and the next Batch has Truncated set. Consumers
// typically clear their view when they see it.
package logtail
