// Package logbuf holds the lines shown by the log view.
//
// Buffer is the item collection behind the virtualizing panel. Every mutation
// is reported to subscribers as a vstack.Change after the contents changed, so
// a panel subscribed to the buffer can keep its realized window aligned with
// the data. Trimming beyond the limit is reported as a removal at index 0.
package logbuf
