// Package logline parses the text log format shared by the local log file and
// the remote log API.
//
// A record is a header line followed by zero or more indented detail lines:
//
//	2025-10-08 21:01:05 WARN [encoder] Item #5 (encoder) – slow progress
//	    - Progress: 50%
//
// Parse never fails. Lines that do not match the header shape are kept as
// entries whose message is the whole line, so arbitrary files can be viewed.
package logline
