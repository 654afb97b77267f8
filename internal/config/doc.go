// Package config loads logdeck's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/logdeck/config.toml
//  3. If the file doesn't exist, return Default()
//  4. If the file exists but fields are missing, empty or out of range, use
//     the defaults for those fields
//
// # Fields
//
//	log_file      file to view              (~/.local/share/logdeck/app.log)
//	remote_api    daemon host:port or URL; when set logs come from the API
//	row_height    rows per log line         (1)
//	buffer_limit  lines kept in memory      (5000)
//	follow        watch for new lines       (true)
//	debug_log     internal debug log file   (disabled)
//	metrics_addr  Prometheus listen address (disabled)
//	poll_seconds  remote poll interval      (2)
//
// Paths beginning with ~ are expanded against the user's home directory and
// made absolute.
//
// # Error Handling
//
// A missing file is not an error. Open, read and parse failures are wrapped
// with "open config", "read config" and "parse config" respectively.
package config
