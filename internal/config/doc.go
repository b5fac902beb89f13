// Package config loads MUSE's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/muse/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	api_root = "https://monplan-api-dev.appspot.com"
//	request_timeout = "10s"   # empty or "0s": no timeout
//	user_agent = "muse/0.1"
//	log_level = "error"       # debug, info, warn, error, fatal
//	log_file = "~/.local/state/muse/muse.log"
//	metrics_addr = ""         # e.g. "127.0.0.1:9464" to serve /metrics
//
// All fields are optional. Tilde expansion is performed for log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors, and malformed or negative
// request_timeout values. A missing file is not an error.
package config
