// Package config handles loading the shopfront configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shopfront/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. A .env file and the SHOPFRONT_API_URL environment variable
//     override whatever the file says
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "127.0.0.1:8080"
//	session_path = "~/.config/shopfront/session.toml"
//
// Both fields are optional. Tilde expansion is performed automatically.
//
// # Defaults
//
//   - API endpoint: 127.0.0.1:8080
//   - Session file: ~/.config/shopfront/session.toml
//
// Missing config files are NOT an error; defaults are used instead so
// shopfront works out of the box against a local server.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors
// (except os.ErrNotExist) and TOML parsing errors. The package is
// read-only and stateless: configuration is loaded once at startup and
// returned as an immutable Config value.
package config
