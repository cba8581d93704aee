// Package config loads faceoff's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/faceoff/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Fields that are missing or empty keep their defaults
//
// Missing config files are not an error. faceoff works out of the box against
// the public NHL web API.
//
// # TOML Format
//
//	api_base = "https://api-web.nhle.com"
//	poll_seconds = 30
//	log_file = "~/.local/state/faceoff/faceoff.log"
//	log_level = "info"
//	favorite_team = "TOR"
//	cache_ttl_seconds = 300
//
// poll_seconds has a floor of 5 seconds. favorite_team is upper-cased and
// decides which team the Standings tab focuses first. Tilde expansion is
// applied to log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors.
package config
