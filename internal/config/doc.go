// Package config loads and validates the sync client configuration.
//
// Configuration is layered: command-line flags override environment
// variables, which override an optional JSON file, which overrides built-in
// defaults. The layers are merged with mergo (earlier layers win) and the
// resulting [ClientConfig] is validated before use.
package config
