// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merging all
// sources into a single [StructuredConfig].
//
// Sources are merged in priority order (environment, then flags, then the
// JSON file, then built-in defaults); the first non-zero value for a field
// wins. The merged result is validated before use.
package config
