// Package config loads server and client configuration.
//
// Values are layered: built-in defaults, then a TOML file, then environment
// variables. Command-line flags are applied by the binaries on top of the
// result. The merged configuration is validated before use.
package config
