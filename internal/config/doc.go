// Package config holds the CLI configuration for idcard.
//
// Configuration is populated from CLI flags, optionally overlaid with a
// .idcard YAML file found in the current or home directory, and passed
// through the application via dependency injection rather than global state.
// Validation happens once after flag parsing, before any work begins.
package config
