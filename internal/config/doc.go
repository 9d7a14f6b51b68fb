// Package config reads the process environment consumed by the settings
// resolver.
//
// The environment is assembled from two layers (later layers override
// earlier non-empty fields):
//  1. Environment variables (or an explicit snapshot map)
//  2. Command-line flag overrides
//
// The main entry point is [LoadEnvironment].
package config
