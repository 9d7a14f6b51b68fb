// Package settings resolves the settings object handed to the flow runtime
// host at startup.
//
// Resolution is a single synchronous pass over four sources, later sources
// winning:
//  1. Static defaults and environment-derived values ([BuildDefaults])
//  2. The runtime policy block, carrying the admin users of the project
//     configuration file selected by NODE_ENV ([LoadProject])
//  3. The final override file ([LoadOverride])
//
// Fragments are combined with [Merge]: nested mappings merge key by key,
// every other value (arrays included) replaces the earlier one.
//
// Loading either override file never fails the resolution. Every failure
// is logged, recorded as a [Diagnostic] and the last good result is kept.
// The main entry point is [Resolver.Resolve].
package settings
