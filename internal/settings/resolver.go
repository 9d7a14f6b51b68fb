package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/vbm-settings/internal/config"
	"github.com/MKhiriev/vbm-settings/internal/logger"
	"github.com/rs/zerolog"
)

// Source identifies where a configuration fragment came from.
type Source string

const (
	SourceStaticDefault         Source = "static-default"
	SourceEnvironmentDerived    Source = "environment"
	SourcePrimaryOverrideFile   Source = "project-config"
	SourceSecondaryOverrideFile Source = "override-config"
)

// fallbackVersion is used in the palette catalogue URL when neither the
// environment nor the binary carries a version.
const fallbackVersion = "latest"

// Diagnostic records a non-fatal failure met during resolution. The
// resolution fell back to the previous good value for that source.
type Diagnostic struct {
	Source Source
	Path   string
	Err    error
}

// Resolution is the result of [Resolver.Resolve].
type Resolution struct {
	// Settings is the resolved configuration.
	Settings Settings

	// Root is the selected storage root; see [Defaults].
	Root string

	// RootExists reports whether Root is the existing bot root.
	RootExists bool

	// Diagnostics lists every fallback taken, in pipeline order.
	Diagnostics []Diagnostic
}

// ApplyRoot makes the bot root the process working directory. It does
// nothing when the bot root does not exist. The change is process-wide and
// is not undone.
func (r Resolution) ApplyRoot() error {
	if !r.RootExists {
		return nil
	}

	if err := os.Chdir(r.Root); err != nil {
		return fmt.Errorf("error changing working directory to %s: %w", r.Root, err)
	}

	return nil
}

// Resolver runs the settings pipeline against a file system.
type Resolver struct {
	fs      FileSystem
	log     *logger.Logger
	version string
}

// NewResolver creates a Resolver. version is the framework version used when
// FRAMEWORK_VERSION is not set.
func NewResolver(fs FileSystem, log *logger.Logger, version string) *Resolver {
	return &Resolver{
		fs:      fs,
		log:     log.WithComponent("settings"),
		version: version,
	}
}

// Resolve produces the settings for env. It never fails: unusable sources
// are logged, recorded in [Resolution.Diagnostics] and skipped.
//
// Order: base defaults, runtime policy with the project admin users
// (stage A), final override file (stage B).
func (r *Resolver) Resolve(env config.Environment) Resolution {
	res := Resolution{}

	defaults := BuildDefaults(env, r.fs)
	res.Root = defaults.Root
	res.RootExists = defaults.RootExists

	port, err := ParsePort(env.Port)
	if err != nil {
		res.report(r.log, SourceEnvironmentDerived, "PORT", err)
	}

	users := DefaultUsers()
	projectUsers, err := LoadProject(r.fs, env.ConfigPath, env.NodeEnv)
	if err != nil {
		res.report(r.log, SourcePrimaryOverrideFile, env.ConfigPath, err)
	} else {
		// An empty list from the project file replaces the demo account.
		users = projectUsers
	}

	combined := Merge(defaults.Fragment, RuntimePolicy(env, port, users, r.versionFor(env)))

	final := combined
	override, err := LoadOverride(r.fs, env.OverridePath)
	switch {
	case err != nil:
		res.report(r.log, SourceSecondaryOverrideFile, env.OverridePath, err)
	case override != nil:
		final = Merge(combined, override)
		r.log.Debug().Str("path", env.OverridePath).Strs("keys", override.Keys()).Msg("override config applied")
	}

	res.Settings = newSettings(final)
	return res
}

func (r *Resolver) versionFor(env config.Environment) string {
	if env.FrameworkVersion != "" {
		return env.FrameworkVersion
	}
	if r.version != "" {
		return r.version
	}

	return fallbackVersion
}

// report logs err and records it. Absent sources are expected and logged
// at info level.
func (res *Resolution) report(log *logger.Logger, source Source, path string, err error) {
	res.Diagnostics = append(res.Diagnostics, Diagnostic{Source: source, Path: path, Err: err})

	level := zerolog.WarnLevel
	switch {
	case errors.Is(err, ErrPathAbsent), errors.Is(err, ErrResourceNotFound):
		level = zerolog.InfoLevel
	case source == SourceSecondaryOverrideFile:
		level = zerolog.ErrorLevel
	}

	log.WithLevel(level).Err(err).Str("source", string(source)).Str("path", path).Msg("falling back to defaults")
}
