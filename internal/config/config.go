// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/spf13/pflag"
)

// Environment is the typed snapshot of every process variable the settings
// resolver reads. All fields are kept as raw strings: absence and
// malformed values are resolved to documented fallbacks by the accessor
// methods below, so parsing an Environment can never fail on a bad value.
//
// Struct tags:
//   - env — environment variable name (caarlos0/env).
type Environment struct {
	// ConfigPath points to the project configuration file holding
	// environment-keyed admin/user blocks.
	// Env: CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`

	// NodeEnv is the runtime environment name ("dev", "prod", ...). It
	// selects the section of the project configuration file and toggles a
	// few editor labels.
	// Env: NODE_ENV
	NodeEnv string `env:"NODE_ENV"`

	// EnableProjects toggles the editor projects feature. Enabled unless
	// set to something other than "true".
	// Env: ENABLE_PROJECTS
	EnableProjects string `env:"ENABLE_PROJECTS"`

	// CredentialSecret is passed through verbatim as the credential
	// encryption secret.
	// Env: CREDENTIAL_SECRET
	CredentialSecret string `env:"CREDENTIAL_SECRET"`

	// CredentialSplitFiles toggles per-environment credential files when
	// projects are disabled. Enabled unless set to something other than
	// "true".
	// Env: CREDENTIAL_SPLIT_FILES
	CredentialSplitFiles string `env:"CREDENTIAL_SPLIT_FILES"`

	// FrameworkRoot is the install directory of the framework; theme assets
	// and the projects directory are derived from it.
	// Env: FRAMEWORK_ROOT
	FrameworkRoot string `env:"FRAMEWORK_ROOT"`

	// RootDir is the settings directory and the fallback storage root.
	// Env: ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// BotRoot is the preferred storage root, used when it exists on disk.
	// Env: BOT_ROOT
	BotRoot string `env:"BOT_ROOT"`

	// Bot is the active project name.
	// Env: BOT
	Bot string `env:"BOT"`

	// Port is the TCP port the editor listens on.
	// Env: PORT
	Port string `env:"PORT"`

	// Route is the admin root path of the editor.
	// Env: NODE_RED_ROUTE
	Route string `env:"NODE_RED_ROUTE"`

	// DisableEditor disables the editor when set to "true".
	// Env: NODE_RED_DISABLE_EDITOR
	DisableEditor string `env:"NODE_RED_DISABLE_EDITOR"`

	// HTTPMiddleware names the middleware plugin placed in front of http
	// nodes.
	// Env: NODE_RED_HTTP_MIDDLEWARE
	HTTPMiddleware string `env:"NODE_RED_HTTP_MIDDLEWARE"`

	// OverridePath points to the final override file, deep-merged on top of
	// everything else.
	// Env: NODE_RED_CONFIG_PATH
	OverridePath string `env:"NODE_RED_CONFIG_PATH"`

	// FrameworkVersion is used to build the palette catalogue URL. When
	// empty the build version of the binary is used.
	// Env: FRAMEWORK_VERSION
	FrameworkVersion string `env:"FRAMEWORK_VERSION"`
}

const (
	envProd = "prod"
	envDev  = "dev"

	defaultBotLabel = "welcome !"
)

var botLabelReplacer = strings.NewReplacer("-", " ", "_", " ", ".", " ")

// ProjectsEnabled reports whether the projects feature is on.
func (e Environment) ProjectsEnabled() bool {
	return enabledByDefault(e.EnableProjects)
}

// SplitCredentialFiles reports whether credentials go to a per-environment
// file.
func (e Environment) SplitCredentialFiles() bool {
	return enabledByDefault(e.CredentialSplitFiles)
}

// EditorDisabled reports whether the editor is switched off.
func (e Environment) EditorDisabled() bool {
	return e.DisableEditor == "true"
}

// IsProd reports whether the runtime environment is production.
func (e Environment) IsProd() bool {
	return e.NodeEnv == envProd
}

// IsDev reports whether the runtime environment is development.
func (e Environment) IsDev() bool {
	return e.NodeEnv == envDev
}

// BotLabel returns a human-readable project name: separators in Bot are
// replaced by spaces. Without a project the generic welcome label is
// returned.
func (e Environment) BotLabel() string {
	if e.Bot == "" {
		return defaultBotLabel
	}

	return botLabelReplacer.Replace(e.Bot)
}

// enabledByDefault treats an unset or empty value as "true".
func enabledByDefault(v string) bool {
	if v == "" {
		return true
	}

	return v == "true"
}

// LoadEnvironment builds the [Environment] from the given variables and
// layers non-empty fields of overrides on top of them. A nil environ reads
// the process environment.
func LoadEnvironment(environ map[string]string, overrides *Environment) (*Environment, error) {
	return newConfigBuilder().
		withEnv(environ).
		withOverrides(overrides).
		build()
}

// LoadEnvironmentWithFlags builds the [Environment] from the given variables
// and layers the flags explicitly set on fs on top of them. Unlike
// [LoadEnvironment], a flag set to an empty string clears the variable.
func LoadEnvironmentWithFlags(environ map[string]string, fs *pflag.FlagSet) (*Environment, error) {
	return newConfigBuilder().
		withEnv(environ).
		withFlags(fs).
		build()
}
