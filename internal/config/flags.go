package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// flagBinding ties a command-line flag to the Environment field it
// overrides.
type flagBinding struct {
	name  string
	usage string
	field func(e *Environment) *string
}

var flagBindings = []flagBinding{
	{"config-path", "project configuration file (CONFIG_PATH)", func(e *Environment) *string { return &e.ConfigPath }},
	{"node-env", "runtime environment name (NODE_ENV)", func(e *Environment) *string { return &e.NodeEnv }},
	{"override-path", "final override file (NODE_RED_CONFIG_PATH)", func(e *Environment) *string { return &e.OverridePath }},
	{"port", "editor port (PORT)", func(e *Environment) *string { return &e.Port }},
	{"bot", "active project name (BOT)", func(e *Environment) *string { return &e.Bot }},
	{"bot-root", "preferred storage root (BOT_ROOT)", func(e *Environment) *string { return &e.BotRoot }},
	{"root-dir", "settings directory and fallback storage root (ROOT_DIR)", func(e *Environment) *string { return &e.RootDir }},
	{"framework-root", "framework install directory (FRAMEWORK_ROOT)", func(e *Environment) *string { return &e.FrameworkRoot }},
}

// BindFlags registers the environment override flags on fs.
//
// Flags:
//
//	--config-path    project configuration file
//	--node-env       runtime environment name
//	--override-path  final override file
//	--port           editor port
//	--bot            active project name
//	--bot-root       preferred storage root
//	--root-dir       settings directory
//	--framework-root framework install directory
//
// An explicit empty value (--bot "") clears the matching variable.
func BindFlags(fs *pflag.FlagSet) {
	for _, b := range flagBindings {
		fs.String(b.name, "", b.usage+"; empty value clears it")
	}
}

// FlagOverrides returns an [Environment] holding only the flags that were
// explicitly set on fs. Untouched flags stay empty so they never shadow the
// environment when layered by [LoadEnvironment].
func FlagOverrides(fs *pflag.FlagSet) (*Environment, error) {
	overrides := &Environment{}
	for _, b := range flagBindings {
		if !fs.Changed(b.name) {
			continue
		}

		v, err := fs.GetString(b.name)
		if err != nil {
			return nil, fmt.Errorf("%w: --%s: %w", ErrInvalidFlag, b.name, err)
		}
		*b.field(overrides) = v
	}

	return overrides, nil
}

// clearedFields returns the fields of the flags explicitly set to "".
func clearedFields(fs *pflag.FlagSet) []func(e *Environment) *string {
	var fields []func(e *Environment) *string
	for _, b := range flagBindings {
		if !fs.Changed(b.name) {
			continue
		}

		if v, err := fs.GetString(b.name); err == nil && v == "" {
			fields = append(fields, b.field)
		}
	}

	return fields
}
