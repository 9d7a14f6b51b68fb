package settings

import (
	"path/filepath"
	"strings"

	"github.com/MKhiriev/vbm-settings/internal/config"
)

const (
	defaultStorageModule  = "node-red-viseo-storage-plugin"
	defaultHTTPMiddleware = "node-red-viseo-middleware"
)

// Defaults is the output of [BuildDefaults].
type Defaults struct {
	// Fragment holds the static and environment-derived keys.
	Fragment Fragment

	// Root is the selected storage root: the bot root when it exists,
	// the settings directory otherwise.
	Root string

	// RootExists reports whether the bot root was found on disk. Only then
	// is the root meant to become the working directory.
	RootExists bool
}

// BuildDefaults constructs the base settings from env. It never fails:
// every absent variable resolves to a fallback literal. The only disk
// access is the existence check of the bot root.
func BuildDefaults(env config.Environment, fs FileSystem) Defaults {
	f := Fragment{
		"storageModule":      defaultStorageModule,
		"httpNodeMiddleware": orDefault(env.HTTPMiddleware, defaultHTTPMiddleware),
		"projectsDir":        filepath.Join(env.FrameworkRoot, "../projects"),
		"settingsDir":        env.RootDir,
	}

	if env.CredentialSecret != "" {
		f["credentialSecret"] = env.CredentialSecret
	}

	d := Defaults{Fragment: f}
	if fs.Exists(env.BotRoot) {
		d.Root = env.BotRoot
		d.RootExists = true
	} else {
		d.Root = env.RootDir
	}
	f["userDir"] = normalizePath(d.Root + "/data/")

	// With projects disabled the flow credentials live next to the flows,
	// one file per runtime environment.
	if !env.ProjectsEnabled() && env.SplitCredentialFiles() {
		f["credentialsFile"] = "flows_cred_" + env.NodeEnv + ".json"
	}

	return d
}

// normalizePath cleans p and keeps a trailing separator if p had one.
func normalizePath(p string) string {
	trailing := strings.HasSuffix(p, "/")
	cleaned := filepath.Clean(p)
	if trailing && !strings.HasSuffix(cleaned, string(filepath.Separator)) {
		cleaned += string(filepath.Separator)
	}

	return cleaned
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
