package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestBindFlags_RegistersAllBindings(t *testing.T) {
	fs := newTestFlagSet(t)
	for _, b := range flagBindings {
		assert.NotNil(t, fs.Lookup(b.name), "flag %q not registered", b.name)
	}
}

func TestFlagOverrides_OnlyChangedFlags(t *testing.T) {
	fs := newTestFlagSet(t, "--node-env=prod", "--override-path", "/tmp/override.json", "--port=9000")

	overrides, err := FlagOverrides(fs)
	require.NoError(t, err)
	assert.Equal(t, &Environment{
		NodeEnv:      "prod",
		OverridePath: "/tmp/override.json",
		Port:         "9000",
	}, overrides)
}

func TestFlagOverrides_NoFlags(t *testing.T) {
	fs := newTestFlagSet(t)

	overrides, err := FlagOverrides(fs)
	require.NoError(t, err)
	assert.Equal(t, &Environment{}, overrides)
}

func TestFlagOverrides_LayeredOnEnvironment(t *testing.T) {
	fs := newTestFlagSet(t, "--bot-root=/flag/root")
	overrides, err := FlagOverrides(fs)
	require.NoError(t, err)

	cfg, err := LoadEnvironment(map[string]string{"BOT_ROOT": "/env/root", "BOT": "b"}, overrides)
	require.NoError(t, err)
	assert.Equal(t, "/flag/root", cfg.BotRoot)
	assert.Equal(t, "b", cfg.Bot)
}

func TestLoadEnvironmentWithFlags_EmptyFlagClears(t *testing.T) {
	environ := map[string]string{"BOT": "b", "NODE_ENV": "prod", "ROOT_DIR": "/r"}
	fs := newTestFlagSet(t, "--bot=", "--node-env", "")

	cfg, err := LoadEnvironmentWithFlags(environ, fs)
	require.NoError(t, err)
	assert.Empty(t, cfg.Bot)
	assert.Empty(t, cfg.NodeEnv)
	assert.Equal(t, "/r", cfg.RootDir)
}

func TestLoadEnvironmentWithFlags_SetAndUntouched(t *testing.T) {
	environ := map[string]string{"BOT_ROOT": "/env/root", "BOT": "b"}
	fs := newTestFlagSet(t, "--bot-root=/flag/root")

	cfg, err := LoadEnvironmentWithFlags(environ, fs)
	require.NoError(t, err)
	assert.Equal(t, "/flag/root", cfg.BotRoot)
	assert.Equal(t, "b", cfg.Bot)
}

func TestLoadEnvironmentWithFlags_NilFlagSet(t *testing.T) {
	cfg, err := LoadEnvironmentWithFlags(map[string]string{"BOT": "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "b", cfg.Bot)
}
