package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers returns a
// zero-value Environment.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &Environment{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that non-empty fields of later layers
// override earlier ones while empty fields keep the earlier value.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Environment{NodeEnv: "dev", Port: "1880", Bot: "alpha"},
		&Environment{NodeEnv: "prod", Bot: ""},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.NodeEnv)
	assert.Equal(t, "1880", cfg.Port)
	assert.Equal(t, "alpha", cfg.Bot)
}

// TestBuild_DoesNotAliasLayers verifies that the built Environment is a
// fresh value.
func TestBuild_DoesNotAliasLayers(t *testing.T) {
	layer := &Environment{Bot: "alpha"}
	b := newConfigBuilder()
	b.configs = append(b.configs, layer)

	cfg, err := b.build()
	require.NoError(t, err)
	cfg.Bot = "changed"
	assert.Equal(t, "alpha", layer.Bot)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv(map[string]string{}))
}

// TestWithEnv_ReadsSnapshot verifies that the supplied snapshot is used.
func TestWithEnv_ReadsSnapshot(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv(map[string]string{"BOT": "env-bot", "NODE_ENV": "dev"})

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-bot", b.configs[0].Bot)
	assert.Equal(t, "dev", b.configs[0].NodeEnv)
	assert.NoError(t, b.err)
}

// ── withOverrides ─────────────────────────────────────────────────────────────

// TestWithOverrides_NilIsNoop verifies that a nil overrides layer is skipped.
func TestWithOverrides_NilIsNoop(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withOverrides(nil))
	assert.Empty(t, b.configs)
}

// ── LoadEnvironment ───────────────────────────────────────────────────────────

// TestLoadEnvironment_OverridesWinOverEnv verifies the layer order.
func TestLoadEnvironment_OverridesWinOverEnv(t *testing.T) {
	environ := map[string]string{
		"NODE_ENV":    "dev",
		"CONFIG_PATH": "/env/config.json",
		"PORT":        "1880",
	}

	cfg, err := LoadEnvironment(environ, &Environment{NodeEnv: "prod", Port: "9000"})
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.NodeEnv)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/env/config.json", cfg.ConfigPath)
}

// TestLoadEnvironment_Deterministic verifies that the same snapshot always
// yields the same Environment.
func TestLoadEnvironment_Deterministic(t *testing.T) {
	environ := map[string]string{"BOT": "b", "ROOT_DIR": "/r"}

	first, err := LoadEnvironment(environ, nil)
	require.NoError(t, err)
	second, err := LoadEnvironment(environ, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
