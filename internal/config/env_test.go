// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"CONFIG_PATH":              "/etc/bot/config.json",
		"NODE_ENV":                 "prod",
		"ENABLE_PROJECTS":          "false",
		"CREDENTIAL_SECRET":        "s3cr3t",
		"CREDENTIAL_SPLIT_FILES":   "true",
		"FRAMEWORK_ROOT":           "/opt/framework",
		"ROOT_DIR":                 "/opt/root",
		"BOT_ROOT":                 "/opt/bots/my-bot",
		"BOT":                      "my-bot",
		"PORT":                     "8080",
		"NODE_RED_ROUTE":           "/admin",
		"NODE_RED_DISABLE_EDITOR":  "true",
		"NODE_RED_HTTP_MIDDLEWARE": "custom-middleware",
		"NODE_RED_CONFIG_PATH":     "/opt/bots/my-bot/settings.yaml",
		"FRAMEWORK_VERSION":        "2.3.4",
	}

	// Act
	cfg := &Environment{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/etc/bot/config.json", cfg.ConfigPath)
	assert.Equal(t, "prod", cfg.NodeEnv)
	assert.Equal(t, "false", cfg.EnableProjects)
	assert.Equal(t, "s3cr3t", cfg.CredentialSecret)
	assert.Equal(t, "true", cfg.CredentialSplitFiles)
	assert.Equal(t, "/opt/framework", cfg.FrameworkRoot)
	assert.Equal(t, "/opt/root", cfg.RootDir)
	assert.Equal(t, "/opt/bots/my-bot", cfg.BotRoot)
	assert.Equal(t, "my-bot", cfg.Bot)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/admin", cfg.Route)
	assert.Equal(t, "true", cfg.DisableEditor)
	assert.Equal(t, "custom-middleware", cfg.HTTPMiddleware)
	assert.Equal(t, "/opt/bots/my-bot/settings.yaml", cfg.OverridePath)
	assert.Equal(t, "2.3.4", cfg.FrameworkVersion)
}

func TestParseEnv_EmptySnapshot(t *testing.T) {
	cfg := &Environment{}
	err := parseEnv(cfg, map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, Environment{}, *cfg)
}

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("NODE_ENV", "dev")
	t.Setenv("PORT", "1999")

	cfg := &Environment{}
	err := parseEnv(cfg, nil)

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.NodeEnv)
	assert.Equal(t, "1999", cfg.Port)
}

// TestParseEnv_MalformedValuesAreKeptRaw verifies that values which are not
// valid for their meaning never make parsing fail.
func TestParseEnv_MalformedValuesAreKeptRaw(t *testing.T) {
	cfg := &Environment{}
	err := parseEnv(cfg, map[string]string{"PORT": "not-a-port", "ENABLE_PROJECTS": "yes"})

	require.NoError(t, err)
	assert.Equal(t, "not-a-port", cfg.Port)
	assert.Equal(t, "yes", cfg.EnableProjects)
}
