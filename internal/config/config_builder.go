package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	configs []*Environment
	// cleared holds fields explicitly set to "" by a flag. mergo skips empty
	// values, so they are blanked after the merge.
	cleared []func(e *Environment) *string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Environment, 0, 2),
	}
}

// build merges the collected layers in order. Later layers win for every
// non-empty field.
func (b *configBuilder) build() (*Environment, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building environment: %w", b.err)
	}

	config := new(Environment)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging environments: %w", err)
		}
	}

	for _, field := range b.cleared {
		*field(config) = ""
	}

	return config, nil
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	envCfg := &Environment{}
	if err := parseEnv(envCfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withOverrides(overrides *Environment) *configBuilder {
	if overrides == nil {
		return b
	}

	b.configs = append(b.configs, overrides)
	return b
}

// withFlags layers the flags explicitly set on fs. A flag set to an empty
// string clears the value coming from earlier layers.
func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	overrides, err := FlagOverrides(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, overrides)
	b.cleared = append(b.cleared, clearedFields(fs)...)
	return b
}
