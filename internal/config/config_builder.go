package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

// applyDefaults fills fields that stayed zero after all sources were merged.
func (cfg *Config) applyDefaults() {
	if cfg.DBTCloud.AccessURL == "" {
		cfg.DBTCloud.AccessURL = DefaultAccessURL
	}
	if cfg.Component == "" {
		cfg.Component = ComponentObservability
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.PollInterval == 0 {
		cfg.Workers.PollInterval = defaultPollInterval
	}
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withYAML() *configBuilder {
	var yamlPath string
	isYAMLSpecified := false

	for _, cfg := range b.configs {
		if cfg.YAMLFilePath != "" {
			isYAMLSpecified = true
			yamlPath = cfg.YAMLFilePath
		}
	}

	if isYAMLSpecified {
		yamlCfg, err := parseYAML(yamlPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, yamlCfg)
	}

	return b
}
