// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the marketctl operator CLI.
type ClientConfig struct {
	// ServerURL is the base URL of a running marketplace server.
	// Env: MARKETCTL_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: MARKETCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is an access token sent on authenticated calls.
	// Env: MARKETCTL_TOKEN
	Token string `env:"TOKEN"`
}

// clientConfigEnv is the env-tagged root used for the MARKETCTL_ prefix.
type clientConfigEnv struct {
	Client ClientConfig `envPrefix:"MARKETCTL_"`
}

// GetClientConfig loads the CLI configuration. Defaults are overridden by
// MARKETCTL_ environment variables, which in turn are overridden by the
// non-zero fields of overrides (typically populated from command-line flags).
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerURL:      "http://localhost:8080",
		RequestTimeout: 15 * time.Second,
	}

	var envCfg clientConfigEnv
	if err := parseEnv(&envCfg); err != nil {
		return nil, err
	}

	var err error
	for _, src := range []ClientConfig{envCfg.Client, overrides} {
		err = errors.Join(err, mergo.Merge(cfg, src, mergo.WithOverride))
	}
	if err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	return cfg, cfg.validate()
}
