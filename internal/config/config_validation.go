// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup requirements.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 1 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: pool sizes must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.App.AccessTokenSignKey == "" || cfg.App.RefreshTokenSignKey == "" {
		return fmt.Errorf("%w: both token signing keys are required", ErrInvalidAppConfigs)
	}
	if cfg.App.AccessTokenSignKey == cfg.App.RefreshTokenSignKey {
		return fmt.Errorf("%w: access and refresh signing keys must differ", ErrInvalidAppConfigs)
	}
	for _, uri := range cfg.App.AllowedRedirectURIs {
		if !isAbsoluteURL(uri) {
			return fmt.Errorf("%w: redirect uri %q is not absolute", ErrInvalidAppConfigs, uri)
		}
	}
	if cfg.App.ClientRedirectURL != "" && !isAbsoluteURL(cfg.App.ClientRedirectURL) {
		return fmt.Errorf("%w: client redirect url is not absolute", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isAbsoluteURL(cfg.ServerURL) {
		return fmt.Errorf("%w: server url %q is not absolute", ErrInvalidAdapterConfigs, cfg.ServerURL)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
