// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/go-resty/resty/v2"
)

type httpMarketplaceAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPMarketplaceAPI constructs an HTTP/REST implementation of
// [MarketplaceAPI]. It normalises cfg.ServerURL, configures the client with
// the resolved base URL and request timeout and preloads cfg.Token.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a URL.
func NewHTTPMarketplaceAPI(cfg config.ClientConfig, logger *logger.Logger) (MarketplaceAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	api := &httpMarketplaceAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	api.client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("marketplace API call")
		return nil
	})

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errNoScheme
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpMarketplaceAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpMarketplaceAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpMarketplaceAPI) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpMarketplaceAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
