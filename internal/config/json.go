// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file. Durations are written as strings ("30s", "24h").
type StructuredJSONConfig struct {
	App struct {
		Version              string   `json:"version"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenSignKey   string   `json:"access_token_sign_key"`
		RefreshTokenSignKey  string   `json:"refresh_token_sign_key"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		BcryptCost           int      `json:"bcrypt_cost"`
		GoogleClientID       string   `json:"google_client_id"`
		GoogleClientSecret   string   `json:"google_client_secret"`
		AllowedRedirectURIs  []string `json:"allowed_redirect_uris"`
		ClientRedirectURL    string   `json:"client_redirect_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxIdleTime Duration `json:"conn_max_idle_time"`
			AcquireTimeout  Duration `json:"acquire_timeout"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
		TrustProxy     bool     `json:"trust_proxy"`
	} `json:"server,omitempty"`

	Events struct {
		KafkaBrokers []string `json:"kafka_brokers"`
		KafkaTopic   string   `json:"kafka_topic"`
	} `json:"events,omitempty"`

	Adapter struct {
		WhoisTimeout Duration `json:"whois_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ReconcileInterval   Duration `json:"reconcile_interval"`
		HealthProbeInterval Duration `json:"health_probe_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:              jsonCfg.App.Version,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			AccessTokenSignKey:   jsonCfg.App.AccessTokenSignKey,
			RefreshTokenSignKey:  jsonCfg.App.RefreshTokenSignKey,
			AccessTokenDuration:  time.Duration(jsonCfg.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			BcryptCost:           jsonCfg.App.BcryptCost,
			GoogleClientID:       jsonCfg.App.GoogleClientID,
			GoogleClientSecret:   jsonCfg.App.GoogleClientSecret,
			AllowedRedirectURIs:  jsonCfg.App.AllowedRedirectURIs,
			ClientRedirectURL:    jsonCfg.App.ClientRedirectURL,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxIdleTime: time.Duration(jsonCfg.Storage.DB.ConnMaxIdleTime),
				AcquireTimeout:  time.Duration(jsonCfg.Storage.DB.AcquireTimeout),
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
			TrustProxy:     jsonCfg.Server.TrustProxy,
		},
		Events: Events{
			KafkaBrokers: jsonCfg.Events.KafkaBrokers,
			KafkaTopic:   jsonCfg.Events.KafkaTopic,
		},
		Adapter: Adapter{
			WhoisTimeout: time.Duration(jsonCfg.Adapter.WhoisTimeout),
		},
		Workers: Workers{
			ReconcileInterval:   time.Duration(jsonCfg.Workers.ReconcileInterval),
			HealthProbeInterval: time.Duration(jsonCfg.Workers.HealthProbeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
